package view

import "strconv"

// PageSize is the fixed page length for the transactions table.
const PageSize = 50

// RailEllipsis marks an elided span in the page rail.
const RailEllipsis = "…"

// TotalPages returns the page count for n items, never less than one.
func TotalPages(n int) int {
	pages := (n + PageSize - 1) / PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage confines a page number to [1, TotalPages(n)].
func ClampPage(page, n int) int {
	if page < 1 {
		return 1
	}
	if total := TotalPages(n); page > total {
		return total
	}
	return page
}

// PageBounds returns the half-open [start, end) index range of a page.
func PageBounds(page, n int) (int, int) {
	page = ClampPage(page, n)
	start := (page - 1) * PageSize
	end := start + PageSize
	if end > n {
		end = n
	}
	return start, end
}

// Rail returns the page-number control: first, last, and current ±1, with
// ellipses covering the gaps.
func Rail(current, total int) []string {
	var kept []int
	for p := 1; p <= total; p++ {
		if p == 1 || p == total || abs(p-current) <= 1 {
			kept = append(kept, p)
		}
	}

	var out []string
	for i, p := range kept {
		if i > 0 && p-kept[i-1] > 1 {
			out = append(out, RailEllipsis)
		}
		out = append(out, strconv.Itoa(p))
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
