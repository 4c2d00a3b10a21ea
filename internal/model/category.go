package model

// Category labels transactions for grouping and breakdowns.
type Category struct {
	Name  string          `json:"name"`
	Type  TransactionType `json:"type"`
	Icon  string          `json:"icon"`
	Color string          `json:"color"`
	ID    int64           `json:"id"`
}

// EffectiveType returns the category type, defaulting to expense when the
// server row predates typed categories.
func (c Category) EffectiveType() TransactionType {
	if c.Type == "" {
		return TypeExpense
	}
	return c.Type
}

// EffectiveColor returns the palette key, defaulting when unset.
func (c Category) EffectiveColor() string {
	if c.Color == "" {
		return DefaultColor
	}
	return c.Color
}

// Sentinel labels shown when a weak reference cannot be resolved.
const (
	UncategorizedLabel = "Uncategorized"
	NoAccountLabel     = "No account"
)

// NameIndex resolves weak category and account references for display.
type NameIndex struct {
	categories map[int64]string
	accounts   map[int64]string
}

// NewNameIndex builds an index over the given categories and accounts.
func NewNameIndex(categories []Category, accounts []Account) NameIndex {
	ix := NameIndex{
		categories: make(map[int64]string, len(categories)),
		accounts:   make(map[int64]string, len(accounts)),
	}
	for _, c := range categories {
		ix.categories[c.ID] = c.Name
	}
	for _, a := range accounts {
		ix.accounts[a.ID] = a.Name
	}
	return ix
}

// CategoryName resolves a category reference. The second return value is
// false when the reference is unset or dangling; the label then falls back
// to UncategorizedLabel.
func (ix NameIndex) CategoryName(id *int64) (string, bool) {
	if id == nil {
		return UncategorizedLabel, false
	}
	name, ok := ix.categories[*id]
	if !ok {
		return UncategorizedLabel, false
	}
	return name, true
}

// AccountName resolves an account reference, falling back to NoAccountLabel.
func (ix NameIndex) AccountName(id *int64) (string, bool) {
	if id == nil {
		return NoAccountLabel, false
	}
	name, ok := ix.accounts[*id]
	if !ok {
		return NoAccountLabel, false
	}
	return name, true
}
