package model

import "testing"

func TestEffectiveType(t *testing.T) {
	c := Category{Type: TypeIncome}
	if got := c.EffectiveType(); got != TypeIncome {
		t.Errorf("EffectiveType() = %q, want %q", got, TypeIncome)
	}

	c = Category{}
	if got := c.EffectiveType(); got != TypeExpense {
		t.Errorf("EffectiveType() on untyped row = %q, want %q", got, TypeExpense)
	}
}

func TestEffectiveColor(t *testing.T) {
	c := Category{Color: "emerald"}
	if got := c.EffectiveColor(); got != "emerald" {
		t.Errorf("EffectiveColor() = %q, want %q", got, "emerald")
	}

	c = Category{}
	if got := c.EffectiveColor(); got != DefaultColor {
		t.Errorf("EffectiveColor() on uncolored row = %q, want %q", got, DefaultColor)
	}
}

func TestNameIndex(t *testing.T) {
	ix := NewNameIndex(
		[]Category{{ID: 1, Name: "Transport"}},
		[]Account{{ID: 2, Name: "GoPay"}},
	)

	id := func(v int64) *int64 { return &v }

	tests := []struct {
		name     string
		resolve  func() (string, bool)
		wantName string
		wantOK   bool
	}{
		{
			name:     "known category",
			resolve:  func() (string, bool) { return ix.CategoryName(id(1)) },
			wantName: "Transport",
			wantOK:   true,
		},
		{
			name:     "unset category falls back",
			resolve:  func() (string, bool) { return ix.CategoryName(nil) },
			wantName: UncategorizedLabel,
		},
		{
			name:     "dangling category falls back",
			resolve:  func() (string, bool) { return ix.CategoryName(id(99)) },
			wantName: UncategorizedLabel,
		},
		{
			name:     "known account",
			resolve:  func() (string, bool) { return ix.AccountName(id(2)) },
			wantName: "GoPay",
			wantOK:   true,
		},
		{
			name:     "unset account falls back",
			resolve:  func() (string, bool) { return ix.AccountName(nil) },
			wantName: NoAccountLabel,
		},
		{
			name:     "dangling account falls back",
			resolve:  func() (string, bool) { return ix.AccountName(id(99)) },
			wantName: NoAccountLabel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := tt.resolve()
			if name != tt.wantName || ok != tt.wantOK {
				t.Errorf("resolve = (%q, %v), want (%q, %v)", name, ok, tt.wantName, tt.wantOK)
			}
		})
	}
}
