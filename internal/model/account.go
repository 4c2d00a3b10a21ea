package model

// AccountType indicates the kind of account holding funds.
type AccountType string

const (
	// AccountTypeBank represents a bank account.
	AccountTypeBank AccountType = "bank"
	// AccountTypeEwallet represents an e-wallet account.
	AccountTypeEwallet AccountType = "ewallet"
)

// Account represents a place money lives.
//
// Balance is in the smallest currency unit and may be negative. Names are
// not guaranteed unique; identity is the server-assigned ID.
type Account struct {
	Type    AccountType `json:"type"`
	Name    string      `json:"name"`
	Icon    string      `json:"icon"`
	ID      int64       `json:"id"`
	Balance int64       `json:"balance"`
}
