package tui

import (
	"time"

	"duit/internal/model"
)

// dataLoadedMsg carries a full refresh from the API. A non-nil err means
// the refresh failed and the views keep their previous data.
type dataLoadedMsg struct {
	err          error
	accounts     []model.Account
	categories   []model.Category
	transactions []model.Transaction
}

// themeSavedMsg reports whether persisting the theme preference worked.
type themeSavedMsg struct {
	err error
}

// clearStatusMsg expires the status line.
type clearStatusMsg struct {
	at time.Time
}
