package components

// RefreshRequestMsg asks the root model to reload all data from the API.
type RefreshRequestMsg struct{}

// MutationDoneMsg reports the outcome of a create, update or delete call.
// On success the root model refreshes and shows Message in the status
// line; on failure the originating modal stays open and shows Err.
type MutationDoneMsg struct {
	Err     error
	Message string
}

// StatusMsg sets the status line text.
type StatusMsg struct {
	Text    string
	Warning bool
}
