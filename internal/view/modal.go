package view

// ModalState identifies the overlay a list view is showing.
type ModalState int

// Modal states. The machine runs closed → form → saving → closed or
// form(error), with a parallel delete-confirm path.
const (
	ModalClosed ModalState = iota
	ModalForm
	ModalDeleteConfirm
)

// Modal is the per-view modal state machine. EditID zero means the form
// creates a new entity.
type Modal struct {
	Err      string
	EditID   int64
	DeleteID int64
	State    ModalState
	Saving   bool
}

// OpenCreate opens the form for a new entity.
func (m *Modal) OpenCreate() {
	*m = Modal{State: ModalForm}
}

// OpenEdit opens the form for an existing entity.
func (m *Modal) OpenEdit(id int64) {
	*m = Modal{State: ModalForm, EditID: id}
}

// OpenDelete opens the delete confirmation for an entity.
func (m *Modal) OpenDelete(id int64) {
	*m = Modal{State: ModalDeleteConfirm, DeleteID: id}
}

// Close dismisses the modal and clears all transient state.
func (m *Modal) Close() {
	*m = Modal{}
}

// BeginSave marks a mutation in flight and clears any prior error.
func (m *Modal) BeginSave() {
	m.Saving = true
	m.Err = ""
}

// Fail stops the spinner and surfaces the error in the open modal.
func (m *Modal) Fail(msg string) {
	m.Saving = false
	m.Err = msg
}

// IsEditing reports whether the open form edits an existing entity.
func (m *Modal) IsEditing() bool {
	return m.EditID != 0
}
