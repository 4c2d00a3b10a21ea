package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModalLifecycle(t *testing.T) {
	var m Modal
	assert.Equal(t, ModalClosed, m.State)

	m.OpenCreate()
	assert.Equal(t, ModalForm, m.State)
	assert.False(t, m.IsEditing())

	m.BeginSave()
	assert.True(t, m.Saving)

	m.Fail("API error, cannot save transaction")
	assert.False(t, m.Saving)
	assert.Equal(t, "API error, cannot save transaction", m.Err)
	assert.Equal(t, ModalForm, m.State)

	m.BeginSave()
	assert.Empty(t, m.Err, "retrying clears the previous error")

	m.Close()
	assert.Equal(t, Modal{}, m)
}

func TestModalOpenEdit(t *testing.T) {
	var m Modal
	m.OpenEdit(12)

	assert.Equal(t, ModalForm, m.State)
	assert.True(t, m.IsEditing())
	assert.Equal(t, int64(12), m.EditID)
}

func TestModalOpenDelete(t *testing.T) {
	var m Modal
	m.Fail("stale error")
	m.OpenDelete(5)

	assert.Equal(t, ModalDeleteConfirm, m.State)
	assert.Equal(t, int64(5), m.DeleteID)
	assert.Empty(t, m.Err, "opening resets transient state")
}
