package carousel

import "gitfolio.dev/internal/models"

// ModalState is the open/closed state of the detail modal
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpen
)

// Modal is the detail overlay. It only shows what its parent hands it.
type Modal struct {
	state   ModalState
	project *models.ProjectViewModel
}

// Open shows vm
func (m *Modal) Open(vm models.ProjectViewModel) {
	m.state = ModalOpen
	m.project = &vm
}

// Close dismisses the modal and drops its view model
func (m *Modal) Close() {
	m.state = ModalClosed
	m.project = nil
}

// State returns the current state
func (m *Modal) State() ModalState { return m.state }

// IsOpen reports whether the modal is shown
func (m *Modal) IsOpen() bool { return m.state == ModalOpen }

// Project returns the shown view model, or nil when closed
func (m *Modal) Project() *models.ProjectViewModel { return m.project }
