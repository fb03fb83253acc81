package wizard

import (
	"github.com/conn-castle/template-wizard/internal/messages"
)

// StatusKind classifies the wizard status slot.
type StatusKind int

// Status kinds. StatusNone means the slot is empty.
const (
	StatusNone StatusKind = iota
	StatusWarning
	StatusError
)

// String returns the lower-case kind name.
func (k StatusKind) String() string {
	switch k {
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	default:
		return "none"
	}
}

// Status is the single advisory shown by the wizard. It never blocks a transition.
type Status struct {
	Kind    StatusKind
	Message string
}

// WarningStatus returns a warning advisory.
func WarningStatus(message string) Status {
	return Status{Kind: StatusWarning, Message: message}
}

// ErrorStatus returns an error advisory for a recoverable failure.
func ErrorStatus(message string) Status {
	return Status{Kind: StatusError, Message: message}
}

// IsZero reports whether the slot is empty.
func (s Status) IsZero() bool { return s.Kind == StatusNone }

// String renders the status with a kind prefix, or "" when empty.
func (s Status) String() string {
	switch s.Kind {
	case StatusWarning:
		return messages.WizardStatusWarningPrefix + s.Message
	case StatusError:
		return messages.WizardStatusErrorPrefix + s.Message
	default:
		return ""
	}
}
