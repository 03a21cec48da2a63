// internal/errors/errors.go
package appErrors

import "fmt"

// ErrNotFound is a sentinel error for a missing record
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Helper constructor
func NewNotFound(resource, id string) error {
	return &ErrNotFound{Resource: resource, ID: id}
}

// ErrInvalidID signals a malformed record id in a request path or body
type ErrInvalidID struct {
	ID string
}

func (e *ErrInvalidID) Error() string {
	return fmt.Sprintf("invalid ID format: %s", e.ID)
}

func NewInvalidID(id string) error {
	return &ErrInvalidID{ID: id}
}

// ErrAlreadySent signals a rejected draft -> sent transition
type ErrAlreadySent struct {
	CampaignID string
}

func (e *ErrAlreadySent) Error() string {
	return fmt.Sprintf("campaign %s has already been sent", e.CampaignID)
}

func NewAlreadySent(id string) error {
	return &ErrAlreadySent{CampaignID: id}
}

// ErrValidation signals a malformed or incomplete request payload
type ErrValidation struct {
	Msg string
}

func (e *ErrValidation) Error() string {
	return e.Msg
}

func NewValidation(format string, args ...any) error {
	return &ErrValidation{Msg: fmt.Sprintf(format, args...)}
}
