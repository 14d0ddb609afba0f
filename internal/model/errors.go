package model

import (
	"errors"
	"fmt"
)

// ErrStoreClosed is returned by the actor front-end after its worker
// has shut down. It signals misuse of the store handle, not bad input.
var ErrStoreClosed = errors.New("ticket store is closed")

// Validation failure reasons.
const (
	ReasonEmpty         = "must not be empty"
	ReasonTooLong       = "exceeds the maximum length"
	ReasonUnknownStatus = "must be one of todo, inprogress, done"
)

// ValidationError reports a rejected raw value for one of the
// validated ticket fields. Always recoverable by the caller.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// NotFoundError reports a get or patch against an id the store has
// never seen.
type NotFoundError struct {
	ID TicketID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("ticket %s not found", e.ID)
}

// IdentityMismatchError reports a patch whose embedded id disagrees
// with the ticket it was applied to.
type IdentityMismatchError struct {
	TicketID TicketID
	PatchID  TicketID
}

func (e *IdentityMismatchError) Error() string {
	return fmt.Sprintf("ticket id mismatch: ticket %s, patch %s", e.TicketID, e.PatchID)
}
