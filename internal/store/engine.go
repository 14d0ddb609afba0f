package store

import (
	"biliticket/tickethub/internal/model"
)

// engine is the authoritative id-to-ticket map. It performs no
// synchronization of its own: exactly one front-end owns an engine and
// brings its own exclusion (a lock, or a single worker goroutine).
type engine struct {
	tickets map[model.TicketID]model.Ticket
}

func newEngine() *engine {
	return &engine{tickets: make(map[model.TicketID]model.Ticket)}
}

// insert stores the ticket under its own id, overwriting any existing
// entry. Last write wins; duplicate ids are not rejected.
func (e *engine) insert(ticket model.Ticket) {
	e.tickets[ticket.ID] = ticket
}

// get returns a value copy of the entry, never a live alias into the map.
func (e *engine) get(id model.TicketID) (model.Ticket, bool) {
	ticket, ok := e.tickets[id]
	return ticket, ok
}

// patch mutates the entry in place. Lookup and mutation happen inside
// the caller's single exclusive section, so two concurrent patches to
// one id can never lose an update.
func (e *engine) patch(id model.TicketID, patch model.TicketPatch) error {
	ticket, ok := e.tickets[id]
	if !ok {
		return &model.NotFoundError{ID: id}
	}
	if err := ticket.ApplyPatch(patch); err != nil {
		return err
	}
	e.tickets[id] = ticket
	return nil
}
