package store

import (
	"context"

	"biliticket/tickethub/internal/model"
)

// TicketStore is the client surface shared by both front-ends.
// Implementations: actor (dedicated worker goroutine fed by a command
// channel) or shared (RWMutex-guarded map on the caller's goroutine).
//
// Get returns a value copy of the stored ticket; the second result
// reports whether the id exists. Patch returns *model.NotFoundError
// for an absent id and *model.IdentityMismatchError when the patch's
// embedded id disagrees with the target id.
type TicketStore interface {
	Insert(ctx context.Context, ticket model.Ticket) error
	Get(ctx context.Context, id model.TicketID) (model.Ticket, bool, error)
	Patch(ctx context.Context, id model.TicketID, patch model.TicketPatch) error
}
