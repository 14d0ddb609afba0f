package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"biliticket/tickethub/internal/model"
	"biliticket/tickethub/internal/store"
	"biliticket/tickethub/pkg/response"
)

type TicketHandler struct {
	store store.TicketStore
}

func NewTicketHandler(ticketStore store.TicketStore) *TicketHandler {
	return &TicketHandler{store: ticketStore}
}

// Create inserts the posted ticket and answers {"id": <integer>}.
// Posting an existing id overwrites the stored ticket.
func (h *TicketHandler) Create(c *gin.Context) {
	var ticket model.Ticket
	if err := c.ShouldBindJSON(&ticket); err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := ticket.Validate(); err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := h.store.Insert(c.Request.Context(), ticket); err != nil {
		writeStoreError(c, err)
		return
	}

	response.OK(c, gin.H{"id": ticket.ID})
}

// Get looks up the id carried in the request body and answers the full
// ticket JSON.
func (h *TicketHandler) Get(c *gin.Context) {
	var id model.TicketID
	if err := c.ShouldBindJSON(&id); err != nil {
		response.BadRequest(c, err)
		return
	}

	ticket, ok, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	if !ok {
		response.BadRequest(c, &model.NotFoundError{ID: id})
		return
	}

	response.OK(c, ticket)
}

// Patch applies the posted partial update to the ticket it names.
func (h *TicketHandler) Patch(c *gin.Context) {
	var patch model.TicketPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := h.store.Patch(c.Request.Context(), patch.ID, patch); err != nil {
		writeStoreError(c, err)
		return
	}

	response.OK(c, gin.H{})
}

// writeStoreError maps domain failures to 400 with {"error": msg}.
// A closed store is a service fault, never caller input.
func writeStoreError(c *gin.Context, err error) {
	var (
		notFound *model.NotFoundError
		mismatch *model.IdentityMismatchError
	)
	switch {
	case errors.As(err, &notFound), errors.As(err, &mismatch):
		response.BadRequest(c, err)
	case errors.Is(err, model.ErrStoreClosed):
		response.InternalError(c, err.Error())
	default:
		response.InternalError(c, "ticket store failure")
	}
}
