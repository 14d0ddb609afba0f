package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

const (
	MaxTitleBytes       = 50
	MaxDescriptionBytes = 500
)

// TicketID is the store key for a ticket. Zero is a valid id.
type TicketID uint64

func NewTicketID(v uint64) TicketID { return TicketID(v) }

func (id TicketID) Uint64() uint64 { return uint64(id) }

func (id TicketID) String() string { return strconv.FormatUint(uint64(id), 10) }

// TicketTitle is a non-empty string of at most MaxTitleBytes bytes.
// The zero value is invalid; build one with ParseTitle.
type TicketTitle struct {
	value string
}

func ParseTitle(raw string) (TicketTitle, error) {
	if raw == "" {
		return TicketTitle{}, &ValidationError{Field: "title", Value: raw, Reason: ReasonEmpty}
	}
	if len(raw) > MaxTitleBytes {
		return TicketTitle{}, &ValidationError{Field: "title", Value: raw, Reason: ReasonTooLong}
	}
	return TicketTitle{value: raw}, nil
}

func (t TicketTitle) String() string { return t.value }

func (t TicketTitle) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.value)
}

func (t *TicketTitle) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseTitle(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TicketDescription is a non-empty string of at most MaxDescriptionBytes bytes.
// The zero value is invalid; build one with ParseDescription.
type TicketDescription struct {
	value string
}

func ParseDescription(raw string) (TicketDescription, error) {
	if raw == "" {
		return TicketDescription{}, &ValidationError{Field: "description", Value: raw, Reason: ReasonEmpty}
	}
	if len(raw) > MaxDescriptionBytes {
		return TicketDescription{}, &ValidationError{Field: "description", Value: raw, Reason: ReasonTooLong}
	}
	return TicketDescription{value: raw}, nil
}

func (d TicketDescription) String() string { return d.value }

func (d TicketDescription) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.value)
}

func (d *TicketDescription) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseDescription(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TicketStatus is the ticket workflow state.
type TicketStatus int

const (
	StatusToDo TicketStatus = iota
	StatusInProgress
	StatusDone
)

// ParseStatus matches "todo", "inprogress" and "done" case-insensitively.
func ParseStatus(raw string) (TicketStatus, error) {
	switch strings.ToLower(raw) {
	case "todo":
		return StatusToDo, nil
	case "inprogress":
		return StatusInProgress, nil
	case "done":
		return StatusDone, nil
	default:
		return StatusToDo, &ValidationError{Field: "status", Value: raw, Reason: ReasonUnknownStatus}
	}
}

func (s TicketStatus) String() string {
	switch s {
	case StatusToDo:
		return "ToDo"
	case StatusInProgress:
		return "InProgress"
	case StatusDone:
		return "Done"
	default:
		return "ToDo"
	}
}

func (s TicketStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *TicketStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Ticket is a single work item. The ID never changes after creation;
// the remaining fields change only through ApplyPatch.
type Ticket struct {
	ID          TicketID          `json:"id"`
	Title       TicketTitle       `json:"title"`
	Description TicketDescription `json:"description"`
	Status      TicketStatus      `json:"status"`
}

func NewTicket(id TicketID, title TicketTitle, description TicketDescription, status TicketStatus) Ticket {
	return Ticket{ID: id, Title: title, Description: description, Status: status}
}

// Validate rejects tickets whose validated fields were never
// constructed, e.g. a decoded body that omitted them. An absent status
// decodes to the zero value, which is the valid ToDo state.
func (t Ticket) Validate() error {
	if t.Title == (TicketTitle{}) {
		return &ValidationError{Field: "title", Value: "", Reason: ReasonEmpty}
	}
	if t.Description == (TicketDescription{}) {
		return &ValidationError{Field: "description", Value: "", Reason: ReasonEmpty}
	}
	return nil
}

// TicketPatch describes a partial update. A nil field leaves the
// corresponding ticket field unchanged. Patches are built per request
// and never stored.
type TicketPatch struct {
	ID          TicketID           `json:"id"`
	Title       *TicketTitle       `json:"title,omitempty"`
	Description *TicketDescription `json:"description,omitempty"`
	Status      *TicketStatus      `json:"status,omitempty"`
}

// ApplyPatch replaces every field the patch carries. A patch whose id
// differs from the ticket's is rejected without touching any field; a
// patch can never re-key a ticket.
func (t *Ticket) ApplyPatch(patch TicketPatch) error {
	if t.ID != patch.ID {
		return &IdentityMismatchError{TicketID: t.ID, PatchID: patch.ID}
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	return nil
}
