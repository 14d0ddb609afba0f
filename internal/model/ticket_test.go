package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTitle(t *testing.T, raw string) TicketTitle {
	t.Helper()
	title, err := ParseTitle(raw)
	require.NoError(t, err)
	return title
}

func mustDescription(t *testing.T, raw string) TicketDescription {
	t.Helper()
	desc, err := ParseDescription(raw)
	require.NoError(t, err)
	return desc
}

func TestParseTitleRoundTrip(t *testing.T) {
	title := mustTitle(t, "this is a title")
	assert.Equal(t, "this is a title", title.String())
}

func TestParseTitleBounds(t *testing.T) {
	_, err := ParseTitle("")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)
	assert.Equal(t, ReasonEmpty, verr.Reason)

	_, err = ParseTitle(strings.Repeat("a", MaxTitleBytes+1))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ReasonTooLong, verr.Reason)
	assert.Equal(t, strings.Repeat("a", MaxTitleBytes+1), verr.Value)

	boundary := strings.Repeat("a", MaxTitleBytes)
	title, err := ParseTitle(boundary)
	require.NoError(t, err)
	assert.Equal(t, boundary, title.String())
}

func TestParseDescriptionRoundTrip(t *testing.T) {
	desc := mustDescription(t, "this is a description")
	assert.Equal(t, "this is a description", desc.String())
}

func TestParseDescriptionBounds(t *testing.T) {
	_, err := ParseDescription("")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "description", verr.Field)
	assert.Equal(t, ReasonEmpty, verr.Reason)

	_, err = ParseDescription(strings.Repeat("b", MaxDescriptionBytes+1))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ReasonTooLong, verr.Reason)

	boundary := strings.Repeat("b", MaxDescriptionBytes)
	desc, err := ParseDescription(boundary)
	require.NoError(t, err)
	assert.Equal(t, boundary, desc.String())
}

func TestParseStatus(t *testing.T) {
	cases := map[string]TicketStatus{
		"todo":       StatusToDo,
		"ToDo":       StatusToDo,
		"TODO":       StatusToDo,
		"inprogress": StatusInProgress,
		"InProgress": StatusInProgress,
		"done":       StatusDone,
		"DONE":       StatusDone,
	}
	for raw, want := range cases {
		got, err := ParseStatus(raw)
		require.NoError(t, err, "parsing %q", raw)
		assert.Equal(t, want, got, "parsing %q", raw)
	}

	for _, raw := range []string{"", "doing", "to do", "in-progress", "closed"} {
		_, err := ParseStatus(raw)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "parsing %q", raw)
		assert.Equal(t, "status", verr.Field)
		assert.Equal(t, raw, verr.Value)
	}
}

func TestApplyPatch(t *testing.T) {
	ticket := NewTicket(1, mustTitle(t, "Original Title"), mustDescription(t, "Original Description"), StatusToDo)

	title := mustTitle(t, "Updated Title")
	status := StatusInProgress
	err := ticket.ApplyPatch(TicketPatch{ID: 1, Title: &title, Status: &status})
	require.NoError(t, err)

	assert.Equal(t, "Updated Title", ticket.Title.String())
	assert.Equal(t, "Original Description", ticket.Description.String())
	assert.Equal(t, StatusInProgress, ticket.Status)
}

func TestApplyPatchIdentityMismatch(t *testing.T) {
	ticket := NewTicket(1, mustTitle(t, "Original Title"), mustDescription(t, "Original Description"), StatusToDo)

	title := mustTitle(t, "Updated Title")
	err := ticket.ApplyPatch(TicketPatch{ID: 2, Title: &title})

	var mismatch *IdentityMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, TicketID(1), mismatch.TicketID)
	assert.Equal(t, TicketID(2), mismatch.PatchID)

	// No field may change on a rejected patch.
	assert.Equal(t, "Original Title", ticket.Title.String())
	assert.Equal(t, StatusToDo, ticket.Status)
}

func TestTicketJSON(t *testing.T) {
	ticket := NewTicket(1, mustTitle(t, "Test Ticket"), mustDescription(t, "This is a test ticket"), StatusToDo)

	data, err := json.Marshal(ticket)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"title":"Test Ticket","description":"This is a test ticket","status":"ToDo"}`, string(data))

	var decoded Ticket
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, ticket, decoded)
}

func TestTicketJSONRejectsInvalid(t *testing.T) {
	var ticket Ticket
	err := json.Unmarshal([]byte(`{"id":1,"title":"","description":"d","status":"ToDo"}`), &ticket)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)

	err = json.Unmarshal([]byte(`{"id":1,"title":"t","description":"d","status":"bogus"}`), &ticket)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Field)
}

func TestTicketPatchJSONAbsentFields(t *testing.T) {
	var patch TicketPatch
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"title":"Updated Title","status":"InProgress"}`), &patch))

	assert.Equal(t, TicketID(1), patch.ID)
	require.NotNil(t, patch.Title)
	assert.Equal(t, "Updated Title", patch.Title.String())
	require.NotNil(t, patch.Status)
	assert.Equal(t, StatusInProgress, *patch.Status)
	assert.Nil(t, patch.Description)
}
