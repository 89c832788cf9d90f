package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKind(t *testing.T) {
	cases := []struct {
		err  error
		kind string
	}{
		{ErrUnauthorized, "unauthorized"},
		{ErrForbidden, "forbidden"},
		{ErrAlreadyTicketed, "already_reserved"},
		{ErrEventUnavailable, "event_unavailable"},
		{ErrTicketCheckedIn, "already_checked_in"},
		{ErrTicketNotActive, "ticket_not_active"},
		{ErrEntryTokenInvalid, "entry_token_invalid"},
		{ErrEventNotFound, "not_found"},
		{ErrTicketNotFound, "not_found"},
		{ErrUserNotFound, "not_found"},
		{ErrValidation, "validation"},
		{fmt.Errorf("wrapped: %w", ErrEventUnavailable), "event_unavailable"},
		{errors.New("pq: connection refused"), "internal"},
	}

	for _, c := range cases {
		assert.Equal(t, c.kind, ErrorKind(c.err), "kind of %v", c.err)
	}
}

func TestAlreadyTicketedError(t *testing.T) {
	existing := &Ticket{ID: "t0"}
	err := fmt.Errorf("create ticket: %w", &AlreadyTicketedError{Existing: existing})

	assert.ErrorIs(t, err, ErrAlreadyTicketed)

	var already *AlreadyTicketedError
	require.ErrorAs(t, err, &already)
	assert.Equal(t, "t0", already.Existing.ID)
}
