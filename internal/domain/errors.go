package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrTicketNotFound = errors.New("ticket not found")
)

var (
	ErrUnauthorized     = errors.New("authentication required")
	ErrForbidden        = errors.New("operation not permitted")
	ErrAlreadyTicketed  = errors.New("user already holds a ticket for this event")
	ErrEventUnavailable = errors.New("event is not open for booking")
	ErrTicketCheckedIn  = errors.New("ticket has already been checked in")
	ErrTicketNotActive  = errors.New("ticket is not active")
)

var (
	ErrEntryTokenInvalid = errors.New("entry token is invalid or expired")
	ErrUsernameTaken     = errors.New("username is already taken")
	ErrValidation        = errors.New("validation error")
)

// ErrorKind maps a domain failure to the machine-readable kind carried
// on the wire. Every transport adapter (REST, bot, realtime) reports
// the same kinds.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrAlreadyTicketed):
		return "already_reserved"
	case errors.Is(err, ErrEventUnavailable):
		return "event_unavailable"
	case errors.Is(err, ErrTicketCheckedIn):
		return "already_checked_in"
	case errors.Is(err, ErrTicketNotActive):
		return "ticket_not_active"
	case errors.Is(err, ErrEntryTokenInvalid):
		return "entry_token_invalid"
	case errors.Is(err, ErrEventNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrTicketNotFound):
		return "not_found"
	case errors.Is(err, ErrValidation), errors.Is(err, ErrUsernameTaken):
		return "validation"
	default:
		return "internal"
	}
}

// AlreadyTicketedError carries the existing ticket so callers can show
// it instead of the one they failed to create.
type AlreadyTicketedError struct {
	Existing *Ticket
}

func (e *AlreadyTicketedError) Error() string {
	return fmt.Sprintf("%v (existing ticket %s)", ErrAlreadyTicketed, e.Existing.ID)
}

func (e *AlreadyTicketedError) Is(target error) bool {
	return target == ErrAlreadyTicketed
}
