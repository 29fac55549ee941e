package domain

import "errors"

// Domain errors.
var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrDuplicateIdentity   = errors.New("participant identity already exists")
	ErrUnavailable         = errors.New("roster temporarily unavailable")
)

// Refinements of the kinds above. Each one errors.Is its parent kind.
var (
	ErrVariantMissing = &kindError{msg: "variant number is missing", kind: ErrInvalidArgument}
	ErrVariantInvalid = &kindError{msg: "variant must be an integer from 1 to 30", kind: ErrInvalidArgument}
	ErrInvalidVariant = &kindError{msg: "variant outside of the stored domain", kind: ErrInvalidArgument}
	ErrNotRegistered  = &kindError{msg: "participant is not registered", kind: ErrParticipantNotFound}
)

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// Code returns a stable, transport-friendly code for a domain error, or ""
// when err carries no domain meaning.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrVariantMissing):
		return "variant_missing"
	case errors.Is(err, ErrVariantInvalid), errors.Is(err, ErrInvalidVariant):
		return "variant_invalid"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrParticipantNotFound):
		return "not_registered"
	case errors.Is(err, ErrDuplicateIdentity):
		return "duplicate_identity"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	default:
		return ""
	}
}
