package domain

import "errors"

// Error taxonomy shared by the repository and service layers. Repositories
// map driver errors onto these; services return them (possibly wrapped);
// nothing below the HTTP layer deals in status codes.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidResponse     = errors.New("invalid response value")
	ErrInvitationExpired   = errors.New("invitation has expired")
	ErrAlreadyResponded    = errors.New("invitation already responded to")
	ErrDuplicateInvitation = errors.New("duplicate invitation")
	ErrConflict            = errors.New("conflict")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrStorage             = errors.New("storage failure")
)
