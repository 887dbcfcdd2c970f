package domain

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrEndorsementNotFound = errors.New("endorsement not found")
)

var (
	ErrAlreadyVoted = errors.New("user already voted in this category")
	ErrNotOrganizer = errors.New("only the event organizer may do this")
)

var (
	ErrValidation = errors.New("validation error")
)
