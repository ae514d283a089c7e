package model

import "errors"

var (
	// ErrNotFound is returned when a user or request id does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when registering an already used email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials is returned on failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNoActiveSession is returned when an operation requires a login.
	ErrNoActiveSession = errors.New("no active session")
	// ErrInvalidParticipants is returned for self-targeted or unresolved requests.
	ErrInvalidParticipants = errors.New("invalid request participants")
	// ErrInvalidTransition is returned for a status change the lifecycle forbids.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrRatingOutOfRange is returned for rating values outside 1..5.
	ErrRatingOutOfRange = errors.New("rating out of range")
	// ErrSkillNotOffered is returned when a request names a skill the
	// participant does not list.
	ErrSkillNotOffered = errors.New("skill not offered")
	// ErrNotDeletable is returned when deleting a request in a protected state
	// or on behalf of someone other than the sender.
	ErrNotDeletable = errors.New("request not deletable")
)
