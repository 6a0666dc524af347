package domain

import "errors"

// Sentinel errors for the borrowal lifecycle and catalog lookups. Services
// return these (possibly wrapped); the API layer classifies them with KindOf.
var (
	ErrBookNotFound     = errors.New("book not found")
	ErrAuthorNotFound   = errors.New("author not found")
	ErrGenreNotFound    = errors.New("genre not found")
	ErrMemberNotFound   = errors.New("member not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrBorrowalNotFound = errors.New("borrowal not found")

	ErrBookUnavailable = errors.New("book is not available for borrowing")
	ErrAlreadyReturned = errors.New("book already returned")
	ErrMemberOverdue   = errors.New("cannot borrow books while having overdue items")
	ErrEmailTaken      = errors.New("user already exists")

	ErrInvalidID       = errors.New("invalid identifier")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidStatus   = errors.New("invalid borrowal status")
	ErrReferenceChange = errors.New("book and member references cannot be changed")
	ErrInvalidLogin    = errors.New("invalid email or password")

	ErrTransactionFailed = errors.New("transaction failed")
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindConflict
	KindValidation
	KindTransaction
	KindUnauthorized
)

// KindOf maps a domain error to its taxonomy bucket. Unknown errors are
// internal and must not have their detail exposed to callers.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrBookNotFound),
		errors.Is(err, ErrAuthorNotFound),
		errors.Is(err, ErrGenreNotFound),
		errors.Is(err, ErrMemberNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrBorrowalNotFound):
		return KindNotFound
	case errors.Is(err, ErrBookUnavailable),
		errors.Is(err, ErrAlreadyReturned),
		errors.Is(err, ErrMemberOverdue),
		errors.Is(err, ErrEmailTaken):
		return KindConflict
	case errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrReferenceChange):
		return KindValidation
	case errors.Is(err, ErrTransactionFailed):
		return KindTransaction
	case errors.Is(err, ErrInvalidLogin):
		return KindUnauthorized
	}
	return KindInternal
}
