package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrUnknownKind   = errors.New("unknown category kind")
	ErrKindMismatch  = errors.New("item kind does not match category kind")
	ErrNegativePrice = errors.New("price must not be negative")
	ErrItemNotFound  = errors.New("item was not found in category")
)
