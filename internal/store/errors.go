package store

import "errors"

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate document")
	ErrInvalidID = errors.New("invalid document id")
)
