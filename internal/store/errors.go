package store

import "errors"

var (
	ErrRunExists      = errors.New("run already archived")
	ErrRecordNotFound = errors.New("record not found")
)
