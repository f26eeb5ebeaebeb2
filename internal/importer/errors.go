package importer

import "errors"

var (
	ErrMissingColumn = errors.New("input is missing a required column")
	ErrInvalidRow    = errors.New("invalid row")
)
