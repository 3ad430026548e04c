package domain

import "errors"

var (
	ErrInvalidID       = errors.New("invalid id")
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidTitle    = errors.New("invalid title")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidLink     = errors.New("invalid link")
	ErrInvalidLevel    = errors.New("invalid skill level")
	ErrDuplicateID     = errors.New("duplicate id")
)
