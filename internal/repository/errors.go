package repository

import "errors"

var (
	ErrNoRows        = errors.New("no rows in result set")
	ErrAlreadyExists = errors.New("already exists")
)
