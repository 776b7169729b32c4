package repository

import "errors"

var (
	// ErrDuplicateKey maps unique and composite primary key collisions.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrForeignKey maps inserts that reference a nonexistent user.
	ErrForeignKey = errors.New("foreign key violation")
)
