package repository

import "errors"

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateReference is returned when a booking insert hits the unique
	// constraint on booking_reference.
	ErrDuplicateReference = errors.New("booking reference already exists")
	// ErrDuplicateReview is returned when a booking already has a review.
	ErrDuplicateReview = errors.New("booking already has a review")
)
