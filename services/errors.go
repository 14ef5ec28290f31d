package services

import "errors"

// Business-rule errors returned by the booking, review and class services.
// Handlers map these onto HTTP statuses with errors.Is.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrForbidden        = errors.New("you do not own this resource")
	ErrAlreadyBooked    = errors.New("you already have a confirmed booking for this class")
	ErrAlreadyCancelled = errors.New("this booking has already been cancelled")
	ErrAlreadyReviewed  = errors.New("you have already reviewed this class")
	ErrClassFull        = errors.New("this class is fully booked")
)
