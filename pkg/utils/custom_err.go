package utils

import "errors"

var (
	ErrInvalidCity                = errors.New("please enter a valid city")
	ErrInvalidDayCount            = errors.New("invalid number of days")
	ErrItineraryGenerationFailed  = errors.New("failed to generate a valid itinerary")
	ErrUnrecognizedItineraryShape = errors.New("unrecognized itinerary content shape")
	ErrItineraryNotFound          = errors.New("itinerary not found")
	ErrDestinationNotFound        = errors.New("destination not found")
	ErrAccountNotFound            = errors.New("account not found")
	ErrEmailAlreadyExists         = errors.New("email already registered")
	ErrInvalidCredentials         = errors.New("invalid credentials")
	ErrForbidden                  = errors.New("forbidden")
	ErrInvalidInput               = errors.New("invalid input")
	ErrDatabaseError              = errors.New("database error")
)
