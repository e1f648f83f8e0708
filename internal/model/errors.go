package model

import "errors"

// Domain errors shared by the repositories and services. All of them are
// terminal outcomes for the call that produced them: the caller must change
// its input (pick another slot, refresh its view), never blindly retry.
var (
	ErrDuplicateSlot           = errors.New("slot already exists for this admin, date and start time")
	ErrSlotNotFound            = errors.New("slot not found")
	ErrSlotAlreadyBooked       = errors.New("slot is already booked")
	ErrSlotBooked              = errors.New("slot is booked and cannot be deleted")
	ErrSlotCrossesMidnight     = errors.New("slot would cross the day boundary")
	ErrInvalidDate             = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidTime             = errors.New("time must be formatted as HH:MM")
	ErrInvalidDuration         = errors.New("duration is not an allowed slot length")
	ErrInvalidRating           = errors.New("rating must be between 1 and 5")
	ErrInterviewNotFound       = errors.New("interview not found")
	ErrIllegalStatusTransition = errors.New("illegal interview status transition")
)
