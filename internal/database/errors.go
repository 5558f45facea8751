package database

import "errors"

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrBookingConflict = errors.New("room is already booked on given dates")
)
