package dto

type CreateBookingRequest struct {
	RoomID    uint   `json:"room_id" binding:"required"`
	DateStart string `json:"date_start" binding:"required"`
	DateEnd   string `json:"date_end" binding:"required"`
}

type UpdateBookingRequest struct {
	BookingID uint   `json:"booking_id" binding:"required"`
	RoomID    uint   `json:"room_id" binding:"required"`
	DateStart string `json:"date_start" binding:"required"`
	DateEnd   string `json:"date_end" binding:"required"`
}

type DeleteBookingRequest struct {
	BookingID uint `json:"booking_id" binding:"required"`
}

type BookingResponse struct {
	BookingID uint   `json:"booking_id"`
	DateStart string `json:"date_start"`
	DateEnd   string `json:"date_end"`
}
