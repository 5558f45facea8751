package dto

import "time"

type CreateRoomRequest struct {
	Description string   `json:"description"`
	Text        string   `json:"text"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
}

type DeleteRoomRequest struct {
	RoomID uint `json:"room_id" binding:"required"`
}

type RoomResponse struct {
	RoomID      uint      `json:"room_id"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}
