package server

import (
	"github.com/Immortal-romantic/hotel-booking/internal/handlers"
	"github.com/gin-gonic/gin"
)

func APIEndpoints(r *gin.Engine, roomH *handlers.RoomHandler, bookingH *handlers.BookingHandler, healthH *handlers.HealthHandler) {
	r.GET("/health", healthH.Health)

	rooms := r.Group("/rooms")
	{
		rooms.POST("/create", roomH.CreateRoom)
		rooms.POST("/delete", roomH.DeleteRoom)
		rooms.GET("/list", roomH.ListRooms)
	}

	bookings := r.Group("/bookings")
	{
		bookings.POST("/create", bookingH.CreateBooking)
		bookings.POST("/update", bookingH.UpdateBooking)
		bookings.POST("/delete", bookingH.DeleteBooking)
		bookings.GET("/list", bookingH.ListBookings)
	}
}
