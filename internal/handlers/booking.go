package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Immortal-romantic/hotel-booking/internal/database"
	"github.com/Immortal-romantic/hotel-booking/internal/handlers/dto"
	"github.com/Immortal-romantic/hotel-booking/internal/models"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type BookingHandler struct {
	store Store
}

func NewBookingHandler(store Store) *BookingHandler {
	return &BookingHandler{store: store}
}

func parseDates(startStr, endStr string) (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, startStr)
	if err != nil {
		return
	}
	end, err = time.Parse(dateLayout, endStr)
	return
}

// CreateBooking создает бронь после проверки комнаты, интервала и пересечений
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, end, err := parseDates(req.DateStart, req.DateEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dates must be in YYYY-MM-DD format"})
		return
	}

	if _, err := h.store.GetRoom(req.RoomID); err != nil {
		if errors.Is(err, database.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check room"})
		return
	}

	if !models.ValidInterval(start, end) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date_start must not be after date_end"})
		return
	}

	overlaps, err := h.store.HasOverlap(req.RoomID, start, end, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check availability"})
		return
	}
	if overlaps {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room is already booked on given dates"})
		return
	}

	booking := &models.Booking{
		RoomID:    req.RoomID,
		DateStart: start,
		DateEnd:   end,
	}

	if err := h.store.CreateBooking(booking); err != nil {
		// Гонка: параллельная бронь успела раньше и сработал constraint
		if errors.Is(err, database.ErrBookingConflict) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "room is already booked on given dates"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking_id": booking.ID})
}

// UpdateBooking повторяет цепочку проверок, исключая из поиска пересечений
// саму обновляемую бронь. Комнату можно переназначить.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, end, err := parseDates(req.DateStart, req.DateEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dates must be in YYYY-MM-DD format"})
		return
	}

	booking, err := h.store.GetBooking(req.BookingID)
	if err != nil {
		if errors.Is(err, database.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check booking"})
		return
	}

	if _, err := h.store.GetRoom(req.RoomID); err != nil {
		if errors.Is(err, database.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check room"})
		return
	}

	if !models.ValidInterval(start, end) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date_start must not be after date_end"})
		return
	}

	overlaps, err := h.store.HasOverlap(req.RoomID, start, end, booking.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check availability"})
		return
	}
	if overlaps {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room is already booked on given dates"})
		return
	}

	booking.RoomID = req.RoomID
	booking.DateStart = start
	booking.DateEnd = end

	if err := h.store.UpdateBooking(booking); err != nil {
		if errors.Is(err, database.ErrBookingConflict) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "room is already booked on given dates"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DeleteBooking удаляет бронь
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	var req dto.DeleteBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.DeleteBooking(req.BookingID); err != nil {
		if errors.Is(err, database.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListBookings возвращает брони комнаты по возрастанию date_start
func (h *BookingHandler) ListBookings(c *gin.Context) {
	roomIDStr := c.Query("room_id")
	if roomIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room_id is required"})
		return
	}

	roomID, err := strconv.ParseUint(roomIDStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room_id must be an integer"})
		return
	}

	if _, err := h.store.GetRoom(uint(roomID)); err != nil {
		if errors.Is(err, database.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check room"})
		return
	}

	bookings, err := h.store.ListBookings(uint(roomID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp[i] = dto.BookingResponse{
			BookingID: booking.ID,
			DateStart: booking.DateStart.Format(dateLayout),
			DateEnd:   booking.DateEnd.Format(dateLayout),
		}
	}

	c.JSON(http.StatusOK, resp)
}
