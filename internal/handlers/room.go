package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Immortal-romantic/hotel-booking/internal/database"
	"github.com/Immortal-romantic/hotel-booking/internal/handlers/dto"
	"github.com/Immortal-romantic/hotel-booking/internal/models"
	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	store Store
	cache *RoomListCache
}

func NewRoomHandler(store Store, cache *RoomListCache) *RoomHandler {
	return &RoomHandler{store: store, cache: cache}
}

// CreateRoom создает новую комнату
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Старые клиенты присылают описание в поле text
	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = strings.TrimSpace(req.Text)
	}
	if description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description is required"})
		return
	}

	room := &models.Room{
		Description: description,
		Price:       *req.Price,
	}

	if err := h.store.CreateRoom(room); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create room"})
		return
	}

	h.cache.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"room_id": room.ID})
}

// DeleteRoom удаляет комнату вместе с бронями
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	var req dto.DeleteRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.DeleteRoom(req.RoomID); err != nil {
		if errors.Is(err, database.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete room"})
		return
	}

	h.cache.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListRooms возвращает список комнат с сортировкой
func (h *RoomHandler) ListRooms(c *gin.Context) {
	sort, ok := database.ParseRoomSort(c.Query("sort_by"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown sort_by value"})
		return
	}

	desc, ok := database.ParseSortOrder(c.Query("order"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown order value"})
		return
	}

	if cached, hit := h.cache.Get(c.Request.Context(), sort, desc); hit {
		c.JSON(http.StatusOK, cached)
		return
	}

	rooms, err := h.store.ListRooms(sort, desc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rooms"})
		return
	}

	resp := make([]dto.RoomResponse, len(rooms))
	for i, room := range rooms {
		resp[i] = dto.RoomResponse{
			RoomID:      room.ID,
			Description: room.Description,
			Price:       room.Price,
			CreatedAt:   room.CreatedAt,
		}
	}

	h.cache.Set(c.Request.Context(), sort, desc, resp)

	c.JSON(http.StatusOK, resp)
}
