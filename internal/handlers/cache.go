package handlers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Immortal-romantic/hotel-booking/internal/database"
	"github.com/Immortal-romantic/hotel-booking/internal/handlers/dto"
	"github.com/go-redis/redis/v8"
)

const roomListTTL = 30 * time.Second

// RoomListCache кэширует ответы rooms/list по паре (sort, order)
type RoomListCache struct {
	client *redis.Client
}

func NewRoomListCache(client *redis.Client) *RoomListCache {
	return &RoomListCache{client: client}
}

func roomListKey(sort database.RoomSort, desc bool) string {
	key := "rooms:list:" + string(sort)
	if desc {
		return key + ":desc"
	}
	return key + ":asc"
}

func (c *RoomListCache) Get(ctx context.Context, sort database.RoomSort, desc bool) ([]dto.RoomResponse, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, roomListKey(sort, desc)).Result()
	if err != nil {
		return nil, false
	}

	var rooms []dto.RoomResponse
	if err := json.Unmarshal([]byte(raw), &rooms); err != nil {
		return nil, false
	}
	return rooms, true
}

func (c *RoomListCache) Set(ctx context.Context, sort database.RoomSort, desc bool, rooms []dto.RoomResponse) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(rooms)
	if err != nil {
		return
	}
	// Ошибки кэша не мешают отдать ответ
	c.client.Set(ctx, roomListKey(sort, desc), raw, roomListTTL)
}

// Invalidate сбрасывает все варианты выдачи после создания/удаления комнаты
func (c *RoomListCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}

	keys := make([]string, 0, 6)
	for _, sort := range []database.RoomSort{database.SortByID, database.SortByPrice, database.SortByCreatedAt} {
		keys = append(keys, roomListKey(sort, false), roomListKey(sort, true))
	}
	c.client.Del(ctx, keys...)
}
