package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/Immortal-romantic/hotel-booking/internal/database"
	"github.com/Immortal-romantic/hotel-booking/internal/handlers"
	"github.com/Immortal-romantic/hotel-booking/internal/models"
	"github.com/gin-gonic/gin"
)

// fakeStore — in-memory реализация handlers.Store для тестов
type fakeStore struct {
	rooms         map[uint]*models.Room
	bookings      map[uint]*models.Booking
	nextRoomID    uint
	nextBookingID uint
	pingErr       error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rooms:    make(map[uint]*models.Room),
		bookings: make(map[uint]*models.Booking),
	}
}

func (f *fakeStore) CreateRoom(room *models.Room) error {
	f.nextRoomID++
	room.ID = f.nextRoomID
	if room.CreatedAt.IsZero() {
		room.CreatedAt = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(room.ID) * time.Hour)
	}
	stored := *room
	f.rooms[room.ID] = &stored
	return nil
}

func (f *fakeStore) GetRoom(id uint) (*models.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, database.ErrRoomNotFound
	}
	copied := *room
	return &copied, nil
}

func (f *fakeStore) ListRooms(sortKey database.RoomSort, desc bool) ([]models.Room, error) {
	rooms := make([]models.Room, 0, len(f.rooms))
	for _, room := range f.rooms {
		rooms = append(rooms, *room)
	}

	sort.SliceStable(rooms, func(i, j int) bool {
		var less bool
		switch sortKey {
		case database.SortByPrice:
			less = rooms[i].Price < rooms[j].Price
		case database.SortByCreatedAt:
			less = rooms[i].CreatedAt.Before(rooms[j].CreatedAt)
		default:
			less = rooms[i].ID < rooms[j].ID
		}
		if desc {
			return !less
		}
		return less
	})

	return rooms, nil
}

func (f *fakeStore) DeleteRoom(id uint) error {
	if _, ok := f.rooms[id]; !ok {
		return database.ErrRoomNotFound
	}
	delete(f.rooms, id)
	for bookingID, booking := range f.bookings {
		if booking.RoomID == id {
			delete(f.bookings, bookingID)
		}
	}
	return nil
}

func (f *fakeStore) CreateBooking(booking *models.Booking) error {
	f.nextBookingID++
	booking.ID = f.nextBookingID
	stored := *booking
	f.bookings[booking.ID] = &stored
	return nil
}

func (f *fakeStore) GetBooking(id uint) (*models.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, database.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeStore) UpdateBooking(booking *models.Booking) error {
	if _, ok := f.bookings[booking.ID]; !ok {
		return database.ErrBookingNotFound
	}
	stored := *booking
	f.bookings[booking.ID] = &stored
	return nil
}

func (f *fakeStore) DeleteBooking(id uint) error {
	if _, ok := f.bookings[id]; !ok {
		return database.ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeStore) ListBookings(roomID uint) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	for _, booking := range f.bookings {
		if booking.RoomID == roomID {
			bookings = append(bookings, *booking)
		}
	}
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].DateStart.Before(bookings[j].DateStart)
	})
	return bookings, nil
}

func (f *fakeStore) HasOverlap(roomID uint, start, end time.Time, excludeID uint) (bool, error) {
	for _, booking := range f.bookings {
		if booking.RoomID != roomID || booking.ID == excludeID {
			continue
		}
		if booking.Overlaps(start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) Ping(ctx context.Context) error {
	return f.pingErr
}

func newTestRouter(store handlers.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	roomH := handlers.NewRoomHandler(store, handlers.NewRoomListCache(nil))
	bookingH := handlers.NewBookingHandler(store)
	healthH := handlers.NewHealthHandler(store)

	r := gin.New()
	r.GET("/health", healthH.Health)
	r.POST("/rooms/create", roomH.CreateRoom)
	r.POST("/rooms/delete", roomH.DeleteRoom)
	r.GET("/rooms/list", roomH.ListRooms)
	r.POST("/bookings/create", bookingH.CreateBooking)
	r.POST("/bookings/update", bookingH.UpdateBooking)
	r.POST("/bookings/delete", bookingH.DeleteBooking)
	r.GET("/bookings/list", bookingH.ListBookings)
	return r
}

func createRoom(t *testing.T, r *gin.Engine, price float64) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/rooms/create", map[string]any{
		"description": "Suite",
		"price":       price,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create room: unexpected status %d: %s", w.Code, w.Body.String())
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
