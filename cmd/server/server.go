package server

import (
	"context"
	"log"

	"github.com/Immortal-romantic/hotel-booking/internal/config"
	"github.com/Immortal-romantic/hotel-booking/internal/database"
	"github.com/Immortal-romantic/hotel-booking/internal/handlers"
	"github.com/Immortal-romantic/hotel-booking/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type Server struct {
	Router   *gin.Engine
	DB       *database.Database
	Redis    *redis.Client
	Config   *config.Config
	RoomH    *handlers.RoomHandler
	BookingH *handlers.BookingHandler
}

func NewServer() *Server {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	dbConn, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	// Redis опционален: без него rooms/list просто не кэшируется
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(redisOpts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Redis connect failed: %v", err)
		}
	}

	roomH := handlers.NewRoomHandler(dbConn, handlers.NewRoomListCache(rdb))
	bookingH := handlers.NewBookingHandler(dbConn)
	healthH := handlers.NewHealthHandler(dbConn)

	router := gin.Default()
	router.Use(middleware.RequestID())
	APIEndpoints(router, roomH, bookingH, healthH)

	return &Server{
		Router:   router,
		DB:       dbConn,
		Redis:    rdb,
		Config:   cfg,
		RoomH:    roomH,
		BookingH: bookingH,
	}
}

func (s *Server) Run() {
	log.Printf("Server starting on port %s", s.Config.Port)
	if err := s.Router.Run(":" + s.Config.Port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
