package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"recordstudio/internal/database"
	"recordstudio/internal/middleware"
	"recordstudio/internal/modules/audio"
	"recordstudio/internal/modules/auth"
	"recordstudio/internal/modules/catalog"
	"recordstudio/internal/modules/events"
	"recordstudio/internal/modules/orders"
	"recordstudio/internal/modules/users"
	"recordstudio/internal/pkg/cache"
	jwtsvc "recordstudio/internal/pkg/jwt"
	"recordstudio/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	var store cache.Cache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisCache, err := cache.NewRedis(addr, os.Getenv("REDIS_PASSWORD"))
		if err != nil {
			log.Fatal(err)
		}
		store = redisCache
	} else {
		log.Println("REDIS_ADDR not set, using in-process cache")
		store = cache.NewMemory()
	}

	hub := events.NewHub()
	defer hub.Close()

	userRepo := repository.NewUserRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	detailRepo := repository.NewDetailRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	usersService := users.NewService(userRepo)
	usersHandler := users.NewHandler(usersService)

	catalogService := catalog.NewService(serviceRepo, store, hub)
	catalogHandler := catalog.NewHandler(catalogService)

	detailService := orders.NewDetailService(detailRepo, serviceRepo)
	orderService := orders.NewService(orderRepo, detailService, userRepo)
	orderHandler := orders.NewHandler(orderService)
	detailHandler := orders.NewDetailHandler(detailService, orderService)

	audioDir := os.Getenv("AUDIO_STORE_DIR")
	audioService := audio.NewService(audio.NewDiskStorage(audioDir))
	audioHandler := audio.NewHandler(audioService, orderService)

	eventsHandler := events.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS(), middleware.ErrorLogger())

	api := r.Group("/api")

	// public
	authHandler.RegisterRoutes(api)
	eventsHandler.RegisterRoutes(api)

	// any authenticated customer
	user := api.Group("")
	user.Use(middleware.Auth(j), middleware.RequireRole("user", "admin"))

	// studio staff
	admin := api.Group("")
	admin.Use(middleware.Auth(j), middleware.AdminOnly())

	catalogHandler.RegisterRoutes(api, admin)
	orderHandler.RegisterRoutes(user, admin)
	detailHandler.RegisterRoutes(admin)
	audioHandler.RegisterRoutes(user, admin)
	usersHandler.RegisterRoutes(admin)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
