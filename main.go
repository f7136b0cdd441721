package main

import (
	"fmt"
	"log"

	"restaurant-backend/configs"
	"restaurant-backend/middlewares"
	"restaurant-backend/pkg/session"
	"restaurant-backend/repository"
	"restaurant-backend/routes"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// Pair seeded items with uploaded image files once, before serving.
	if err := services.EnsureMenuItemImages(repository.NewMenuRepository(db), cfg.MediaDir); err != nil {
		log.Fatalf("match menu images failed: %v", err)
	}

	// Session store
	var store session.Store
	if cfg.RedisAddr != "" {
		store = session.NewRedisStore(cfg.RedisAddr, cfg.SessionTTL)
		log.Println("sessions on redis at", cfg.RedisAddr)
	} else {
		store = session.NewMemoryStore(cfg.SessionTTL)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.SessionMiddleware(cfg.SessionTTL))

	// Serve uploaded menu images
	r.Static("/media", cfg.MediaDir)

	routes.RegisterRoutes(r, db, store, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
