package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/hanzicards/hanzicards-backend/internal/config"
	"github.com/hanzicards/hanzicards-backend/internal/database"
	"github.com/hanzicards/hanzicards-backend/internal/handlers"
	"github.com/hanzicards/hanzicards-backend/internal/history"
	"github.com/hanzicards/hanzicards-backend/internal/live"
	"github.com/hanzicards/hanzicards-backend/internal/middleware"
	"github.com/hanzicards/hanzicards-backend/internal/routes"
	"github.com/hanzicards/hanzicards-backend/internal/session"
	"github.com/hanzicards/hanzicards-backend/internal/store"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// PostgreSQL: users and flashcards
	log.Println("Connecting to PostgreSQL...")
	db, err := database.ConnectPostgres(cfg.PostgresURI)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}
	defer db.Close()

	// Redis: sessions and live card events
	log.Println("Connecting to Redis...")
	redisClient, err := database.ConnectRedis(cfg.RedisURI)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// MongoDB: review history (optional; the CRUD core runs without it)
	var recorder history.Recorder = history.Nop{}
	if cfg.MongoURI != "" {
		log.Println("Connecting to MongoDB...")
		mongoClient, mongoDB, err := database.ConnectMongo(cfg.MongoURI)
		if err != nil {
			log.Printf("Warning: failed to connect to MongoDB: %v", err)
			log.Println("Review history will not be recorded")
		} else {
			defer database.DisconnectMongo(mongoClient)
			mongoRecorder := history.NewMongoRecorder(mongoDB)
			if err := mongoRecorder.EnsureIndexes(context.Background()); err != nil {
				log.Printf("Warning: failed to ensure review history indexes: %v", err)
			}
			recorder = mongoRecorder
		}
	} else {
		log.Println("MONGODB_URI not set; review history disabled")
	}

	h := handlers.New(
		store.NewPostgresUserStore(db),
		store.NewPostgresFlashcardStore(db),
		session.NewRedisStore(redisClient, cfg.SessionTTL),
		recorder,
		live.NewRedisBroadcaster(redisClient),
	)

	r := chi.NewRouter()
	r.Use(middleware.SecurityHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r, h)

	log.Printf("Flashcard backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
