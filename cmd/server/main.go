package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/spectrumsync/backend/internal/auth"
	"github.com/spectrumsync/backend/internal/config"
	"github.com/spectrumsync/backend/internal/events"
	"github.com/spectrumsync/backend/internal/middleware"
	"github.com/spectrumsync/backend/internal/password"
	"github.com/spectrumsync/backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	ctx := context.Background()

	// ── MongoDB ──────────────────────────────────────────────
	client, err := store.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer client.Disconnect(ctx)
	db := client.Database(cfg.MongoDB)

	users := store.NewUsers(db, cfg.UsersCollection)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatalf("mongo indexes: %v", err)
	}
	eventStore := store.NewEvents(db, cfg.EventsCollection)

	// ── Services and handlers ────────────────────────────────
	hasher := password.NewBcrypt(cfg.BcryptCost)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authHandler := auth.NewHandler(auth.NewService(users, hasher, tokens))
	eventHandler := events.NewHandler(eventStore)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(chimw.Timeout(10 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Welcome to Spectrum Sync Backend!"))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Auth routes (public)
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.With(middleware.RequireAuth(tokens)).Get("/me", authHandler.Me)
	})

	// Event routes (protected)
	r.Route("/api/events", func(r chi.Router) {
		r.Use(middleware.RequireAuth(tokens))
		r.Post("/", eventHandler.Create)
		r.Get("/", eventHandler.List)
		r.Get("/{id}", eventHandler.Get)
		r.Delete("/{id}", eventHandler.Delete)
	})

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("Backend listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
