// Package main starts the bookpal companion server: authentication,
// book answers, Urdu translation, activity tracking, notes and
// reading progress over embedded SQLite.
package main

import (
	"cmp"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/afzaalahmad/bookpal/internal/book"
	"github.com/afzaalahmad/bookpal/internal/config"
	"github.com/afzaalahmad/bookpal/internal/db"
	"github.com/afzaalahmad/bookpal/internal/logger"
	"github.com/afzaalahmad/bookpal/internal/repository"
	"github.com/afzaalahmad/bookpal/internal/server/handler/http"
	"github.com/afzaalahmad/bookpal/internal/service"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

const tokenTTL = 24 * time.Hour

func main() {
	// Parse command-line and environment configuration.
	options := config.ParseServer()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// An explicit secret keeps tokens valid across restarts; without
	// one a random secret is generated for this run only.
	secret := []byte(options.JWTSecret)
	if len(secret) == 0 {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			zapLogger.Fatal("cannot generate jwt secret", zap.Error(err))
		}
		secret = []byte(hex.EncodeToString(buf))
		zapLogger.Warn("no jwt secret configured, issued tokens will not survive a restart")
	}

	// Initialize the SQLite database.
	database, err := db.InitSQLite(options.DatabasePath)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Prune stale activity rows in the background.
	db.StartActivityCleaner(context.Background(), database,
		time.Hour,       // interval
		30*24*time.Hour, // retention: 30 days
		zapLogger,
	)

	// Load the book chapters the answer service retrieves from.
	library, err := book.Load(options.BookDir)
	if err != nil {
		zapLogger.Fatal("cannot load book", zap.Error(err), zap.String("dir", options.BookDir))
	}

	// Initialize repositories.
	userRepo := repository.NewUserRepository(database)
	activityRepo := repository.NewActivityRepository(database)
	noteRepo := repository.NewNoteRepository(database)
	progressRepo := repository.NewProgressRepository(database)

	// Initialize business-logic services.
	authService := service.NewAuthService(userRepo, secret, tokenTTL)
	ragService := service.NewRagService(library)
	urduService := service.NewUrduService()

	// Create HTTP handlers.
	authHandler := &http.AuthHandler{AuthService: authService}
	ragHandler := &http.RagHandler{AnswerService: ragService}
	translateHandler := &http.TranslateHandler{TranslateService: urduService}
	activityHandler := &http.ActivityHandler{Store: activityRepo}
	noteHandler := &http.NoteHandler{Store: noteRepo}
	progressHandler := &http.ProgressHandler{Store: progressRepo}

	// Build the router with middleware and routes.
	router := http.NewRouter(
		authHandler,
		ragHandler,
		translateHandler,
		activityHandler,
		noteHandler,
		progressHandler,
		secret,
		zapLogger,
	)

	server := &nethttp.Server{
		Addr:    options.Addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server",
		zap.String("addr", options.Addr),
		zap.Int("chapters", len(library.Chapters())),
	)
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
