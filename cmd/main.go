// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_5_study_planner/internal/config"
	"go_5_study_planner/internal/handlers"
	"go_5_study_planner/internal/middleware"
	"go_5_study_planner/internal/model"
	"go_5_study_planner/internal/planner"
	"go_5_study_planner/internal/repository"
	"go_5_study_planner/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み
	if err := config.LoadConfig("../configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		// 開発環境では色付きの読みやすいログにする
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	log.Println("Log Config Loaded...")

	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// スキーママイグレーション
	if err := db.AutoMigrate(
		&model.Learner{},
		&model.Subject{},
		&model.ProgressEntry{},
		&model.StudyPlan{},
		&model.Deck{},
		&model.Flashcard{},
	); err != nil {
		slog.Error("Error running schema migration", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	learnerRepo := repository.NewGormLearnerRepository()
	subjectRepo := repository.NewGormSubjectRepository()
	planRepo := repository.NewGormPlanRepository()
	progressRepo := repository.NewGormProgressRepository()
	flashcardRepo := repository.NewGormFlashcardRepository()

	mailer := service.NewMailer(&config.Cfg)

	// AI プランナーはAPIキーがある場合のみ有効。無ければ常に決定論フォールバック。
	var aiPlanner planner.Planner
	if config.Cfg.AI.APIKey != "" {
		slog.Info("AI planner enabled", slog.String("model", config.Cfg.AI.Model))
		aiPlanner = planner.NewOpenAIPlanner(config.Cfg.AI.APIKey, config.Cfg.AI.Model)
	} else {
		slog.Info("AI planner disabled, using deterministic planner only")
	}
	fallbackPlanner := planner.NewFallbackPlanner(planner.Config{})

	authService := service.NewAuthService(db, learnerRepo, mailer, &config.Cfg)
	subjectService := service.NewSubjectService(db, subjectRepo, progressRepo)
	planService := service.NewPlanService(db, learnerRepo, subjectRepo, planRepo, aiPlanner, fallbackPlanner)
	reviewService := service.NewReviewService(db, flashcardRepo, &config.Cfg)

	authHandler := handlers.NewAuthHandler(authService, logger)
	subjectHandler := handlers.NewSubjectHandler(subjectService, logger)
	planHandler := handlers.NewPlanHandler(planService, logger)
	reviewHandler := handlers.NewReviewHandler(reviewService, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	// CORS 設定と適用 (設定ファイルから読み込んだ値を使用)
	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// --- Protected routes (require JWT) ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Route("/auth", func(r chi.Router) {
				r.Get("/me", authHandler.GetProfile)
				r.Patch("/me", authHandler.UpdateProfile)
				r.Post("/onboarding", authHandler.CompleteOnboarding)
			})

			r.Route("/subjects", func(r chi.Router) {
				r.Post("/", subjectHandler.CreateSubject)
				r.Get("/", subjectHandler.ListSubjects)
				r.Get("/{subject_id}", subjectHandler.GetSubject)
				r.Patch("/{subject_id}", subjectHandler.UpdateSubject)
				r.Delete("/{subject_id}", subjectHandler.DeleteSubject)
			})

			r.Route("/plan", func(r chi.Router) {
				r.Post("/generate", planHandler.GeneratePlan)
				r.Get("/", planHandler.GetPlan)
				r.Get("/stats", planHandler.GetStats)
				r.Get("/export/ics", planHandler.ExportICS)
				r.Post("/sessions/{session_id}/complete", planHandler.CompleteSession)
			})

			r.Route("/progress", func(r chi.Router) {
				r.Post("/confidence", subjectHandler.UpdateConfidence)
				r.Get("/history", subjectHandler.GetProgressHistory)
			})

			r.Route("/decks", func(r chi.Router) {
				r.Post("/", reviewHandler.CreateDeck)
				r.Get("/", reviewHandler.ListDecks)
				r.Delete("/{deck_id}", reviewHandler.DeleteDeck)
				r.Post("/{deck_id}/cards", reviewHandler.CreateCard)
				r.Get("/{deck_id}/cards", reviewHandler.ListCards)
			})

			r.Route("/cards", func(r chi.Router) {
				r.Delete("/{card_id}", reviewHandler.DeleteCard)
				r.Post("/{card_id}/review", reviewHandler.ReviewCard)
			})

			r.Get("/review/due", reviewHandler.GetDueCards)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		// DB接続チェック
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
