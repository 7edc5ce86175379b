// Package server wires the scene engine into a fiber application.
package server

import (
	"context"
	"database/sql"
	"time"

	"sketchpad/internal/builder"
	"sketchpad/internal/common/config"
	"sketchpad/internal/common/middleware"
	"sketchpad/internal/editor"
	"sketchpad/internal/export"
	"sketchpad/internal/repository"
	"sketchpad/internal/server/handlers"
	"sketchpad/internal/server/service"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// New собирает приложение со всеми маршрутами поверх открытой БД.
func New(cfg *config.Config, db *sql.DB) *fiber.App {
	repo := repository.New(db)

	b := builder.New(builder.DefaultOptions())
	renderOpts := export.DefaultOptions()
	renderOpts.PointRadius = cfg.PointRadius
	renderer := export.NewRenderer(renderOpts)

	sessions := service.NewSessionManager(b, editor.Options{
		MinSize:      cfg.MinSize,
		HitTolerance: cfg.HitTolerance,
		PointRadius:  cfg.PointRadius,
	})

	sceneHandler := handlers.NewSceneHandler(repo, renderer)
	engineHandler := handlers.NewEngineHandler(b, renderer, cfg.MinSize, cfg.HitTolerance, cfg.PointRadius)
	sessionHandler := handlers.NewSessionHandler(repo, sessions)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Scene Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS(cfg.CORSOrigins))

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", handlers.LivenessProbe)
	app.Get("/health/ready", handlers.ReadinessProbe(func(ctx context.Context) error {
		return db.PingContext(ctx)
	}))

	// ============================================================
	// Scene Routes
	// ============================================================

	app.Get("/scenes", sceneHandler.List)
	app.Post("/scenes", sceneHandler.Create)
	app.Get("/scenes/:id", sceneHandler.Get)
	app.Put("/scenes/:id", sceneHandler.Update)
	app.Delete("/scenes/:id", sceneHandler.Delete)
	app.Get("/scenes/:id/svg", sceneHandler.SVG)

	// ============================================================
	// Engine Routes
	// ============================================================

	app.Post("/render", engineHandler.RenderSVG)
	app.Post("/build", engineHandler.Build)
	app.Post("/hit", engineHandler.Hit)

	// ============================================================
	// Editing Session Routes
	// ============================================================

	app.Post("/sessions", sessionHandler.Open)
	app.Delete("/sessions/:token", sessionHandler.Close)
	app.Post("/sessions/:token/tool", sessionHandler.SetTool)
	app.Post("/sessions/:token/press", sessionHandler.Press)
	app.Post("/sessions/:token/move", sessionHandler.Move)
	app.Post("/sessions/:token/release", sessionHandler.Release)
	app.Post("/sessions/:token/ingest", sessionHandler.Ingest)
	app.Delete("/sessions/:token/selection", sessionHandler.DeleteSelection)
	app.Get("/sessions/:token/document", sessionHandler.Document)
	app.Post("/sessions/:token/save", sessionHandler.Save)

	return app
}
