package handlers

import (
	"context"
	"errors"
	"log"

	"sketchpad/internal/export"
	"sketchpad/internal/repository"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Scene Handler
// ============================================================

type SceneHandler struct {
	repo     *repository.Repository
	renderer *export.Renderer
}

func NewSceneHandler(repo *repository.Repository, renderer *export.Renderer) *SceneHandler {
	return &SceneHandler{
		repo:     repo,
		renderer: renderer,
	}
}

// Create сохраняет новый документ сцены и возвращает его id.
func (h *SceneHandler) Create(c fiber.Ctx) error {
	log.Printf("[SCENES] Create request, size: %d", len(c.Body()))

	doc, ok, err := decodeDocument(c)
	if !ok {
		return err
	}

	id, err := h.repo.Create(context.Background(), c.Query("name"), doc)
	if err != nil {
		log.Printf("[SCENES] Create error: %v", err)
		return writeError(c, fiber.StatusInternalServerError, "failed to store scene")
	}

	log.Printf("[SCENES] Created %s with %d shapes", id, len(doc.Shapes))
	return c.Status(fiber.StatusCreated).JSON(idResponse{ID: id})
}

// Update перезаписывает документ существующей сцены.
func (h *SceneHandler) Update(c fiber.Ctx) error {
	id := c.Params("id")

	doc, ok, err := decodeDocument(c)
	if !ok {
		return err
	}

	if err := h.repo.Save(context.Background(), id, doc); err != nil {
		return h.storageError(c, id, err)
	}
	return c.JSON(idResponse{ID: id})
}

// Get отдаёт документ сцены.
func (h *SceneHandler) Get(c fiber.Ctx) error {
	id := c.Params("id")

	doc, err := h.repo.Get(context.Background(), id)
	if err != nil {
		return h.storageError(c, id, err)
	}
	return c.JSON(doc)
}

// List отдаёт краткое описание всех сцен.
func (h *SceneHandler) List(c fiber.Ctx) error {
	list, err := h.repo.List(context.Background())
	if err != nil {
		log.Printf("[SCENES] List error: %v", err)
		return writeError(c, fiber.StatusInternalServerError, "failed to list scenes")
	}
	return c.JSON(list)
}

// Delete удаляет сцену.
func (h *SceneHandler) Delete(c fiber.Ctx) error {
	id := c.Params("id")

	if err := h.repo.Delete(context.Background(), id); err != nil {
		return h.storageError(c, id, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SVG рендерит сохранённую сцену в SVG.
func (h *SceneHandler) SVG(c fiber.Ctx) error {
	id := c.Params("id")

	doc, err := h.repo.Get(context.Background(), id)
	if err != nil {
		return h.storageError(c, id, err)
	}
	if ok, werr := validateDocument(c, doc); !ok {
		return werr
	}

	svg, err := h.renderer.Render(doc)
	if err != nil {
		log.Printf("[SCENES] Render error: %v", err)
		return writeError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Set("Content-Type", "image/svg+xml")
	return c.SendString(svg)
}

func (h *SceneHandler) storageError(c fiber.Ctx, id string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return writeError(c, fiber.StatusNotFound, "scene not found")
	}
	log.Printf("[SCENES] Storage error for %s: %v", id, err)
	return writeError(c, fiber.StatusInternalServerError, "storage error")
}
