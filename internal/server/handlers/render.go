package handlers

import (
	"encoding/json"
	"log"

	"sketchpad/internal/builder"
	"sketchpad/internal/export"
	"sketchpad/internal/hittest"
	"sketchpad/internal/scene"
	"sketchpad/internal/shapes"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Engine Handler
// ============================================================

// EngineHandler открывает операции движка без сохранения состояния.
type EngineHandler struct {
	builder     *builder.Builder
	renderer    *export.Renderer
	minSize     float64
	tolerance   float64
	pointRadius float64
}

func NewEngineHandler(b *builder.Builder, renderer *export.Renderer, minSize, tolerance, pointRadius float64) *EngineHandler {
	return &EngineHandler{
		builder:     b,
		renderer:    renderer,
		minSize:     minSize,
		tolerance:   tolerance,
		pointRadius: pointRadius,
	}
}

// RenderSVG конвертирует документ сцены в SVG
func (h *EngineHandler) RenderSVG(c fiber.Ctx) error {
	log.Printf("[RENDER] Received request")
	log.Printf("[RENDER] Content-Length: %d", len(c.Body()))

	doc, ok, err := decodeDocument(c)
	if !ok {
		return err
	}

	svg, err := h.renderer.Render(doc)
	if err != nil {
		log.Printf("[RENDER] Render error: %v", err)
		return writeError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Set("Content-Type", "image/svg+xml")
	return c.SendString(svg)
}

type buildRequest struct {
	Tool    string       `json:"tool"`
	Start   pointPayload `json:"start"`
	End     pointPayload `json:"end"`
	MinSize *float64     `json:"minSize"`
}

// Build строит фигуру по жесту и возвращает её запись. Слишком маленький
// жест даёт 204.
func (h *EngineHandler) Build(c fiber.Ctx) error {
	var req buildRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid json")
	}
	if !knownKind(req.Tool) {
		return writeError(c, fiber.StatusBadRequest, "unknown tool")
	}

	minSize := h.minSize
	if req.MinSize != nil {
		minSize = *req.MinSize
	}

	s, ok := h.builder.Build(builder.Tool(req.Tool), req.Start.vector(), req.End.vector(), minSize)
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}

	doc := scene.ToDocument([]shapes.Shape{s}, nil)
	return c.JSON(doc.Shapes[0])
}

type hitRequest struct {
	Document  *scene.Document `json:"document"`
	Point     pointPayload    `json:"point"`
	Tolerance *float64        `json:"tolerance"`
}

// Hit возвращает id верхней фигуры под точкой или 204.
func (h *EngineHandler) Hit(c fiber.Ctx) error {
	var req hitRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid json")
	}
	if req.Document == nil {
		return writeError(c, fiber.StatusBadRequest, "document required")
	}

	list, _, err := scene.FromDocument(req.Document)
	if err != nil {
		return writeError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	tolerance := h.tolerance
	if req.Tolerance != nil {
		tolerance = *req.Tolerance
	}

	s := hittest.Topmost(list, req.Point.vector(), tolerance, h.pointRadius)
	if s == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(idResponse{ID: shapes.ID(s)})
}

func knownKind(tool string) bool {
	for _, k := range shapes.Kinds {
		if string(k) == tool {
			return true
		}
	}
	return false
}
