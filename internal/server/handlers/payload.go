package handlers

import (
	"errors"

	"sketchpad/internal/geom"
	"sketchpad/internal/scene"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Shared payloads
// ============================================================

type pointPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p pointPayload) vector() geom.Vector { return geom.Vec(p.X, p.Y) }

type idResponse struct {
	ID string `json:"id"`
}

func writeError(c fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// validateDocument проверяет версию документа до сохранения или рендера.
func validateDocument(c fiber.Ctx, doc *scene.Document) (bool, error) {
	if _, _, err := scene.FromDocument(doc); err != nil {
		if errors.Is(err, scene.ErrUnsupportedVersion) {
			return false, writeError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return false, writeError(c, fiber.StatusBadRequest, err.Error())
	}
	return true, nil
}

// decodeDocument разбирает тело запроса как документ сцены.
func decodeDocument(c fiber.Ctx) (*scene.Document, bool, error) {
	if len(c.Body()) == 0 {
		return nil, false, writeError(c, fiber.StatusBadRequest, "body required")
	}
	doc, err := scene.Unmarshal(c.Body())
	if err != nil {
		return nil, false, writeError(c, fiber.StatusBadRequest, "invalid JSON payload")
	}
	ok, werr := validateDocument(c, doc)
	return doc, ok, werr
}
