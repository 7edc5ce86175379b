package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"

	"sketchpad/internal/builder"
	"sketchpad/internal/editor"
	"sketchpad/internal/ingest"
	"sketchpad/internal/repository"
	"sketchpad/internal/scene"
	"sketchpad/internal/server/service"
	"sketchpad/internal/shapes"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Session Handler
// ============================================================

type SessionHandler struct {
	repo     *repository.Repository
	sessions *service.SessionManager
}

func NewSessionHandler(repo *repository.Repository, sessions *service.SessionManager) *SessionHandler {
	return &SessionHandler{
		repo:     repo,
		sessions: sessions,
	}
}

type openRequest struct {
	SceneID string `json:"sceneId"`
}

type openResponse struct {
	Token   string `json:"token"`
	SceneID string `json:"sceneId,omitempty"`
}

type toolRequest struct {
	Tool string `json:"tool"`
}

// eventResponse описывает состояние сессии после события указателя.
type eventResponse struct {
	Changed  bool          `json:"changed"`
	Created  *scene.Record `json:"created,omitempty"`
	Selected *scene.Record `json:"selected,omitempty"`
}

// Open открывает сессию редактирования, пустую или по сохранённой сцене.
func (h *SessionHandler) Open(c fiber.Ctx) error {
	var req openRequest
	if len(c.Body()) > 0 {
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid json")
		}
	}

	collection := scene.NewCollection()
	if req.SceneID != "" {
		doc, err := h.repo.Get(context.Background(), req.SceneID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "scene not found")
			}
			log.Printf("[SESSIONS] Load error: %v", err)
			return writeError(c, fiber.StatusInternalServerError, "storage error")
		}
		if err := collection.Load(doc); err != nil {
			if errors.Is(err, scene.ErrUnsupportedVersion) {
				return writeError(c, fiber.StatusUnprocessableEntity, err.Error())
			}
			return writeError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	token := h.sessions.Issue(req.SceneID, collection)
	log.Printf("[SESSIONS] Opened session (scene: %q, shapes: %d)", req.SceneID, collection.Len())
	return c.Status(fiber.StatusCreated).JSON(openResponse{Token: token, SceneID: req.SceneID})
}

// Close закрывает сессию.
func (h *SessionHandler) Close(c fiber.Ctx) error {
	if !h.sessions.Close(c.Params("token")) {
		return writeError(c, fiber.StatusNotFound, "session not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetTool переключает инструмент.
func (h *SessionHandler) SetTool(c fiber.Ctx) error {
	s, ok := h.resolve(c)
	if !ok {
		return writeError(c, fiber.StatusNotFound, "session not found")
	}

	var req toolRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid json")
	}
	tool := builder.Tool(req.Tool)
	if tool != editor.ToolSelect && !knownKind(req.Tool) {
		return writeError(c, fiber.StatusBadRequest, "unknown tool")
	}

	_ = s.Do(func(e *editor.Editor) error {
		e.SetTool(tool)
		return nil
	})
	return c.JSON(toolRequest{Tool: req.Tool})
}

// Press, Move и Release передают события указателя в редактор по порядку.
func (h *SessionHandler) Press(c fiber.Ctx) error {
	return h.pointer(c, func(e *editor.Editor, p pointPayload, resp *eventResponse) {
		e.Press(p.vector())
	})
}

func (h *SessionHandler) Move(c fiber.Ctx) error {
	return h.pointer(c, func(e *editor.Editor, p pointPayload, resp *eventResponse) {
		resp.Changed = e.Move(p.vector())
	})
}

func (h *SessionHandler) Release(c fiber.Ctx) error {
	return h.pointer(c, func(e *editor.Editor, p pointPayload, resp *eventResponse) {
		if s, ok := e.Release(p.vector()); ok {
			resp.Changed = true
			resp.Created = record(e, s)
		}
	})
}

func (h *SessionHandler) pointer(c fiber.Ctx, fn func(e *editor.Editor, p pointPayload, resp *eventResponse)) error {
	s, ok := h.resolve(c)
	if !ok {
		return writeError(c, fiber.StatusNotFound, "session not found")
	}

	var p pointPayload
	if err := json.Unmarshal(c.Body(), &p); err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid json")
	}

	var resp eventResponse
	_ = s.Do(func(e *editor.Editor) error {
		fn(e, p, &resp)
		if sel, ok := e.Selected(); ok {
			resp.Selected = record(e, sel)
		}
		return nil
	})
	return c.JSON(resp)
}

// DeleteSelection удаляет выделенную фигуру. Вычисленные фигуры не удаляются.
func (h *SessionHandler) DeleteSelection(c fiber.Ctx) error {
	s, ok := h.resolve(c)
	if !ok {
		return writeError(c, fiber.StatusNotFound, "session not found")
	}

	err := s.Do(func(e *editor.Editor) error {
		return e.DeleteSelected()
	})
	switch {
	case err == nil:
		return c.SendStatus(fiber.StatusNoContent)
	case errors.Is(err, scene.ErrComputedShape):
		return writeError(c, fiber.StatusConflict, "computed shapes cannot be deleted")
	case errors.Is(err, editor.ErrNothingSelected):
		return writeError(c, fiber.StatusBadRequest, "nothing selected")
	default:
		return writeError(c, fiber.StatusNotFound, err.Error())
	}
}

// Ingest добавляет фигуры векторизатора (SVG в теле) как вычисленные.
func (h *SessionHandler) Ingest(c fiber.Ctx) error {
	s, ok := h.resolve(c)
	if !ok {
		return writeError(c, fiber.StatusNotFound, "session not found")
	}
	if len(c.Body()) == 0 {
		return writeError(c, fiber.StatusBadRequest, "body required")
	}

	list, err := ingest.ParseSVG(bytes.NewReader(c.Body()))
	if err != nil {
		log.Printf("[SESSIONS] Ingest error: %v", err)
		return writeError(c, fiber.StatusBadRequest, err.Error())
	}

	err = s.Do(func(e *editor.Editor) error {
		for _, shape := range list {
			if err := e.Scene().AddComputed(shape); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, err.Error())
	}

	log.Printf("[SESSIONS] Ingested %d computed shapes", len(list))
	return c.JSON(fiber.Map{"added": len(list)})
}

// Document отдаёт текущий документ сессии.
func (h *SessionHandler) Document(c fiber.Ctx) error {
	s, ok := h.resolve(c)
	if !ok {
		return writeError(c, fiber.StatusNotFound, "session not found")
	}

	var doc scene.Document
	_ = s.Do(func(e *editor.Editor) error {
		doc = e.Scene().Document()
		return nil
	})
	return c.JSON(doc)
}

// Save сохраняет документ сессии: создаёт сцену при первом сохранении.
func (h *SessionHandler) Save(c fiber.Ctx) error {
	s, ok := h.resolve(c)
	if !ok {
		return writeError(c, fiber.StatusNotFound, "session not found")
	}

	ctx := context.Background()
	id, created, err := s.Persist(func(sceneID string, doc *scene.Document) (string, error) {
		if sceneID == "" {
			return h.repo.Create(ctx, c.Query("name"), doc)
		}
		return sceneID, h.repo.Save(ctx, sceneID, doc)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return writeError(c, fiber.StatusNotFound, "scene not found")
		}
		log.Printf("[SESSIONS] Save error: %v", err)
		return writeError(c, fiber.StatusInternalServerError, "failed to store scene")
	}
	if created {
		return c.Status(fiber.StatusCreated).JSON(idResponse{ID: id})
	}
	return c.JSON(idResponse{ID: id})
}

func (h *SessionHandler) resolve(c fiber.Ctx) (*service.Session, bool) {
	return h.sessions.Resolve(c.Params("token"))
}

func record(e *editor.Editor, s shapes.Shape) *scene.Record {
	r := scene.ToDocument([]shapes.Shape{s}, e.Scene().ComputedIDs()).Shapes[0]
	return &r
}
