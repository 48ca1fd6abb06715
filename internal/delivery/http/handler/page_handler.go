package handler

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/static"
)

// PageHandler serves the single front-end page and its assets from dir.
type PageHandler struct {
	dir string
}

func NewPageHandler(dir string) *PageHandler {
	return &PageHandler{dir: dir}
}

func (h *PageHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Index)
	r.Use("/assets", static.New(filepath.Join(h.dir, "assets")))
}

func (h *PageHandler) Index(c fiber.Ctx) error {
	index := filepath.Join(h.dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		return fiber.ErrNotFound
	}
	return c.SendFile(index)
}
