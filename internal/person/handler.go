package person

import (
	"bytes"
	"errors"
	"html/template"

	"github.com/gofiber/fiber/v2"
)

// Handler delegates person operations to the person service.

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

// RegisterPublicRoutes wires the routes in order: the literal paths must be
// registered before the numeric detail parameter.
func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/", h.listPage)
	app.Get("/load", h.loadPeople)
	app.Get("/random", h.randomPerson)
	app.Get("/:id<[0-9]+>", h.personDetail)
}

func (h *Handler) listPage(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", DefaultPageLimit)
	offset := c.QueryInt("offset", 0)

	page, err := h.service.Page(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return renderHTML(c, indexTemplate, page)
}

func (h *Handler) loadPeople(c *fiber.Ctx) error {
	count := c.QueryInt("count", 0)
	if count <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": ErrInvalidCount.Error()})
	}

	people, err := h.service.LoadAndList(count)
	if err != nil {
		if errors.Is(err, ErrUpstreamData) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return renderHTML(c, loadedTemplate, struct {
		Count  int
		People []Person
	}{Count: count, People: people})
}

func (h *Handler) randomPerson(c *fiber.Ctx) error {
	p, err := h.service.Random()
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "no people in database"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(p)
}

func (h *Handler) personDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	p, err := h.service.Detail(id)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "person not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return renderHTML(c, detailTemplate, p)
}

func renderHTML(c *fiber.Ctx, tpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}
