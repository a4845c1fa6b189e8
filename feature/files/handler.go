package files

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"ossdisk/core/disk"
	"ossdisk/core/filesystem"
	"ossdisk/core/logger"
	"ossdisk/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for disk operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the disk routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/disks/:disk")
	group.Get("/files", h.HandleList)
	group.Get("/files/*", h.HandleRead)
	group.Put("/files/*", h.HandlePut)
	group.Delete("/files/*", h.HandleDelete)
	group.Post("/copy", h.HandleCopy)
	group.Post("/rename", h.HandleRename)
	group.Get("/meta/*", h.HandleMetadata)
	group.Get("/visibility/*", h.HandleGetVisibility)
	group.Put("/visibility/*", h.HandleSetVisibility)
	group.Post("/dirs/*", h.HandleCreateDir)
	group.Delete("/dirs/*", h.HandleDeleteDir)
	group.Get("/url/*", h.HandleURL)
	group.Get("/temporary-url/*", h.HandleTemporaryURL)
}

// transfer is the body of copy and rename requests.
type transfer struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type visibilityRequest struct {
	Visibility string `json:"visibility"`
}

// statusOf maps an error to the HTTP status reported to the client.
func statusOf(err error) int {
	switch {
	case errors.Is(err, disk.ErrDiskNotConfigured):
		return fiber.StatusNotFound
	case errors.Is(err, filesystem.ErrInvalidArgument):
		return fiber.StatusBadRequest
	case errors.Is(err, filesystem.ErrUnsupported):
		return fiber.StatusNotImplemented
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) logger(c *fiber.Ctx) *zap.Logger {
	return logger.WithDisk(logger.WithRayID(h.service.logger, c), c.Params("disk"))
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := statusOf(err)
	l := h.logger(c)
	if status >= fiber.StatusInternalServerError && status != fiber.StatusNotImplemented {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// objectPath returns the decoded wildcard path of the request.
func objectPath(c *fiber.Ctx) (string, error) {
	raw := c.Params("*")
	p, err := url.PathUnescape(raw)
	if err != nil {
		return "", filesystem.Errorf(filesystem.ErrInvalidArgument, "bad path %q", raw)
	}
	if strings.Trim(p, "/") == "" {
		return "", filesystem.Errorf(filesystem.ErrInvalidArgument, "path is required")
	}
	return p, nil
}

func expiresOf(c *fiber.Ctx) time.Duration {
	return time.Duration(utils.ToInt(c.Query("expires"))) * time.Second
}

// HandleList lists a directory.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	recursive := utils.ToBool(c.Query("recursive"))

	list, err := h.service.List(c.Context(), c.Params("disk"), c.Query("dir"), recursive)
	if err != nil {
		return h.fail(c, "List failed", err)
	}
	return c.JSON(fiber.Map{"contents": list})
}

// HandleRead streams an object back with its guessed content type.
func (h *Handler) HandleRead(c *fiber.Ctx) error {
	p, err := objectPath(c)
	if err != nil {
		return h.fail(c, "Read failed", err)
	}

	res, err := h.service.Read(c.Context(), c.Params("disk"), p)
	if err != nil {
		return h.fail(c, "Read failed", err)
	}

	c.Set(fiber.HeaderContentType, filesystem.GuessMimeType(p, res.Contents))
	return c.Send(res.Contents)
}

// HandlePut writes the request body to an object.
func (h *Handler) HandlePut(c *fiber.Ctx) error {
	p, err := objectPath(c)
	if err != nil {
		return h.fail(c, "Put failed", err)
	}

	var opts WriteOptions
	if ct := c.Get(fiber.HeaderContentType); ct != "" && ct != fiber.MIMEOctetStream {
		opts.Mimetype = ct
	}
	if v := c.Get("X-Visibility"); v != "" {
		if opts.Visibility, err = filesystem.ParseVisibility(v); err != nil {
			return h.fail(c, "Put failed", err)
		}
	}

	// The body buffer is reused by fiber once the handler returns
	contents := append([]byte(nil), c.Body()...)

	meta, err := h.service.Put(c.Context(), c.Params("disk"), p, contents, opts)
	if err != nil {
		return h.fail(c, "Put failed", err)
	}

	h.logger(c).Info("Object written", zap.String("path", p), zap.Int("size", len(contents)))
	return c.JSON(meta)
}

// HandleDelete deletes an object.
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	p, err := objectPath(c)
	if err != nil {
		return h.fail(c, "Delete failed", err)
	}

	if err := h.service.Delete(c.Context(), c.Params("disk"), p); err != nil {
		return h.fail(c, "Delete failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseTransfer(c *fiber.Ctx) (transfer, error) {
	var req transfer
	if err := c.BodyParser(&req); err != nil {
		return req, filesystem.Errorf(filesystem.ErrInvalidArgument, "bad body: %v", err)
	}
	if req.From == "" || req.To == "" {
		return req, filesystem.Errorf(filesystem.ErrInvalidArgument, "from and to are required")
	}
	return req, nil
}

// HandleCopy copies an object.
func (h *Handler) HandleCopy(c *fiber.Ctx) error {
	req, err := parseTransfer(c)
	if err != nil {
		return h.fail(c, "Copy failed", err)
	}

	if err := h.service.Copy(c.Context(), c.Params("disk"), req.From, req.To); err != nil {
		return h.fail(c, "Copy failed", err)
	}
	return c.JSON(fiber.Map{"status": "copied", "from": req.From, "to": req.To})
}

// HandleRename renames an object.
func (h *Handler) HandleRename(c *fiber.Ctx) error {
	req, err := parseTransfer(c)
	if err != nil {
		return h.fail(c, "Rename failed", err)
	}

	if err := h.service.Rename(c.Context(), c.Params("disk"), req.From, req.To); err != nil {
		return h.fail(c, "Rename failed", err)
	}
	return c.JSON(fiber.Map{"status": "renamed", "from": req.From, "to": req.To})
}

// HandleMetadata returns the descriptor of an object.
func (h *Handler) HandleMetadata(c *fiber.Ctx) error {
	p, err := objectPath(c)
	if err != nil {
		return h.fail(c, "Metadata failed", err)
	}

	meta, err := h.service.Metadata(c.Context(), c.Params("disk"), p)
	if err != nil {
		return h.fail(c, "Metadata failed", err)
	}
	return c.JSON(meta)
}

// HandleGetVisibility returns the visibility of an object.
func (h *Handler) HandleGetVisibility(c *fiber.Ctx) error {
	p, err := objectPath(c)
	if err != nil {
		return h.fail(c, "Visibility lookup failed", err)
	}

	meta, err := h.service.Visibility(c.Context(), c.Params("disk"), p)
	if err != nil {
		return h.fail(c, "Visibility lookup failed", err)
	}
	return c.JSON(meta)
}

// HandleSetVisibility changes the visibility of an object.
func (h *Handler) HandleSetVisibility(c *fiber.Ctx) error {
	p, err := objectPath(c)
	if err != nil {
		return h.fail(c, "Visibility change failed", err)
	}

	var req visibilityRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, "Visibility change failed", filesystem.Errorf(filesystem.ErrInvalidArgument, "bad body: %v", err))
	}
	v, err := filesystem.ParseVisibility(req.Visibility)
	if err != nil {
		return h.fail(c, "Visibility change failed", err)
	}

	meta, err := h.service.SetVisibility(c.Context(), c.Params("disk"), p, v)
	if err != nil {
		return h.fail(c, "Visibility change failed", err)
	}
	return c.JSON(meta)
}

// HandleCreateDir creates a directory.
func (h *Handler) HandleCreateDir(c *fiber.Ctx) error {
	p, err := objectPath(c)
	if err != nil {
		return h.fail(c, "Create dir failed", err)
	}

	meta, err := h.service.CreateDir(c.Context(), c.Params("disk"), strings.Trim(p, "/"))
	if err != nil {
		return h.fail(c, "Create dir failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(meta)
}

// HandleDeleteDir deletes a directory recursively.
func (h *Handler) HandleDeleteDir(c *fiber.Ctx) error {
	p, err := objectPath(c)
	if err != nil {
		return h.fail(c, "Delete dir failed", err)
	}

	if err := h.service.DeleteDir(c.Context(), c.Params("disk"), strings.Trim(p, "/")); err != nil {
		return h.fail(c, "Delete dir failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleURL returns the URL of an object.
func (h *Handler) HandleURL(c *fiber.Ctx) error {
	p, err := objectPath(c)
	if err != nil {
		return h.fail(c, "URL failed", err)
	}

	u, err := h.service.URL(c.Context(), c.Params("disk"), p, expiresOf(c))
	if err != nil {
		return h.fail(c, "URL failed", err)
	}
	return c.JSON(fiber.Map{"url": u})
}

// HandleTemporaryURL returns a signed URL of an object.
func (h *Handler) HandleTemporaryURL(c *fiber.Ctx) error {
	p, err := objectPath(c)
	if err != nil {
		return h.fail(c, "Temporary URL failed", err)
	}

	u, err := h.service.TemporaryURL(c.Context(), c.Params("disk"), p, expiresOf(c))
	if err != nil {
		return h.fail(c, "Temporary URL failed", err)
	}
	return c.JSON(fiber.Map{"url": u, "expires_in": int(expiresOf(c).Seconds())})
}
