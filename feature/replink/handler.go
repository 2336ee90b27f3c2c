package replink

import (
	"fmt"
	"mime/multipart"

	"catalog-sync/core/logger"
	"catalog-sync/core/sheet"
	"catalog-sync/core/table"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const workbookMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler handles HTTP requests for the Replink dialect.
type Handler struct {
	service *Service
	loader  *sheet.Loader
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
		loader:  sheet.NewLoader(service.logger),
	}
}

// RegisterRoutes registers the Replink routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/replink")
	group.Post("/transform", h.HandleTransform)
	group.Post("/reconcile", h.HandleReconcile)
}

// HandleTransform transforms an uploaded Replink feed and returns the
// canonical workbook. Form field: file (required).
func (h *Handler) HandleTransform(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	src, err := h.loadUpload(c, "file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	out, err := h.service.Transform(src)
	if err != nil {
		l.Error("Transform failed", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	buf, err := sheet.WriteBuffer(out)
	if err != nil {
		l.Error("Workbook serialization failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, workbookMIME)
	c.Set(fiber.HeaderContentDisposition, "attachment; filename=replink_transformed.xlsx")
	return c.Send(buf.Bytes())
}

// HandleReconcile transforms an uploaded feed, diffs it against an uploaded
// previous snapshot, and returns a zip bundle with the canonical workbook,
// the enabled/disabled split, and ADDS/UPDATES/DELETES.
// Form fields: file, old_file.
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	src, err := h.loadUpload(c, "file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	oldTable, err := h.loadUpload(c, "old_file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	out, err := h.service.Transform(src)
	if err != nil {
		l.Error("Transform failed", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.service.Reconcile(oldTable, out)
	if err != nil {
		l.Error("Reconciliation failed", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	enabled, disabled := h.service.SplitByStatus(out)

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename=replink_catalog_sync.zip")
	return sheet.Bundle(c.Response().BodyWriter(), []sheet.BundleEntry{
		{Name: "replink_transformed.xlsx", Table: out},
		{Name: "replink_ENABLED.xlsx", Table: enabled},
		{Name: "replink_DISABLED.xlsx", Table: disabled},
		{Name: "replink_ADDS.xlsx", Table: result.Adds},
		{Name: "replink_UPDATES.xlsx", Table: result.Updates},
		{Name: "replink_DELETES.xlsx", Table: result.Deletes},
	})
}

// loadUpload reads one multipart file into a table.
func (h *Handler) loadUpload(c *fiber.Ctx, field string) (*table.Table, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("form field %q: no file provided", field)
	}
	return loadMultipart(h.loader, fh)
}

// loadMultipart opens a multipart upload and parses it as a feed.
func loadMultipart(loader *sheet.Loader, fh *multipart.FileHeader) (*table.Table, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()
	return loader.LoadReader(f, fh.Filename)
}
