package sage

import (
	"fmt"
	"mime/multipart"

	"catalog-sync/core/logger"
	"catalog-sync/core/reconcile"
	"catalog-sync/core/sheet"
	"catalog-sync/core/table"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const workbookMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler handles HTTP requests for the Sage dialect.
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

// RegisterRoutes registers the Sage routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sage")
	group.Post("/transform", h.HandleTransform)
	group.Post("/reconcile", h.HandleReconcile)
}

// HandleTransform transforms an uploaded Sage export and returns the
// canonical workbook. Form fields: file (required), supplier (optional).
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

	supplier := h.supplier(c)
	c.Set(fiber.HeaderContentType, workbookMIME)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s_transformed.xlsx", supplier))
	return c.Send(buf.Bytes())
}

// HandleReconcile transforms an uploaded export, diffs it against an
// uploaded previous snapshot, and returns a zip bundle with the canonical
// workbook plus ADDS/UPDATES/DELETES. Form fields: file, old_file.
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

	supplier := h.supplier(c)
	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s_catalog_sync.zip", supplier))
	return writeBundle(c, supplier, out, result)
}

// loadUpload reads one multipart file into a table.
func (h *Handler) loadUpload(c *fiber.Ctx, field string) (*table.Table, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("form field %q: no file provided", field)
	}
	return loadMultipart(h.loader, fh)
}

func (h *Handler) supplier(c *fiber.Ctx) string {
	if s := c.FormValue("supplier"); s != "" {
		return s
	}
	return h.service.cfg.Supplier
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

// writeBundle streams the four-workbook zip to the response.
func writeBundle(c *fiber.Ctx, prefix string, out *table.Table, result *reconcile.Result) error {
	return sheet.Bundle(c.Response().BodyWriter(), []sheet.BundleEntry{
		{Name: prefix + "_transformed.xlsx", Table: out},
		{Name: prefix + "_ADDS.xlsx", Table: result.Adds},
		{Name: prefix + "_UPDATES.xlsx", Table: result.Updates},
		{Name: prefix + "_DELETES.xlsx", Table: result.Deletes},
	})
}
