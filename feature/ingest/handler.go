package ingest

import (
	"errors"

	"snapshot-manager/core/logger"
	"snapshot-manager/feature/dataset/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for ingestion and dataset queries.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the ingest and dataset routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	ingestGroup := app.Group("/ingest")
	ingestGroup.Post("/run", h.HandleRun)
	ingestGroup.Get("/plan", h.HandlePlan)
	ingestGroup.Put("/snapshots/:name", h.HandleUpload)

	datasetGroup := app.Group("/dataset")
	datasetGroup.Get("/summary", h.HandleSummary)
	datasetGroup.Get("/records", h.HandleRecords)
}

// HandleRun triggers a full ingestion run.
// @Summary Run Ingestion
// @Description Lists candidate raw snapshots and merges their new dates into the persisted dataset. Per-file failures are reported, not fatal.
// @Tags ingest
// @Accept json
// @Produce json
// @Success 200 {object} ingest.Report "Ingestion Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /ingest/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering ingestion run")

	report, err := h.service.ProcessAll(c.Context())
	if err != nil {
		l.Error("Ingestion run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandlePlan previews an ingestion run without writing.
// @Summary Plan Ingestion
// @Description Simulates a full ingestion run and reports which dates each candidate snapshot would contribute. The dataset is never written.
// @Tags ingest
// @Accept json
// @Produce json
// @Success 200 {object} ingest.Plan "Ingestion Plan"
// @Failure 409 {object} map[string]string "Store Not Bootstrapped"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /ingest/plan [get]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	plan, err := h.service.PlanAll(c.Context())
	if err != nil {
		if errors.Is(err, store.ErrNotBootstrapped) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Ingestion plan failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(plan)
}

// HandleUpload stores a new raw snapshot through the source.
// @Summary Upload Snapshot
// @Description Stores a raw wide-format snapshot CSV under the given name. The snapshot is merged on the next ingestion run.
// @Tags ingest
// @Accept text/csv
// @Produce json
// @Param name path string true "Snapshot file name"
// @Success 201 {object} map[string]string "Stored"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /ingest/snapshots/{name} [put]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("name")

	if len(c.Body()) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "empty snapshot body"})
	}

	if err := h.service.Upload(c.Context(), name, c.Body()); err != nil {
		l.Error("Snapshot upload failed", zap.String("file", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Snapshot uploaded", zap.String("file", name), zap.Int("bytes", len(c.Body())))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "stored", "name": name})
}

// HandleSummary returns aggregate dataset statistics.
// @Summary Dataset Summary
// @Description Returns record, entity, and date counts plus the covered date range of the persisted dataset.
// @Tags dataset
// @Accept json
// @Produce json
// @Success 200 {object} models.Summary "Dataset Summary"
// @Failure 409 {object} map[string]string "Store Not Bootstrapped"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /dataset/summary [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	summary, err := h.service.Summary(c.Context())
	if err != nil {
		if errors.Is(err, store.ErrNotBootstrapped) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Summary failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(summary)
}

// HandleRecords returns persisted observations, optionally filtered.
// @Summary Dataset Records
// @Description Returns persisted observations in canonical (entity_key, date) order, optionally filtered by entity key and capped by limit.
// @Tags dataset
// @Accept json
// @Produce json
// @Param entity_key query string false "Entity key filter (Client/Warehouse/Product)"
// @Param limit query int false "Maximum number of records"
// @Success 200 {array} models.Record "Observations"
// @Failure 409 {object} map[string]string "Store Not Bootstrapped"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /dataset/records [get]
func (h *Handler) HandleRecords(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	entityKey := c.Query("entity_key")
	limit := c.QueryInt("limit", 0)

	records, err := h.service.Records(c.Context(), entityKey, limit)
	if err != nil {
		if errors.Is(err, store.ErrNotBootstrapped) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Records query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(records)
}
