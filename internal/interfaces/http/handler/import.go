package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Venkatesh2304/myerpv2/internal/application/importer"
	"github.com/Venkatesh2304/myerpv2/internal/domain/report"
	"github.com/Venkatesh2304/myerpv2/internal/interfaces/http/dto"
)

// PipelineRunner runs a full refresh and import cycle for a tenant.
type PipelineRunner interface {
	RunAll(ctx context.Context, tenantID uuid.UUID, window report.DateRangeArgs) importer.RunReport
}

// ImportHandler handles import pipeline API endpoints.
type ImportHandler struct {
	BaseHandler
	pipeline PipelineRunner
	logger   *zap.Logger
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(pipeline PipelineRunner, logger *zap.Logger) *ImportHandler {
	return &ImportHandler{
		pipeline: pipeline,
		logger:   logger,
	}
}

// RegisterRoutes registers import routes
func (h *ImportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	imports := rg.Group("/imports")
	{
		imports.POST("", h.Run)
	}
}

// Run triggers a synchronous refresh and import cycle for a tenant over an
// inclusive date window. Individual refresh or import failures are reported
// in the body rather than failing the request; the run is still useful when
// only some source reports were available.
func (h *ImportHandler) Run(c *gin.Context) {
	var req dto.RunImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, dto.GetHTTPStatus(dto.ErrCodeInvalidJSON), dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	tenantID, window, err := req.Window()
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	run := h.pipeline.RunAll(c.Request.Context(), tenantID, window)
	if run.Failed() {
		h.logger.Warn("import run finished with failures",
			zap.String("tenant_id", tenantID.String()),
		)
	}

	h.Success(c, dto.NewRunImportResponse(run))
}
