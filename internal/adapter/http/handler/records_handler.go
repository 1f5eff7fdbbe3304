package handler

import (
	"strconv"

	"coin-launch-gateway/internal/adapter/http/dto"
	"coin-launch-gateway/internal/core/ports"
	"coin-launch-gateway/pkg/apperror"
	"coin-launch-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RecordsHandler serves the launch audit trail.
type RecordsHandler struct {
	reportingSvc ports.ReportingService
}

// NewRecordsHandler creates a new RecordsHandler.
func NewRecordsHandler(reportingSvc ports.ReportingService) *RecordsHandler {
	return &RecordsHandler{reportingSvc: reportingSvc}
}

// ListLaunches handles GET /api/launches.
func (h *RecordsHandler) ListLaunches(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	recs, err := h.reportingSvc.ListLaunches(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.LaunchRecordResponse, 0, len(recs))
	for i := range recs {
		items = append(items, dto.NewLaunchRecordResponse(&recs[i]))
	}

	response.OK(c, dto.LaunchRecordListResponse{
		Items: items,
		Count: len(items),
		Limit: limit,
	})
}

// GetLaunch handles GET /api/launches/:id.
func (h *RecordsHandler) GetLaunch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidRecordID())
		return
	}

	rec, err := h.reportingSvc.GetLaunch(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewLaunchRecordResponse(rec))
}
