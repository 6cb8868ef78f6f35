package handler

import (
	"net/http"

	"anoa.com/yayasanalhikmah/internal/service"
	"anoa.com/yayasanalhikmah/pkg/response"
	"github.com/gin-gonic/gin"
)

type StatHandler struct {
	statService    service.StatService
	visitorService service.VisitorService
}

func NewStatHandler(statService service.StatService, visitorService service.VisitorService) *StatHandler {
	return &StatHandler{
		statService:    statService,
		visitorService: visitorService,
	}
}

// Overview serves the admin dashboard counters.
func (h *StatHandler) Overview(c *gin.Context) {
	stats, err := h.statService.Overview(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// RecordVisit counts a public page view. The caller may send a stable
// visitor_id so repeated views from the same browser only count once a
// day; without one the client IP stands in.
func (h *StatHandler) RecordVisit(c *gin.Context) {
	var body struct {
		VisitorID string `json:"visitor_id"`
	}
	_ = c.ShouldBindJSON(&body)

	visitorID := body.VisitorID
	if visitorID == "" {
		visitorID = c.ClientIP()
	}

	if err := h.visitorService.RecordVisit(c.Request.Context(), visitorID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}
