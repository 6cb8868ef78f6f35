package handler

import (
	"net/http"

	"anoa.com/yayasanalhikmah/internal/dto"
	"anoa.com/yayasanalhikmah/internal/service"
	"anoa.com/yayasanalhikmah/pkg/apperror"
	"anoa.com/yayasanalhikmah/pkg/response"
	"anoa.com/yayasanalhikmah/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type PPDBHandler struct {
	ppdbService service.PPDBService
	redisClient *redis.Client
	rateLimit   rateLimitConfig
}

func NewPPDBHandler(ppdbService service.PPDBService, redisClient *redis.Client, rateLimit rateLimitConfig) *PPDBHandler {
	return &PPDBHandler{
		ppdbService: ppdbService,
		redisClient: redisClient,
		rateLimit:   rateLimit,
	}
}

// GetSettings is public: the frontend uses it to decide whether to render
// the registration form or the closed-state message.
func (h *PPDBHandler) GetSettings(c *gin.Context) {
	settings, err := h.ppdbService.GetSettings(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if !settings.IsOpen {
		c.JSON(http.StatusOK, gin.H{
			"settings": settings,
			"closed":   h.ppdbService.ClosedResponse(settings),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (h *PPDBHandler) SaveSettings(c *gin.Context) {
	var input dto.PPDBSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	settings, err := h.ppdbService.SaveSettings(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *PPDBHandler) Submit(c *gin.Context) {
	var input dto.PPDBRegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	allowed, err := service.CheckAndSetRateLimit(c.Request.Context(), h.redisClient, c.ClientIP(), "ppdb_submit", h.rateLimit.PPDB)
	if err == nil && !allowed {
		response.ResponseError(c, apperror.ErrRateLimitExceeded)
		return
	}

	reg, err := h.ppdbService.Submit(c.Request.Context(), input)
	if err != nil {
		// A closed window renders the full closed-state payload, not just
		// an error string.
		if err == apperror.ErrRegistrationClosed {
			settings, sErr := h.ppdbService.GetSettings(c.Request.Context())
			if sErr == nil {
				c.JSON(http.StatusForbidden, gin.H{
					"error":  err.Error(),
					"closed": h.ppdbService.ClosedResponse(settings),
				})
				return
			}
		}
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reg)
}

func (h *PPDBHandler) ListRegistrations(c *gin.Context) {
	regs, err := h.ppdbService.ListRegistrations(c.Request.Context(),
		c.Query("status"), c.Query("program"), c.Query("search"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": regs})
}

func (h *PPDBHandler) ApproveRegistration(c *gin.Context) {
	reg, err := h.ppdbService.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, reg)
}

func (h *PPDBHandler) RejectRegistration(c *gin.Context) {
	reg, err := h.ppdbService.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, reg)
}

func (h *PPDBHandler) GetFormFields(c *gin.Context) {
	fields, err := h.ppdbService.GetFormFields(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": fields})
}

func (h *PPDBHandler) SaveFormFields(c *gin.Context) {
	var inputs []dto.PPDBFormFieldInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	fields, err := h.ppdbService.SaveFormFields(c.Request.Context(), inputs)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": fields})
}
