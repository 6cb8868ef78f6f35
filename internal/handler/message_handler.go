package handler

import (
	"net/http"
	"strconv"

	"anoa.com/yayasanalhikmah/internal/dto"
	"anoa.com/yayasanalhikmah/internal/service"
	"anoa.com/yayasanalhikmah/pkg/apperror"
	"anoa.com/yayasanalhikmah/pkg/response"
	"anoa.com/yayasanalhikmah/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type MessageHandler struct {
	messageService  service.MessageService
	settingsService service.SettingsService
	redisClient     *redis.Client
	rateLimit       rateLimitConfig
}

func NewMessageHandler(messageService service.MessageService, settingsService service.SettingsService, redisClient *redis.Client, rateLimit rateLimitConfig) *MessageHandler {
	return &MessageHandler{
		messageService:  messageService,
		settingsService: settingsService,
		redisClient:     redisClient,
		rateLimit:       rateLimit,
	}
}

func (h *MessageHandler) Submit(c *gin.Context) {
	var input dto.MessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	allowed, err := service.CheckAndSetRateLimit(c.Request.Context(), h.redisClient, c.ClientIP(), "message_submit", h.rateLimit.Message)
	if err == nil && !allowed {
		response.ResponseError(c, apperror.ErrRateLimitExceeded)
		return
	}

	message, err := h.messageService.Submit(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

func (h *MessageHandler) ListPublished(c *gin.Context) {
	messages, err := h.messageService.ListPublished(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": messages})
}

func (h *MessageHandler) ListAll(c *gin.Context) {
	messages, err := h.messageService.ListAll(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": messages})
}

func (h *MessageHandler) SetPublished(c *gin.Context) {
	published, err := strconv.ParseBool(c.DefaultQuery("published", "true"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "published harus true atau false"})
		return
	}

	message, err := h.messageService.SetPublished(c.Request.Context(), c.Param("id"), published)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, message)
}

func (h *MessageHandler) Delete(c *gin.Context) {
	if err := h.messageService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "pesan dihapus"})
}

func (h *MessageHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetMessageSettings(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *MessageHandler) SaveSettings(c *gin.Context) {
	var input dto.MessageSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	settings, err := h.settingsService.SaveMessageSettings(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
