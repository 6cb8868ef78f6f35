package handler

import (
	"net/http"

	"anoa.com/yayasanalhikmah/internal/dto"
	"anoa.com/yayasanalhikmah/internal/model"
	"anoa.com/yayasanalhikmah/internal/service"
	"anoa.com/yayasanalhikmah/pkg/response"
	"anoa.com/yayasanalhikmah/pkg/validator"
	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService service.SettingsService
}

func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetPublic serves the website content for the public pages, defaults
// filled in for anything not yet configured.
func (h *SettingsHandler) GetPublic(c *gin.Context) {
	settings, err := h.settingsService.GetPublic(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Save(c *gin.Context) {
	var content model.WebsiteContent
	if err := c.ShouldBindJSON(&content); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	settings, err := h.settingsService.Save(c.Request.Context(), content)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) ListPrograms(c *gin.Context) {
	programs, err := h.settingsService.ListPrograms(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": programs})
}

// UpdateProgram looks the program up by its URL slug. Program names carry
// slashes ("TKA/TPA") and cannot appear as a path segment.
func (h *SettingsHandler) UpdateProgram(c *gin.Context) {
	program, ok := model.ProgramFromSlug(c.Param("program"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "program tidak ditemukan"})
		return
	}

	var input dto.ProgramDetailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	detail, err := h.settingsService.UpdateProgram(c.Request.Context(), program, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
