package handler

import (
	"net/http"

	"anoa.com/yayasanalhikmah/internal/dto"
	"anoa.com/yayasanalhikmah/internal/service"
	"anoa.com/yayasanalhikmah/pkg/response"
	"anoa.com/yayasanalhikmah/pkg/validator"
	"github.com/gin-gonic/gin"
)

type GraduateHandler struct {
	graduateService service.GraduateService
}

func NewGraduateHandler(graduateService service.GraduateService) *GraduateHandler {
	return &GraduateHandler{graduateService: graduateService}
}

func (h *GraduateHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	graduates, err := h.graduateService.List(c.Request.Context(), query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": graduates})
}

func (h *GraduateHandler) Get(c *gin.Context) {
	graduate, err := h.graduateService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, graduate)
}

func (h *GraduateHandler) Create(c *gin.Context) {
	var input dto.GraduateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	graduate, err := h.graduateService.Create(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, graduate)
}

func (h *GraduateHandler) Update(c *gin.Context) {
	var input dto.GraduateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	graduate, err := h.graduateService.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, graduate)
}

func (h *GraduateHandler) Delete(c *gin.Context) {
	if err := h.graduateService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "alumni dihapus"})
}
