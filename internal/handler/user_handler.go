package handler

import (
	"net/http"

	"anoa.com/yayasanalhikmah/internal/dto"
	"anoa.com/yayasanalhikmah/internal/service"
	"anoa.com/yayasanalhikmah/pkg/response"
	"anoa.com/yayasanalhikmah/pkg/validator"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService  service.UserAdminService
	resetService service.PasswordResetService
}

func NewUserHandler(userService service.UserAdminService, resetService service.PasswordResetService) *UserHandler {
	return &UserHandler{
		userService:  userService,
		resetService: resetService,
	}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var input dto.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.userService.CreateUser(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	res, err := h.userService.GetAllUsers(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": res})
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var input dto.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *UserHandler) ApproveUser(c *gin.Context) {
	var input dto.ApproveUserInput
	// Body is optional; an empty body keeps the requested role.
	_ = c.ShouldBindJSON(&input)

	res, err := h.userService.ApproveUser(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *UserHandler) RejectUser(c *gin.Context) {
	if err := h.userService.RejectUser(c.Request.Context(), c.Param("id")); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "pendaftaran akun ditolak dan dihapus"})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user dihapus"})
}

func (h *UserHandler) GetPermissions(c *gin.Context) {
	perm, err := h.userService.GetPermissions(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, perm)
}

func (h *UserHandler) SetPermissions(c *gin.Context) {
	var input dto.PermissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	perm, err := h.userService.SetPermissions(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, perm)
}

// Password reset administration

func (h *UserHandler) ListPasswordResets(c *gin.Context) {
	reqs, err := h.resetService.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": reqs})
}

func (h *UserHandler) ApprovePasswordReset(c *gin.Context) {
	adminID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	token, err := h.resetService.Approve(c.Request.Context(), c.Param("id"), adminID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	// The plaintext token is returned exactly once, for the admin to hand
	// to the user out of band.
	c.JSON(http.StatusOK, gin.H{"reset_token": token})
}

func (h *UserHandler) RejectPasswordReset(c *gin.Context) {
	adminID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.resetService.Reject(c.Request.Context(), c.Param("id"), adminID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "permintaan reset password ditolak"})
}
