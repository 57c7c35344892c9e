package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AhmadTDiallo/PaycodeDRC-sub000/helper"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/models"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/services"
)

type AdminUserHandler struct {
	userService services.AdminUserService
	Helper      *helper.HTTPHelper
}

func NewAdminUserHandler(userService services.AdminUserService, h *helper.HTTPHelper) *AdminUserHandler {
	return &AdminUserHandler{userService: userService, Helper: h}
}

func (h *AdminUserHandler) ListAdminUsers(c *gin.Context) {
	users, err := h.userService.ListAdminUsers()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Admin users loaded", users)
}

func (h *AdminUserHandler) CreateAdminUser(c *gin.Context) {
	var req models.CreateAdminUserRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	user, err := h.userService.CreateAdminUser(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Admin user created", user)
}

func (h *AdminUserHandler) UpdateAdminUser(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	var req models.UpdateAdminUserRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	user, err := h.userService.UpdateAdminUser(id, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Admin user updated", user)
}

func (h *AdminUserHandler) DeleteAdminUser(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteAdminUser(id); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Admin user deleted", h.Helper.EmptyJsonMap())
}

func (h *AdminUserHandler) userID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid user id", h.Helper.EmptyJsonMap())
		return 0, false
	}
	return uint(id), true
}
