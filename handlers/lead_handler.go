package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/AhmadTDiallo/PaycodeDRC-sub000/helper"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/models"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/services"
)

type LeadHandler struct {
	leadService services.LeadService
	Helper      *helper.HTTPHelper
}

func NewLeadHandler(leadService services.LeadService, h *helper.HTTPHelper) *LeadHandler {
	return &LeadHandler{leadService: leadService, Helper: h}
}

func (h *LeadHandler) CreateDemoRequest(c *gin.Context) {
	var req models.DemoRequestRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	demoRequest, err := h.leadService.CreateDemoRequest(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Demo request received", demoRequest)
}

func (h *LeadHandler) ListDemoRequests(c *gin.Context) {
	requests, err := h.leadService.ListDemoRequests()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Demo requests loaded", requests)
}

func (h *LeadHandler) Subscribe(c *gin.Context) {
	var req models.NewsletterRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	sub, err := h.leadService.Subscribe(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Subscription created", sub)
}

func (h *LeadHandler) ListSubscriptions(c *gin.Context) {
	subs, err := h.leadService.ListSubscriptions()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Subscriptions loaded", subs)
}
