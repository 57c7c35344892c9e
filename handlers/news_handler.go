package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AhmadTDiallo/PaycodeDRC-sub000/helper"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/models"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/services"
)

type NewsHandler struct {
	newsService services.NewsService
	Helper      *helper.HTTPHelper
}

func NewNewsHandler(newsService services.NewsService, h *helper.HTTPHelper) *NewsHandler {
	return &NewsHandler{newsService: newsService, Helper: h}
}

func (h *NewsHandler) CreateArticle(c *gin.Context) {
	var req models.CreateNewsArticleRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	article, err := h.newsService.CreateArticle(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Article created", article)
}

func (h *NewsHandler) GetArticles(c *gin.Context) {
	h.listArticles(c, false)
}

// GetPublicArticles serves the public feed: published articles only.
func (h *NewsHandler) GetPublicArticles(c *gin.Context) {
	h.listArticles(c, true)
}

func (h *NewsHandler) listArticles(c *gin.Context, publicOnly bool) {
	var params models.NewsListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "invalid query parameters", h.Helper.EmptyJsonMap())
		return
	}

	articles, total, err := h.newsService.GetArticles(params, publicOnly)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Articles loaded", gin.H{
		"articles":   articles,
		"pagination": h.Helper.GeneratePaging(c, params.Limit, params.Page, total),
	})
}

func (h *NewsHandler) GetArticle(c *gin.Context) {
	h.getArticle(c, false)
}

func (h *NewsHandler) GetPublicArticle(c *gin.Context) {
	h.getArticle(c, true)
}

func (h *NewsHandler) getArticle(c *gin.Context, publicOnly bool) {
	id, ok := h.articleID(c)
	if !ok {
		return
	}

	article, err := h.newsService.GetArticle(id, publicOnly)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article loaded", article)
}

func (h *NewsHandler) UpdateArticle(c *gin.Context) {
	id, ok := h.articleID(c)
	if !ok {
		return
	}

	var req models.UpdateNewsArticleRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	article, err := h.newsService.UpdateArticle(id, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article updated", article)
}

func (h *NewsHandler) TogglePublish(c *gin.Context) {
	id, ok := h.articleID(c)
	if !ok {
		return
	}

	article, err := h.newsService.TogglePublish(id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Publication state updated", article)
}

func (h *NewsHandler) DeleteArticle(c *gin.Context) {
	id, ok := h.articleID(c)
	if !ok {
		return
	}

	if err := h.newsService.DeleteArticle(id); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article deleted", h.Helper.EmptyJsonMap())
}

func (h *NewsHandler) articleID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid article id", h.Helper.EmptyJsonMap())
		return 0, false
	}
	return uint(id), true
}
