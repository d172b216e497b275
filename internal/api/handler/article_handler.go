package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legalsheba/legalsheba-api/internal/core/domain"
	"github.com/legalsheba/legalsheba-api/internal/core/ports"
)

// ArticleHandler handles the info hub. Reads are public; mutations sit
// behind the admin-only route class.
type ArticleHandler struct {
	service ports.ArticleService
}

func NewArticleHandler(service ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

type articleRequest struct {
	Title    string `json:"title"    validate:"required,max=150"`
	Content  string `json:"content"  validate:"required"`
	Category string `json:"category" validate:"required,max=50"`
	Date     string `json:"date"     validate:"required,max=50"`
}

type articleResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

func toArticleResponse(a *domain.Article) articleResponse {
	return articleResponse{
		ID:       a.ID,
		Title:    a.Title,
		Content:  a.Content,
		Category: a.Category,
		Date:     a.Date,
	}
}

// List handles GET /infohub with optional ?category filter.
//
// @Summary      List info articles
// @Tags         infohub
// @Produce      json
// @Param        category  query     string  false  "Category filter (case-insensitive)"
// @Param        page      query     int     false  "Zero-based page"
// @Param        size      query     int     false  "Page size (max 100)"
// @Success      200       {object}  pagedResponse
// @Router       /infohub [get]
func (h *ArticleHandler) List(c echo.Context) error {
	page, size := pageParams(c)
	result, err := h.service.List(c.Request().Context(), c.QueryParam("category"), page, size)
	if err != nil {
		return err
	}

	items := make([]articleResponse, 0, len(result.Items))
	for _, a := range result.Items {
		items = append(items, toArticleResponse(a))
	}
	return c.JSON(http.StatusOK, newPagedResponse(items, result.Page, result.Size, result.Total))
}

// Get handles GET /infohub/:id.
//
// @Summary      Get an info article
// @Tags         infohub
// @Produce      json
// @Param        id   path      string  true  "Article id"
// @Success      200  {object}  articleResponse
// @Failure      404  {object}  map[string]string
// @Router       /infohub/{id} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	article, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toArticleResponse(article))
}

// Create handles POST /infohub (admin only).
//
// @Summary      Create an info article
// @Tags         infohub
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      articleRequest  true  "Article"
// @Success      200   {object}  articleResponse
// @Failure      403   {object}  map[string]string
// @Router       /infohub [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	article, err := h.service.Create(c.Request().Context(), ports.ArticleInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Date:     req.Date,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toArticleResponse(article))
}

// Update handles PUT /infohub/:id (admin only).
//
// @Summary      Update an info article
// @Tags         infohub
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Article id"
// @Param        body  body      articleRequest  true  "Article"
// @Success      200   {object}  articleResponse
// @Failure      404   {object}  map[string]string
// @Router       /infohub/{id} [put]
func (h *ArticleHandler) Update(c echo.Context) error {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	article, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.ArticleInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Date:     req.Date,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toArticleResponse(article))
}

// Delete handles DELETE /infohub/:id (admin only).
//
// @Summary      Delete an info article
// @Tags         infohub
// @Security     BearerAuth
// @Param        id  path  string  true  "Article id"
// @Success      204 "No Content"
// @Failure      404 {object}  map[string]string
// @Router       /infohub/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
