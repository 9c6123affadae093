package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-book-api/internal/domain"
	"go-book-api/internal/service"
	mdw "go-book-api/internal/transport/http/middleware"
	resp "go-book-api/internal/transport/http/response"
	"go-book-api/internal/validate"
)

type BookHandler struct {
	svc service.BookService
}

func NewBookHandler(svc service.BookService) *BookHandler {
	return &BookHandler{svc: svc}
}

// parseID 路径参数必须是正整数字面量（"07"、"12abc" 都拒绝）
func parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 || strconv.FormatUint(n, 10) != raw {
		c.JSON(http.StatusBadRequest, resp.Message("invalid id, must be a positive integer"))
		return 0, false
	}
	return uint(n), true
}

func actor(c *gin.Context) (domain.Identity, bool) {
	id, ok := mdw.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, resp.Message("missing or invalid token"))
	}
	return id, ok
}

// Create POST /books
func (h *BookHandler) Create(c *gin.Context) {
	id, ok := actor(c)
	if !ok {
		return
	}
	var p validate.BookCreatePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, resp.Message("invalid request body"))
		return
	}
	if details := p.Validate(); len(details) > 0 {
		c.JSON(http.StatusBadRequest, resp.Invalid(details))
		return
	}

	b := &domain.Book{
		Title:       p.Title,
		Author:      p.Author,
		Description: p.Description,
		Genre:       p.Genre,
	}
	if p.Year != nil {
		b.Year = *p.Year
	}
	if err := h.svc.Create(id, b); err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "book created successfully", "book": b})
}

// List GET /books?genre=&year=&author=&page=&limit=
func (h *BookHandler) List(c *gin.Context) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 10)
	if page < 1 || limit < 1 || limit > 100 {
		c.JSON(http.StatusBadRequest,
			resp.Message("invalid pagination parameters: page >= 1, 1 <= limit <= 100"))
		return
	}

	f := domain.BookFilter{
		Genre:  c.Query("genre"),
		Author: c.Query("author"),
	}
	// 非数字的 year 静默忽略，不作为过滤条件
	if y, err := strconv.Atoi(c.Query("year")); err == nil {
		f.Year = &y
	}

	books, pg, err := h.svc.List(f, page, limit)
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "book list",
		"pagination": pg,
		"books":      books,
	})
}

// Get GET /books/:id
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	b, err := h.svc.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, resp.Message("book not found"))
			return
		}
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"book": b})
}

// Update PUT /books/:id
func (h *BookHandler) Update(c *gin.Context) {
	bookID, ok := parseID(c)
	if !ok {
		return
	}
	id, ok := actor(c)
	if !ok {
		return
	}
	var p validate.BookUpdatePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, resp.Message("invalid request body"))
		return
	}
	if details := p.Validate(); len(details) > 0 {
		c.JSON(http.StatusBadRequest, resp.Invalid(details))
		return
	}

	b, err := h.svc.Update(id, bookID, domain.BookPatch{
		Title:       p.Title,
		Author:      p.Author,
		Description: p.Description,
		Year:        p.Year,
		Genre:       p.Genre,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, resp.Message("book not found"))
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, resp.Message("you may only modify your own books"))
		default:
			writeStorageError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "book updated successfully", "book": b})
}

// Delete DELETE /books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	bookID, ok := parseID(c)
	if !ok {
		return
	}
	id, ok := actor(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(id, bookID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, resp.Message("book not found"))
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, resp.Message("you may only modify your own books"))
		default:
			writeStorageError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, resp.Message("book deleted successfully"))
}

// Like POST /books/:id/like
func (h *BookHandler) Like(c *gin.Context) {
	bookID, ok := parseID(c)
	if !ok {
		return
	}
	id, ok := actor(c)
	if !ok {
		return
	}
	likes, err := h.svc.Like(id, bookID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, resp.Message("book not found"))
		case errors.Is(err, domain.ErrAlreadyLiked):
			c.JSON(http.StatusConflict, gin.H{"message": "book already liked", "likesCount": likes})
		default:
			writeStorageError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "like added", "likesCount": likes})
}

// intQuery 解析整型查询参数；缺省、非数字或 0 都回退默认值（负数保留，交给上层拒绝）
func intQuery(c *gin.Context, name string, def int) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil || n == 0 {
		return def
	}
	return n
}
