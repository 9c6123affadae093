package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-book-api/internal/service"
	resp "go-book-api/internal/transport/http/response"
	"go-book-api/internal/validate"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var p validate.RegisterPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, resp.Message("invalid request body"))
		return
	}
	if details := p.Validate(); len(details) > 0 {
		c.JSON(http.StatusBadRequest, resp.Invalid(details))
		return
	}

	u, err := h.svc.Register(p.Name, p.Email, p.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, resp.Message("email already in use"))
			return
		}
		writeStorageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user created successfully",
		"user": gin.H{
			"id":        u.ID,
			"name":      u.Name,
			"email":     u.Email,
			"role":      u.Role,
			"createdAt": u.CreatedAt,
		},
	})
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var p validate.LoginPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, resp.Message("invalid request body"))
		return
	}
	if details := p.Validate(); len(details) > 0 {
		c.JSON(http.StatusBadRequest, resp.Invalid(details))
		return
	}

	token, u, err := h.svc.Login(p.Email, p.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, resp.Message("invalid credentials"))
			return
		}
		writeStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"token":   token,
		"user": gin.H{
			"id":    u.ID,
			"name":  u.Name,
			"email": u.Email,
			"role":  u.Role,
		},
	})
}
