package controllers

import (
	"errors"
	"net/http"

	"restaurant-backend/pkg/resp"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(svc *services.AuthService) *AuthController { return &AuthController{Svc: svc} }

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/signup
func (a *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Signup(req.Username, req.Email, req.Password)
	if err != nil {
		// duplicate username/email and the like read back as form messages
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"id": user.ID, "username": user.Username, "email": user.Email, "role": user.Role})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Username, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user":  gin.H{"id": user.ID, "username": user.Username, "email": user.Email, "role": user.Role},
	})
}

// POST /auth/admin-login — same as login but staff only.
func (a *AuthController) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.AdminLogin(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrNotStaff) {
			resp.Forbidden(c, err.Error())
			return
		}
		resp.Unauthorized(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user":  gin.H{"id": user.ID, "username": user.Username, "email": user.Email, "role": user.Role},
	})
}
