package controllers

import (
	"restaurant-backend/entity"
	"restaurant-backend/pkg/resp"
	"restaurant-backend/repository"

	"github.com/gin-gonic/gin"
)

type ContactController struct{ Repo *repository.ContactRepository }

func NewContactController(repo *repository.ContactRepository) *ContactController {
	return &ContactController{Repo: repo}
}

type contactRequest struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Phone   string `json:"phone" form:"phone"`
	Subject string `json:"subject" form:"subject" binding:"required"`
	Message string `json:"message" form:"message" binding:"required"`
}

// POST /contact/
func (h *ContactController) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	msg := entity.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.Repo.Create(&msg); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": msg.ID})
}
