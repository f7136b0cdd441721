package controllers

import (
	"restaurant-backend/pkg/resp"
	"restaurant-backend/repository"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Repo *repository.MenuRepository }

func NewMenuController(repo *repository.MenuRepository) *MenuController {
	return &MenuController{Repo: repo}
}

// GET /menu/ — available items, grouped for display by category then name.
func (h *MenuController) List(c *gin.Context) {
	items, err := h.Repo.ListAvailable()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
