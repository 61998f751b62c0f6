package handlers

import (
	"net/http"

	"goldenfish/services/menu"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MenuHandler serves the storefront menu.
type MenuHandler struct {
	Service menu.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(svc menu.MenuService) *MenuHandler {
	return &MenuHandler{Service: svc}
}

// GetMenuHandler returns the assembled menu document.
func (mh *MenuHandler) GetMenuHandler(c *gin.Context) {
	m, err := mh.Service.GetMenu(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to load menu", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}
	c.JSON(http.StatusOK, m)
}
