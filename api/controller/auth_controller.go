package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/echosphere/echosphere-backend/bootstrap"
	"github.com/echosphere/echosphere-backend/domain"
)

type AuthController struct {
	UserUsecase domain.UserUsecase
	Env         *bootstrap.Env
}

type authCallbackRequest struct {
	ID        string `json:"id" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	ImageURL  string `json:"imageUrl"`
}

// Callback is hit by the client after a successful provider sign-in;
// it mirrors the provider profile into the users collection.
func (ac *AuthController) Callback(c *gin.Context) {
	var req authCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Message: "invalid request body"})
		return
	}

	fullName := strings.TrimSpace(req.FirstName + " " + req.LastName)
	if err := ac.UserUsecase.SyncFromProvider(c.Request.Context(), req.ID, fullName, req.ImageURL); err != nil {
		respondError(c, ac.Env.AppEnv, "auth callback", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
