package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/echosphere/echosphere-backend/bootstrap"
	"github.com/echosphere/echosphere-backend/domain"
)

type UserController struct {
	UserUsecase domain.UserUsecase
	Env         *bootstrap.Env
}

// List returns every user except the caller.
func (uc *UserController) List(c *gin.Context) {
	callerID := c.GetString("x-user-id")

	users, err := uc.UserUsecase.ListOthers(c.Request.Context(), callerID)
	if err != nil {
		respondError(c, uc.Env.AppEnv, "list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}
