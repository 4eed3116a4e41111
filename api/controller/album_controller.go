package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/echosphere/echosphere-backend/bootstrap"
	"github.com/echosphere/echosphere-backend/domain"
)

type AlbumController struct {
	AlbumUsecase domain.AlbumUsecase
	Env          *bootstrap.Env
}

func (ac *AlbumController) List(c *gin.Context) {
	albums, err := ac.AlbumUsecase.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, ac.Env.AppEnv, "list albums", err)
		return
	}
	c.JSON(http.StatusOK, albums)
}

func (ac *AlbumController) GetByID(c *gin.Context) {
	album, err := ac.AlbumUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, ac.Env.AppEnv, "get album", err)
		return
	}
	c.JSON(http.StatusOK, album)
}
