package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/echosphere/echosphere-backend/bootstrap"
	"github.com/echosphere/echosphere-backend/domain"
)

// Sample sizes served by the discovery listings.
const (
	featuredSampleSize   = 6
	madeForYouSampleSize = 4
	trendingSampleSize   = 4
)

type SongController struct {
	SongUsecase domain.SongUsecase
	Env         *bootstrap.Env
}

func (sc *SongController) List(c *gin.Context) {
	songs, err := sc.SongUsecase.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, sc.Env.AppEnv, "list songs", err)
		return
	}
	c.JSON(http.StatusOK, songs)
}

func (sc *SongController) Featured(c *gin.Context) {
	sc.sample(c, featuredSampleSize)
}

func (sc *SongController) MadeForYou(c *gin.Context) {
	sc.sample(c, madeForYouSampleSize)
}

func (sc *SongController) Trending(c *gin.Context) {
	sc.sample(c, trendingSampleSize)
}

func (sc *SongController) sample(c *gin.Context, n int) {
	songs, err := sc.SongUsecase.Sample(c.Request.Context(), n)
	if err != nil {
		respondError(c, sc.Env.AppEnv, "sample songs", err)
		return
	}
	c.JSON(http.StatusOK, songs)
}
