package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/echosphere/echosphere-backend/bootstrap"
	"github.com/echosphere/echosphere-backend/domain"
)

type StatsController struct {
	StatsUsecase domain.StatsUsecase
	Env          *bootstrap.Env
}

func (sc *StatsController) Get(c *gin.Context) {
	stats, err := sc.StatsUsecase.Get(c.Request.Context())
	if err != nil {
		respondError(c, sc.Env.AppEnv, "get stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
