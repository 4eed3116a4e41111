package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/echosphere/echosphere-backend/domain"
	"github.com/echosphere/echosphere-backend/domain/mocks"
)

func TestUserController_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userUC := new(mocks.UserUsecase)
	userUC.On("ListOthers", mock.Anything, "user_123").
		Return([]domain.User{{ExternalID: "user_456", FullName: "Grace Hopper"}}, nil)

	ctrl := &UserController{UserUsecase: userUC, Env: testEnv()}

	engine := gin.New()
	engine.GET("/users", func(c *gin.Context) {
		// Stand-in for the auth middleware.
		c.Set("x-user-id", "user_123")
	}, ctrl.List)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Grace Hopper")
	assert.NotContains(t, rec.Body.String(), "user_123")
	userUC.AssertExpectations(t)
}
