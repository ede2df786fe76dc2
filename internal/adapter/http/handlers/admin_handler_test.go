package handlers

import (
	"net/http"
	"testing"
	"time"

	"smartmenu/internal/adapter/http/handlers/mocks"
	"smartmenu/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIAdminAuthUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/v1/admin/login", NewAdminHandler(uc).Login)
		return r
	}

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminAuthUseCase(ctrl)

		w := serve(newRouter(uc), http.MethodPost, "/v1/admin/login", `{"email":"a@b.c"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminAuthUseCase(ctrl)
		uc.EXPECT().Login(gomock.Any(), "a@b.c", "wrong").Return(usecase.AdminToken{}, usecase.ErrInvalidCredentials)

		w := serve(newRouter(uc), http.MethodPost, "/v1/admin/login", `{"email":"a@b.c","password":"wrong"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminAuthUseCase(ctrl)
		uc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.AdminToken{}, usecase.ErrAdminNotConfigured)

		w := serve(newRouter(uc), http.MethodPost, "/v1/admin/login", `{"email":"a@b.c","password":"x"}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminAuthUseCase(ctrl)
		uc.EXPECT().Login(gomock.Any(), "a@b.c", "secret").Return(usecase.AdminToken{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)}, nil)

		w := serve(newRouter(uc), http.MethodPost, "/v1/admin/login", `{"email":"a@b.c","password":"secret"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["access_token"] != "tok" || body["token_type"] != "Bearer" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
