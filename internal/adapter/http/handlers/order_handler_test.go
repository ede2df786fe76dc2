package handlers

import (
	"net/http"
	"testing"

	"smartmenu/internal/adapter/http/handlers/mocks"
	"smartmenu/internal/domain/entities"
	"smartmenu/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(uc *mocks.MockIOrderUseCase) *gin.Engine {
	h := NewOrderHandler(uc)
	r := gin.New()
	r.GET("/v1/orders", h.List)
	r.GET("/v1/orders/:order_id", h.GetByID)
	r.PATCH("/v1/orders/:order_id/status", h.UpdateStatus)
	r.GET("/v1/admin/stats", h.Stats)
	return r
}

func TestOrderHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)

		w := serve(newOrderRouter(uc), http.MethodGet, "/v1/orders?filter=late", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("recent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), usecase.OrderFilterRecent).Return([]entities.Order{
			{ID: "o-2", Status: entities.OrderStatusPreparing},
			{ID: "o-1", Status: entities.OrderStatusPending},
		}, nil)

		w := serve(newOrderRouter(uc), http.MethodGet, "/v1/orders?filter=recent", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("defaults to all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), usecase.OrderFilterAll).Return(nil, nil)

		w := serve(newOrderRouter(uc), http.MethodGet, "/v1/orders", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestOrderHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	uc.EXPECT().GetByID(gomock.Any(), "o-9").Return(entities.Order{}, usecase.ErrOrderNotFound)

	w := serve(newOrderRouter(uc), http.MethodGet, "/v1/orders/o-9", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["code"] != "ORDER_NOT_FOUND" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)

		w := serve(newOrderRouter(uc), http.MethodPatch, "/v1/orders/o-1/status", `{"status":"delivered"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INVALID_ORDER_STATUS" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), "o-9", entities.OrderStatusReady).Return(entities.Order{}, usecase.ErrOrderNotFound)

		w := serve(newOrderRouter(uc), http.MethodPatch, "/v1/orders/o-9/status", `{"status":"ready"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusPreparing).Return(entities.Order{ID: "o-1", Status: entities.OrderStatusPreparing}, nil)

		w := serve(newOrderRouter(uc), http.MethodPatch, "/v1/orders/o-1/status", `{"status":"PREPARING"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["status"] != "preparing" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_Stats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	uc.EXPECT().Stats(gomock.Any()).Return(usecase.OrderStats{
		Total:    2,
		ByStatus: map[entities.OrderStatus]int{entities.OrderStatusPending: 1, entities.OrderStatusCancelled: 1},
		Revenue:  decimal.RequireFromString("24.5"),
	}, nil)

	w := serve(newOrderRouter(uc), http.MethodGet, "/v1/admin/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["total"] != float64(2) || body["revenue"] != "24.50" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}
