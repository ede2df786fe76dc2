package handlers

import (
	"net/http"
	"testing"
	"time"

	"smartmenu/internal/adapter/http/handlers/mocks"
	"smartmenu/internal/domain/entities"
	"smartmenu/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newSessionRouter(uc *mocks.MockISessionUseCase) *gin.Engine {
	h := NewSessionHandler(uc)
	r := gin.New()
	r.POST("/v1/sessions", h.Open)
	r.GET("/v1/sessions/:session_id", h.Get)
	r.DELETE("/v1/sessions/:session_id", h.Close)
	r.PUT("/v1/sessions/:session_id/customer", h.SetCustomer)
	r.POST("/v1/sessions/:session_id/cart/items", h.AddCartItem)
	r.PATCH("/v1/sessions/:session_id/cart/items/:item_id", h.SetCartItemQuantity)
	r.DELETE("/v1/sessions/:session_id/cart/items/:item_id", h.RemoveCartItem)
	r.DELETE("/v1/sessions/:session_id/cart", h.ClearCart)
	r.PUT("/v1/sessions/:session_id/payment-method", h.SetPaymentMethod)
	r.POST("/v1/sessions/:session_id/orders", h.SubmitOrder)
	return r
}

func sessionWithBacon(qty int) entities.Session {
	items := []entities.OrderItem{{MenuItem: xBacon(), Quantity: qty}}
	return entities.Session{ID: "s-1", Items: items, Total: entities.SumItems(items)}
}

func TestSessionHandler_Open(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISessionUseCase(ctrl)
	uc.EXPECT().Open(gomock.Any()).Return(entities.Session{ID: "s-1", Total: decimal.Zero}, nil)

	w := serve(newSessionRouter(uc), http.MethodPost, "/v1/sessions", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["session_id"] != "s-1" || body["total"] != "0.00" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestSessionHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		uc.EXPECT().Get(gomock.Any(), "s-x").Return(entities.Session{}, usecase.ErrSessionNotFound)

		w := serve(newSessionRouter(uc), http.MethodGet, "/v1/sessions/s-x", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		uc.EXPECT().Get(gomock.Any(), "s-1").Return(sessionWithBacon(2), nil)

		w := serve(newSessionRouter(uc), http.MethodGet, "/v1/sessions/s-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["total"] != "36.00" || body["item_count"] != float64(2) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestSessionHandler_Close(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISessionUseCase(ctrl)
	uc.EXPECT().Close(gomock.Any(), "s-1").Return(nil)

	w := serve(newSessionRouter(uc), http.MethodDelete, "/v1/sessions/s-1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestSessionHandler_SetCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)

		w := serve(newSessionRouter(uc), http.MethodPut, "/v1/sessions/s-1/customer", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		uc.EXPECT().SetCustomer(gomock.Any(), "s-1", "   ").Return(entities.Session{}, usecase.ErrInvalidCustomerName)

		w := serve(newSessionRouter(uc), http.MethodPut, "/v1/sessions/s-1/customer", `{"name":"   "}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INVALID_CUSTOMER_NAME" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		uc.EXPECT().SetCustomer(gomock.Any(), "s-1", "Ana").Return(entities.Session{ID: "s-1", Customer: &entities.Customer{Name: "Ana"}}, nil)

		w := serve(newSessionRouter(uc), http.MethodPut, "/v1/sessions/s-1/customer", `{"name":"Ana"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["customer_name"] != "Ana" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestSessionHandler_Cart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add defaults quantity to one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		uc.EXPECT().AddCartItem(gomock.Any(), "s-1", "x-bacon", 1).Return(sessionWithBacon(1), nil)

		w := serve(newSessionRouter(uc), http.MethodPost, "/v1/sessions/s-1/cart/items", `{"item_id":" x-bacon "}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("add rejects zero quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)

		w := serve(newSessionRouter(uc), http.MethodPost, "/v1/sessions/s-1/cart/items", `{"item_id":"x-bacon","quantity":0}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INVALID_QUANTITY" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("add rejects quantity above limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)

		for _, body := range []string{`{"item_id":"x-bacon","quantity":100}`, `{"item_id":"x-bacon","quantity":9223372036854775807}`} {
			w := serve(newSessionRouter(uc), http.MethodPost, "/v1/sessions/s-1/cart/items", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", body, w.Code)
			}
		}
	})

	t.Run("add merge above limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		uc.EXPECT().AddCartItem(gomock.Any(), "s-1", "x-bacon", 2).Return(entities.Session{}, usecase.ErrInvalidQuantity)

		w := serve(newSessionRouter(uc), http.MethodPost, "/v1/sessions/s-1/cart/items", `{"item_id":"x-bacon","quantity":2}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INVALID_QUANTITY" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("set quantity above limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)

		w := serve(newSessionRouter(uc), http.MethodPatch, "/v1/sessions/s-1/cart/items/x-bacon", `{"quantity":100}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("add unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		uc.EXPECT().AddCartItem(gomock.Any(), "s-1", "nope", 2).Return(entities.Session{}, usecase.ErrMenuItemNotFound)

		w := serve(newSessionRouter(uc), http.MethodPost, "/v1/sessions/s-1/cart/items", `{"item_id":"nope","quantity":2}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("set quantity zero is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		uc.EXPECT().SetCartItemQuantity(gomock.Any(), "s-1", "x-bacon", 0).Return(entities.Session{ID: "s-1"}, nil)

		w := serve(newSessionRouter(uc), http.MethodPatch, "/v1/sessions/s-1/cart/items/x-bacon", `{"quantity":0}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("set quantity requires body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)

		w := serve(newSessionRouter(uc), http.MethodPatch, "/v1/sessions/s-1/cart/items/x-bacon", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("remove", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		uc.EXPECT().RemoveCartItem(gomock.Any(), "s-1", "x-bacon").Return(entities.Session{ID: "s-1"}, nil)

		w := serve(newSessionRouter(uc), http.MethodDelete, "/v1/sessions/s-1/cart/items/x-bacon", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("clear", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		uc.EXPECT().ClearCart(gomock.Any(), "s-1").Return(entities.Session{ID: "s-1"}, nil)

		w := serve(newSessionRouter(uc), http.MethodDelete, "/v1/sessions/s-1/cart", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["total"] != "0.00" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestSessionHandler_SetPaymentMethod(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("legacy alias", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		uc.EXPECT().SetPaymentMethod(gomock.Any(), "s-1", entities.PaymentMethodCard).Return(entities.Session{ID: "s-1", PaymentMethod: entities.PaymentMethodCard}, nil)

		w := serve(newSessionRouter(uc), http.MethodPut, "/v1/sessions/s-1/payment-method", `{"payment_method":"CARTAO"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["payment_method"] != "CARD" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("unsupported method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)

		w := serve(newSessionRouter(uc), http.MethodPut, "/v1/sessions/s-1/payment-method", `{"payment_method":"BOLETO"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INVALID_PAYMENT_METHOD" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestSessionHandler_SubmitOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("precondition failed lists missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		uc.EXPECT().SubmitOrder(gomock.Any(), "s-1").Return(entities.Order{}, &usecase.PreconditionError{
			Missing: []string{usecase.MissingCustomer, usecase.MissingItems},
		})

		w := serve(newSessionRouter(uc), http.MethodPost, "/v1/sessions/s-1/orders", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["code"] != "ORDER_PRECONDITION_FAILED" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		details, _ := body["details"].(map[string]any)
		missing, _ := details["missing"].([]any)
		if len(missing) != 2 || missing[0] != "customer" || missing[1] != "items" {
			t.Fatalf("unexpected missing list: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		o := entities.Order{
			ID:            "0190c2a4-7b1e-7000-8000-0000001234ab",
			Customer:      entities.Customer{Name: "Ana"},
			Items:         []entities.OrderItem{{MenuItem: xBacon(), Quantity: 1}},
			PaymentMethod: entities.PaymentMethodPIX,
			Status:        entities.OrderStatusPending,
			CreatedAt:     time.Now().UTC(),
			Total:         decimal.RequireFromString("18.00"),
		}
		uc.EXPECT().SubmitOrder(gomock.Any(), "s-1").Return(o, nil)

		w := serve(newSessionRouter(uc), http.MethodPost, "/v1/sessions/s-1/orders", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["id"] != o.ID || body["display_code"] != "1234ab" || body["status"] != "pending" || body["total"] != "18.00" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
