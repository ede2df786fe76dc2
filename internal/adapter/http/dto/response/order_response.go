package response

import (
	"time"

	"smartmenu/internal/domain/entities"
	"smartmenu/internal/usecase"
)

// DisplayCodeLength is the number of trailing id characters shown on boards.
const DisplayCodeLength = 6

type OrderItemResponse struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
	Subtotal string `json:"subtotal"`
}

type SessionResponse struct {
	SessionID     string              `json:"session_id"`
	CustomerName  string              `json:"customer_name,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	ItemCount     int                 `json:"item_count"`
	PaymentMethod string              `json:"payment_method,omitempty"`
	Total         string              `json:"total"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	DisplayCode   string              `json:"display_code"`
	CustomerName  string              `json:"customer_name"`
	Items         []OrderItemResponse `json:"items"`
	PaymentMethod string              `json:"payment_method"`
	Status        string              `json:"status"`
	Total         string              `json:"total"`
	CreatedAt     time.Time           `json:"created_at"`
}

type OrderStatsResponse struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
	Revenue  string         `json:"revenue"`
}

func FromOrderItems(items []entities.OrderItem) []OrderItemResponse {
	out := make([]OrderItemResponse, len(items))
	for i, it := range items {
		out[i] = OrderItemResponse{
			ItemID:   it.ID,
			Name:     it.Name,
			Category: it.Category,
			Price:    Money(it.Price),
			Quantity: it.Quantity,
			Subtotal: Money(it.Subtotal()),
		}
	}
	return out
}

func FromSession(s entities.Session) SessionResponse {
	res := SessionResponse{
		SessionID:     s.ID,
		Items:         FromOrderItems(s.Items),
		PaymentMethod: string(s.PaymentMethod),
		Total:         Money(s.Total),
	}
	if s.Customer != nil {
		res.CustomerName = s.Customer.Name
	}
	for _, it := range s.Items {
		res.ItemCount += it.Quantity
	}
	return res
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		DisplayCode:   o.DisplayCode(DisplayCodeLength),
		CustomerName:  o.Customer.Name,
		Items:         FromOrderItems(o.Items),
		PaymentMethod: string(o.PaymentMethod),
		Status:        string(o.Status),
		Total:         Money(o.Total),
		CreatedAt:     o.CreatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = FromOrder(o)
	}
	return out
}

func FromOrderStats(s usecase.OrderStats) OrderStatsResponse {
	by := make(map[string]int, len(s.ByStatus))
	for status, n := range s.ByStatus {
		by[string(status)] = n
	}
	return OrderStatsResponse{Total: s.Total, ByStatus: by, Revenue: Money(s.Revenue)}
}

type AdminTokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func FromAdminToken(t usecase.AdminToken) AdminTokenResponse {
	return AdminTokenResponse{AccessToken: t.AccessToken, TokenType: "Bearer", ExpiresAt: t.ExpiresAt}
}
