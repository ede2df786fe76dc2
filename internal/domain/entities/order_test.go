package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParsePaymentMethod(t *testing.T) {
	cases := []struct {
		raw  string
		want PaymentMethod
	}{
		{raw: "PIX", want: PaymentMethodPIX},
		{raw: " pix ", want: PaymentMethodPIX},
		{raw: "CARD", want: PaymentMethodCard},
		{raw: "cartao", want: PaymentMethodCard},
		{raw: "CARTÃO", want: PaymentMethodCard},
	}
	for _, tc := range cases {
		got, ok := ParsePaymentMethod(tc.raw)
		if !ok || got != tc.want {
			t.Fatalf("ParsePaymentMethod(%q) = %q,%v want %q", tc.raw, got, ok, tc.want)
		}
	}
	if _, ok := ParsePaymentMethod("BOLETO"); ok {
		t.Fatalf("expected BOLETO to be rejected")
	}
	if PaymentMethod("").IsValid() {
		t.Fatalf("empty payment method must be invalid")
	}
}

func TestParseOrderStatus(t *testing.T) {
	for _, s := range OrderStatuses {
		got, ok := ParseOrderStatus(" " + string(s) + " ")
		if !ok || got != s {
			t.Fatalf("expected %s to parse", s)
		}
	}
	if _, ok := ParseOrderStatus("delivered"); ok {
		t.Fatalf("expected unknown status to be rejected")
	}
}

func TestOrder_DisplayCode(t *testing.T) {
	o := Order{ID: "0192f3a4-b5c6-7d8e-9f00-112233445566"}
	if got := o.DisplayCode(4); got != "5566" {
		t.Fatalf("expected 5566, got %s", got)
	}
	if got := o.DisplayCode(0); got != o.ID {
		t.Fatalf("expected full id, got %s", got)
	}
	if got := o.DisplayCode(100); got != o.ID {
		t.Fatalf("expected full id, got %s", got)
	}
}

func TestOrder_CloneAndSum(t *testing.T) {
	o := Order{
		ID: "o-1",
		Items: []OrderItem{
			{MenuItem: MenuItem{ID: "x-bacon", Price: decimal.RequireFromString("18.00")}, Quantity: 2},
			{MenuItem: MenuItem{ID: "coca-cola", Price: decimal.RequireFromString("5.00")}, Quantity: 1},
		},
	}
	if got := SumItems(o.Items); !got.Equal(decimal.RequireFromString("41")) {
		t.Fatalf("expected 41, got %s", got)
	}

	cp := o.Clone()
	cp.Items[0].Quantity = 10
	if o.Items[0].Quantity != 2 {
		t.Fatalf("clone shares item storage")
	}
}
