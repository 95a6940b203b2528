package domain

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tradewind-labs/northwind-backend/internal/platform/pointers"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestOrderDetailLineTotal(t *testing.T) {
	cases := []struct {
		name  string
		price string
		qty   int
		disc  string
		want  string
	}{
		{"no discount", "18.00", 5, "0", "90.00"},
		{"ten percent off", "19.00", 2, "0.10", "34.20"},
		{"full discount", "31.00", 3, "1", "0.00"},
		{"fractional price", "21.35", 4, "0.05", "81.13"},
	}
	for _, tc := range cases {
		od := OrderDetail{UnitPrice: dec(tc.price), Quantity: tc.qty, Discount: dec(tc.disc)}
		if got := od.LineTotal(); !got.Equal(dec(tc.want)) {
			t.Fatalf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestOrderTotal(t *testing.T) {
	o := Order{}
	if !o.Total().Equal(decimal.Zero) {
		t.Fatalf("empty order total: got %s", o.Total())
	}
	o.OrderDetails = []OrderDetail{
		{UnitPrice: dec("18.00"), Quantity: 5, Discount: decimal.Zero},
		{UnitPrice: dec("19.00"), Quantity: 2, Discount: dec("0.10")},
	}
	if got := o.Total(); !got.Equal(dec("124.20")) {
		t.Fatalf("order total: got %s", got)
	}
}

func TestProductStockRules(t *testing.T) {
	p := Product{ProductName: "Chai", UnitsInStock: pointers.Int(3), ReorderLevel: pointers.Int(10)}
	if !p.IsLowStock() {
		t.Fatalf("3 on hand against level 10 should be low")
	}
	p.UnitsInStock = pointers.Int(10)
	if p.IsLowStock() {
		t.Fatalf("stock at the reorder level is not low")
	}
	// Unknown counters never trigger a reorder.
	p.ReorderLevel = nil
	if p.IsLowStock() {
		t.Fatalf("missing reorder level should not be low")
	}

	price := dec("18.00")
	p.UnitPrice = &price
	p.UnitsInStock = pointers.Int(39)
	if got := p.TotalValue(); !got.Equal(dec("702.00")) {
		t.Fatalf("total value: got %s", got)
	}
	p.UnitPrice = nil
	if !p.TotalValue().Equal(decimal.Zero) {
		t.Fatalf("unpriced stock should value to zero")
	}
}

func TestProductValidate(t *testing.T) {
	ok := Product{ProductName: "Chai"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid product: %v", err)
	}
	if err := (&Product{}).Validate(); err == nil {
		t.Fatalf("unnamed product should fail")
	}
	neg := dec("-1")
	if err := (&Product{ProductName: "x", UnitPrice: &neg}).Validate(); err == nil {
		t.Fatalf("negative price should fail")
	}
	if err := (&Product{ProductName: "x", UnitsOnOrder: pointers.Int(-2)}).Validate(); err == nil {
		t.Fatalf("negative on-order count should fail")
	}
}

func TestOrderDetailValidate(t *testing.T) {
	ok := OrderDetail{UnitPrice: dec("18.00"), Quantity: 1, Discount: decimal.Zero}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid line: %v", err)
	}
	bad := OrderDetail{UnitPrice: dec("18.00"), Quantity: 0}
	if err := bad.Validate(); err == nil {
		t.Fatalf("zero quantity should fail")
	}
	bad = OrderDetail{UnitPrice: dec("18.00"), Quantity: 1, Discount: dec("1.5")}
	if err := bad.Validate(); err == nil {
		t.Fatalf("discount above 1 should fail")
	}
}

func TestEmployeeNamesAndValidate(t *testing.T) {
	e := Employee{FirstName: "Nancy", LastName: "Davolio"}
	if e.FullName() != "Nancy Davolio" {
		t.Fatalf("full name: got %q", e.FullName())
	}
	if err := e.Validate(); err != nil {
		t.Fatalf("valid employee: %v", err)
	}
	e.ID = 7
	e.ReportsTo = pointers.Int(7)
	if err := e.Validate(); err == nil {
		t.Fatalf("self-managing employee should fail")
	}
}

func TestCustomerDisplayName(t *testing.T) {
	c := Customer{CompanyName: "Alfreds Futterkiste", ContactName: pointers.String("Maria Anders")}
	if c.DisplayName() != "Alfreds Futterkiste (Maria Anders)" {
		t.Fatalf("display name: got %q", c.DisplayName())
	}
	c.ContactName = nil
	if c.DisplayName() != "Alfreds Futterkiste" {
		t.Fatalf("display name without contact: got %q", c.DisplayName())
	}
}
