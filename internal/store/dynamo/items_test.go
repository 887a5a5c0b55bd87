package dynamo

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"github.com/lamontana/storefront/internal/core"
)

func TestProductItemToCore(t *testing.T) {
	tests := []struct {
		name    string
		item    ProductItem
		wantOK  bool
		wantCat core.Category
	}{
		{"print", ProductItem{Name: "Copia color", Category: "PRINT", Price: 120, Available: true}, true, core.CategoryPrint},
		{"kind fallback", ProductItem{Name: "Encuadernado", Kind: "encuadernado", Available: true}, true, core.CategoryBinding},
		{"unavailable", ProductItem{Name: "Viejo", Category: "PRINT", Available: false}, false, ""},
		{"blank name", ProductItem{Name: " ", Category: "PRINT", Available: true}, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := tt.item.ToCore()
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && p.Category != tt.wantCat {
				t.Errorf("category = %s, want %s", p.Category, tt.wantCat)
			}
		})
	}
}

func TestOrderItemMarshalRoundTrip(t *testing.T) {
	created := time.Date(2026, 5, 2, 15, 4, 5, 123, time.UTC)
	o := core.Order{
		ID:     "o1",
		Number: "ORD-2026-000042",
		UserID: "u1",
		Lines: []core.CartLine{{
			Product:  core.Product{Name: "Fotocopia B/N", Category: core.CategoryPrint, Price: 40},
			Quantity: 3,
		}},
		CartTotal: 120,
		Total:     120,
		Shipping:  core.ShippingDetails{PostalCode: "2000", Outcome: core.ShippingIneligible},
		Status:    core.OrderStatusPlaced,
		CreatedAt: created,
	}

	av, err := attributevalue.MarshalMap(orderItemFromCore(o))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, ok := av["print_job"]; ok {
		t.Error("nil print job should be omitted")
	}

	var item OrderItem
	if err := attributevalue.UnmarshalMap(av, &item); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := item.ToCore()
	if !got.CreatedAt.Equal(created) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, created)
	}
	if got.Shipping.Outcome != core.ShippingIneligible {
		t.Errorf("outcome = %v", got.Shipping.Outcome)
	}
	if got.Lines[0].Subtotal() != 120 {
		t.Errorf("subtotal = %d", got.Lines[0].Subtotal())
	}
}

func TestTableDefinitionsCoverAllTables(t *testing.T) {
	want := map[string]bool{TableProducts: false, TableUsers: false, TableOrders: false, TableCounters: false}
	for _, in := range tableDefinitions() {
		name := *in.TableName
		if _, ok := want[name]; !ok {
			t.Errorf("unexpected table %s", name)
		}
		want[name] = true
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("missing table %s", name)
		}
	}
}
