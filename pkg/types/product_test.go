package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestProductPriceIsJSONNumber(t *testing.T) {
	p := Product{ID: 1, Title: "Backpack", Price: MustPrice("109.95")}

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"price":109.95`) {
		t.Fatalf("expected numeric price, got %s", raw)
	}
	if strings.Contains(string(raw), `"rating"`) {
		t.Fatalf("rating should be omitted when absent, got %s", raw)
	}
}

func TestPriceLeavesPlainDecimalsQuoted(t *testing.T) {
	raw, err := json.Marshal(struct {
		Plain decimal.Decimal `json:"plain"`
		Price Price           `json:"price"`
	}{Plain: decimal.RequireFromString("1.5"), Price: MustPrice("1.5")})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"plain":"1.5","price":1.5}` {
		t.Fatalf("price encoding must not leak into other decimals, got %s", raw)
	}
}

func TestProductDecodesUpstreamShape(t *testing.T) {
	body := `{"id":3,"title":"Jacket","price":55.99,"description":"warm","category":"men's clothing","image":"https://img/3.jpg","rating":{"rate":4.7,"count":500}}`

	var p Product
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.ID != 3 || !p.Price.Equal(decimal.RequireFromString("55.99")) {
		t.Fatalf("unexpected product %+v", p)
	}
	if p.Rating == nil || p.Rating.Count != 500 {
		t.Fatalf("expected rating to be decoded, got %+v", p.Rating)
	}
}
