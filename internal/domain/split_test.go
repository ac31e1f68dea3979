package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineItemTotal(t *testing.T) {
	tests := []struct {
		name     string
		item     LineItem
		expected int
	}{
		{"single unit", LineItem{Name: "Item A", Quantity: 1, UnitPrice: 18}, 18},
		{"many units", LineItem{Name: "Item B", Quantity: 25, UnitPrice: 4}, 100},
		{"zero quantity", LineItem{Name: "Item C", Quantity: 0, UnitPrice: 50}, 0},
		{"negative price passes through", LineItem{Name: "Refund", Quantity: 2, UnitPrice: -5}, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.item.Total())
		})
	}
}

func TestItemsTotal(t *testing.T) {
	items := []LineItem{
		{Name: "Item A", Quantity: 25, UnitPrice: 1},
		{Name: "Item B", Quantity: 25, UnitPrice: 1},
		{Name: "Item C", Quantity: 50, UnitPrice: 1},
	}

	assert.Equal(t, 100, ItemsTotal(items))
	assert.Equal(t, 0, ItemsTotal(nil), "No items should total zero")
}

func TestSplitResultSum(t *testing.T) {
	result := SplitResult{
		"hermano@gmail.com": 34,
		"brena@hotmail.com": 33,
		"lucas@gmail.com":   33,
	}

	assert.Equal(t, 100, result.Sum())
	assert.Equal(t, 0, SplitResult{}.Sum())
}
