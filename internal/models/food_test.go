// internal/models/food_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinSubCategories(t *testing.T) {
	tests := []struct {
		name string
		subs []SubCategory
		want string
	}{
		{"empty", nil, ""},
		{"single", []SubCategory{SubChicken}, "Chicken"},
		{"multiple keep order", []SubCategory{SubBeef, SubPork}, "Beef,Pork"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinSubCategories(tt.subs))
			assert.Equal(t, tt.subs, SplitSubCategories(tt.want))
		})
	}
}

func TestFoodRecord_ValueRoundTrip(t *testing.T) {
	columns := []string{ColRestaurant, ColItem, ColCalories, ColTotalCarb, "sodium"}
	values := []string{"Burger Barn", "Beef Burger", "540", "45", "980"}

	var rec FoodRecord
	for i, col := range columns {
		rec.SetValue(col, values[i])
	}

	assert.Equal(t, "Burger Barn", rec.Restaurant)
	assert.Equal(t, "980", rec.Extra["sodium"])
	assert.Equal(t, values, rec.Row(columns))
}

func TestFoodRecord_SetValueDerivedColumns(t *testing.T) {
	var rec FoodRecord
	rec.SetValue(ColCategory, "Main")
	rec.SetValue(ColSubCategory, "Chicken,Beef")

	assert.Equal(t, CategoryMain, rec.Category)
	assert.Equal(t, []SubCategory{SubChicken, SubBeef}, rec.SubCategories)
	assert.Empty(t, rec.Extra)
}
