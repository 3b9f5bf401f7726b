// internal/models/food.go
package models

import (
	"strings"
)

// Category is the top-level classification of a menu item.
type Category string

const (
	CategoryMain    Category = "Main"
	CategorySide    Category = "Side"
	CategoryDessert Category = "Dessert"
	CategoryOther   Category = "Other"
)

// SubCategory is a protein label applied only to Main items.
type SubCategory string

const (
	SubChicken SubCategory = "Chicken"
	SubBeef    SubCategory = "Beef"
	SubSeafood SubCategory = "Seafood"
	SubPork    SubCategory = "Pork"
	SubOther   SubCategory = "Other"
)

// Column names recognized in the input dataset. The first four are required;
// category and sub_category are the derived columns appended on export and
// recognized again on re-import.
const (
	ColRestaurant  = "restaurant"
	ColItem        = "item"
	ColCalories    = "calories"
	ColTotalCarb   = "total_carb"
	ColCategory    = "category"
	ColSubCategory = "sub_category"
)

// FoodRecord is one menu item. Restaurant and Item are kept verbatim with no
// normalization; Calories and TotalCarb stay raw strings until aggregation
// parses them, so a bad value is reported against the restaurant and column
// it came from rather than failing the whole ingest.
type FoodRecord struct {
	Restaurant string
	Item       string
	Calories   string
	TotalCarb  string

	// Extra holds passthrough columns not otherwise recognized.
	Extra map[string]string

	// Derived fields, written once by the classifier.
	Category      Category
	SubCategories []SubCategory
}

// Value returns the record's raw value for a base (non-derived) column.
func (r *FoodRecord) Value(column string) string {
	switch column {
	case ColRestaurant:
		return r.Restaurant
	case ColItem:
		return r.Item
	case ColCalories:
		return r.Calories
	case ColTotalCarb:
		return r.TotalCarb
	default:
		return r.Extra[column]
	}
}

// SetValue assigns a raw cell to the field or passthrough slot matching the
// column name. Derived columns are deserialized back into their typed form,
// which is what makes export followed by re-import lossless.
func (r *FoodRecord) SetValue(column, value string) {
	switch column {
	case ColRestaurant:
		r.Restaurant = value
	case ColItem:
		r.Item = value
	case ColCalories:
		r.Calories = value
	case ColTotalCarb:
		r.TotalCarb = value
	case ColCategory:
		r.Category = Category(value)
	case ColSubCategory:
		r.SubCategories = SplitSubCategories(value)
	default:
		if r.Extra == nil {
			r.Extra = make(map[string]string)
		}
		r.Extra[column] = value
	}
}

// Row renders the record's base values in the given column order.
func (r *FoodRecord) Row(columns []string) []string {
	row := make([]string, len(columns))
	for i, col := range columns {
		row[i] = r.Value(col)
	}
	return row
}

// Dataset is an in-memory table: the base column order as ingested plus one
// FoodRecord per row. Columns never contains the derived column names.
type Dataset struct {
	Columns []string
	Records []FoodRecord
}

// JoinSubCategories serializes subcategories for external consumption,
// e.g. "Chicken,Beef". An empty set serializes to the empty string.
func JoinSubCategories(subs []SubCategory) string {
	if len(subs) == 0 {
		return ""
	}
	parts := make([]string, len(subs))
	for i, s := range subs {
		parts[i] = string(s)
	}
	return strings.Join(parts, ",")
}

// SplitSubCategories is the inverse of JoinSubCategories.
func SplitSubCategories(s string) []SubCategory {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	subs := make([]SubCategory, len(parts))
	for i, p := range parts {
		subs[i] = SubCategory(p)
	}
	return subs
}

// CalorieStats summarizes the calories column for one restaurant group.
type CalorieStats struct {
	Mean float64
	Min  float64
	Max  float64
}

// CarbRank is one entry of the average-carbs ranking.
type CarbRank struct {
	Restaurant string
	AvgCarbs   float64
}
