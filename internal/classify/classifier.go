// internal/classify/classifier.go
package classify

import (
	"strings"

	"fastfood-insights/internal/models"
)

// CategoryRule maps a category label to the keywords that select it. Rules
// are evaluated in slice order and the first rule with any matching keyword
// wins, so the order of the slice is the category priority.
type CategoryRule struct {
	Label    models.Category
	Keywords []string
}

// ProteinRule maps a subcategory label to its keyword. Unlike category rules,
// protein rules are not first-match: every matching rule contributes a label.
type ProteinRule struct {
	Label   models.SubCategory
	Keyword string
}

// DefaultCategoryRules returns the standard category table. Main is evaluated
// before Dessert on purpose: an item naming both a main and a dessert keyword
// is a main.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{Label: models.CategoryMain, Keywords: []string{"burger", "sandwich", "pizza"}},
		{Label: models.CategorySide, Keywords: []string{"fries", "salad"}},
		{Label: models.CategoryDessert, Keywords: []string{"ice cream", "cake"}},
	}
}

// DefaultProteinRules returns the standard protein table in its fixed scan order.
func DefaultProteinRules() []ProteinRule {
	return []ProteinRule{
		{Label: models.SubChicken, Keyword: "chicken"},
		{Label: models.SubBeef, Keyword: "beef"},
		{Label: models.SubSeafood, Keyword: "seafood"},
		{Label: models.SubPork, Keyword: "pork"},
	}
}

// Classifier assigns categories and subcategories from item names. It is
// stateless and pure: the same item name always yields the same result, and
// no record's classification depends on another's.
//
// Matching is case-insensitive literal substring with no word-boundary check,
// so "cake" inside "Pancake" still counts as a dessert keyword.
type Classifier struct {
	categories []CategoryRule
	proteins   []ProteinRule
}

func New(categories []CategoryRule, proteins []ProteinRule) *Classifier {
	return &Classifier{categories: categories, proteins: proteins}
}

func NewDefault() *Classifier {
	return New(DefaultCategoryRules(), DefaultProteinRules())
}

// Categorize returns the first-match category for the item name, or Other
// when no rule matches.
func (c *Classifier) Categorize(item string) models.Category {
	lower := strings.ToLower(item)
	for _, rule := range c.categories {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Label
			}
		}
	}
	return models.CategoryOther
}

// Subcategorize collects every matching protein label in rule order. Only
// Main items carry subcategories; a Main with no protein match falls back to
// {Other}, so a Main subcategory set is never empty.
func (c *Classifier) Subcategorize(category models.Category, item string) []models.SubCategory {
	if category != models.CategoryMain {
		return nil
	}
	lower := strings.ToLower(item)
	var subs []models.SubCategory
	for _, rule := range c.proteins {
		if strings.Contains(lower, rule.Keyword) {
			subs = append(subs, rule.Label)
		}
	}
	if len(subs) == 0 {
		subs = []models.SubCategory{models.SubOther}
	}
	return subs
}

// Classify runs both stages for one item name.
func (c *Classifier) Classify(item string) (models.Category, []models.SubCategory) {
	category := c.Categorize(item)
	return category, c.Subcategorize(category, item)
}

// ClassifyAll writes the derived fields of every record in the dataset.
func (c *Classifier) ClassifyAll(ds *models.Dataset) {
	for i := range ds.Records {
		rec := &ds.Records[i]
		rec.Category, rec.SubCategories = c.Classify(rec.Item)
	}
}
