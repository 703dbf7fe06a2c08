package domain

import "strings"

type FoodCategory string

const (
	CategoryLiked    FoodCategory = "LIKED"
	CategoryDisliked FoodCategory = "DISLIKED"
	CategoryNeutral  FoodCategory = "NEUTRAL"
)

// Categories lists every food category in a stable order.
var Categories = []FoodCategory{CategoryLiked, CategoryDisliked, CategoryNeutral}

func ParseFoodCategory(s string) (FoodCategory, error) {
	c := FoodCategory(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case CategoryLiked, CategoryDisliked, CategoryNeutral:
		return c, nil
	}
	return "", ErrInvalidCategory
}

type FoodItem struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	Category FoodCategory `json:"category"`
}

func NewFoodItem(name string, category FoodCategory) FoodItem {
	return FoodItem{Name: name, Category: category}
}

// DefaultCatalog is the fixed set of items inserted when the catalog is seeded.
func DefaultCatalog() []FoodItem {
	return []FoodItem{
		NewFoodItem("Salad", CategoryLiked),
		NewFoodItem("Fresh fruit", CategoryLiked),
		NewFoodItem("Grilled chicken breast", CategoryLiked),
		NewFoodItem("Vegetable soup", CategoryLiked),

		NewFoodItem("Hamburger", CategoryDisliked),
		NewFoodItem("French fries", CategoryDisliked),
		NewFoodItem("Sugary soda", CategoryDisliked),
		NewFoodItem("Chocolate", CategoryDisliked),

		NewFoodItem("Pasta", CategoryNeutral),
		NewFoodItem("Scrambled eggs", CategoryNeutral),
		NewFoodItem("Sandwich", CategoryNeutral),
		NewFoodItem("Toast", CategoryNeutral),
	}
}
