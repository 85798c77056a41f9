package domain

import "time"

// Consumable represents a catalog entry users can mix into experiments.
// Name is the canonical lookup key (case-insensitive); DisplayName is the
// title-cased form shown to users.
type Consumable struct {
	ID          string    `json:"consumable_id" db:"consumable_id"`
	Name        string    `json:"name" db:"name"`
	DisplayName string    `json:"display_name" db:"display_name"`
	Category    Category  `json:"category" db:"category"`
	Rarity      Rarity    `json:"rarity" db:"rarity"`
	Description string    `json:"description,omitempty" db:"description"`
	Nutrition   Nutrition `json:"nutrition" db:"-"`
	Vegan       bool      `json:"vegan" db:"vegan"`
	Vegetarian  bool      `json:"vegetarian" db:"vegetarian"`
	GlutenFree  bool      `json:"gluten_free" db:"gluten_free"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Nutrition holds the per-serving nutrition block used by experiment scoring.
type Nutrition struct {
	Calories   float64 `json:"calories"`
	ProteinG   float64 `json:"protein_g"`
	CarbsG     float64 `json:"carbs_g"`
	FatG       float64 `json:"fat_g"`
	CaffeineMg float64 `json:"caffeine_mg"`
	AlcoholABV float64 `json:"alcohol_abv"`
}

// HasCaffeine reports whether the consumable contributes caffeine to a mix.
func (c Consumable) HasCaffeine() bool {
	return c.Nutrition.CaffeineMg > 0
}

// HasAlcohol reports whether the consumable contributes alcohol to a mix.
func (c Consumable) HasAlcohol() bool {
	return c.Nutrition.AlcoholABV > 0
}

// Category represents the broad class of a consumable
type Category string

const (
	CategoryFood       Category = "food"
	CategoryDrink      Category = "drink"
	CategorySupplement Category = "supplement"
	CategoryHerb       Category = "herb"
)

// IsValidCategory checks if a category string is valid (empty string is valid = no filter)
func IsValidCategory(category string) bool {
	if category == "" {
		return true
	}
	switch Category(category) {
	case CategoryFood, CategoryDrink, CategorySupplement, CategoryHerb:
		return true
	}
	return false
}

// Rarity represents the visual rarity tier of a consumable or achievement
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// IsValidRarity checks if a rarity string names a known tier
func IsValidRarity(rarity string) bool {
	switch Rarity(rarity) {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

// NoveltyWeight returns the novelty-score contribution for the rarity tier.
// Unknown rarities contribute nothing, same as common.
func (r Rarity) NoveltyWeight() float64 {
	noveltyWeights := map[Rarity]float64{
		RarityCommon:    0,
		RarityRare:      8,
		RarityEpic:      14,
		RarityLegendary: 22,
	}

	if weight, ok := noveltyWeights[r]; ok {
		return weight
	}
	return 0
}
