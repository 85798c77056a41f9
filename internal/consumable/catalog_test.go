package consumable

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
)

func TestCatalogLoader_Load(t *testing.T) {
	loader := NewCatalogLoader()

	t.Run("valid JSON file", func(t *testing.T) {
		content := `{
			"version": "1.0",
			"description": "Test catalog",
			"consumables": [
				{
					"name": "green tea",
					"category": "drink",
					"rarity": "common",
					"description": "A test drink",
					"nutrition": { "calories": 2, "caffeine_mg": 28 },
					"vegan": true,
					"vegetarian": true,
					"gluten_free": true
				}
			]
		}`
		tmpFile := createTempCatalogFile(t, content)
		defer os.Remove(tmpFile)

		config, err := loader.Load(tmpFile)
		require.NoError(t, err)
		assert.Equal(t, "1.0", config.Version)
		assert.Equal(t, "Test catalog", config.Description)
		require.Len(t, config.Consumables, 1)
		assert.Equal(t, "green tea", config.Consumables[0].Name)
		assert.Equal(t, "drink", config.Consumables[0].Category)
		assert.Equal(t, 28.0, config.Consumables[0].Nutrition.CaffeineMg)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/path.json")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read catalog file")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		tmpFile := createTempCatalogFile(t, `{invalid json}`)
		defer os.Remove(tmpFile)

		_, err := loader.Load(tmpFile)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("schema rejects unknown category", func(t *testing.T) {
		content := `{
			"version": "1.0",
			"consumables": [
				{ "name": "mystery goo", "category": "potion", "rarity": "common" }
			]
		}`
		tmpFile := createTempCatalogFile(t, content)
		defer os.Remove(tmpFile)

		_, err := loader.Load(tmpFile)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("schema rejects missing name", func(t *testing.T) {
		content := `{
			"version": "1.0",
			"consumables": [
				{ "category": "food", "rarity": "common" }
			]
		}`
		tmpFile := createTempCatalogFile(t, content)
		defer os.Remove(tmpFile)

		_, err := loader.Load(tmpFile)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})
}

func TestCatalogLoader_LoadShippedCatalog(t *testing.T) {
	loader := NewCatalogLoader()

	config, err := loader.Load("../../configs/consumables.json")
	require.NoError(t, err)
	require.NoError(t, loader.Validate(config))

	categories := make(map[string]bool)
	rarities := make(map[string]bool)
	for _, entry := range config.Consumables {
		categories[entry.Category] = true
		rarities[entry.Rarity] = true
	}

	assert.Len(t, categories, 4, "shipped catalog should cover every category")
	assert.Len(t, rarities, 4, "shipped catalog should cover every rarity")
}

func TestCatalogLoader_Validate(t *testing.T) {
	loader := NewCatalogLoader()

	validEntry := CatalogEntry{
		Name:     "espresso",
		Category: "drink",
		Rarity:   "rare",
		Nutrition: domain.Nutrition{
			Calories:   3,
			CaffeineMg: 63,
		},
	}

	t.Run("valid config", func(t *testing.T) {
		config := &CatalogConfig{
			Version:     "1.0",
			Consumables: []CatalogEntry{validEntry},
		}
		assert.NoError(t, loader.Validate(config))
	})

	t.Run("nil config", func(t *testing.T) {
		err := loader.Validate(nil)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidCatalog))
	})

	t.Run("empty consumables", func(t *testing.T) {
		config := &CatalogConfig{Version: "1.0", Consumables: []CatalogEntry{}}
		err := loader.Validate(config)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidCatalog))
	})

	t.Run("duplicate names", func(t *testing.T) {
		config := &CatalogConfig{
			Version:     "1.0",
			Consumables: []CatalogEntry{validEntry, validEntry},
		}
		err := loader.Validate(config)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrDuplicateName))
		assert.Contains(t, err.Error(), "espresso")
	})

	t.Run("empty name", func(t *testing.T) {
		entry := validEntry
		entry.Name = ""
		config := &CatalogConfig{Version: "1.0", Consumables: []CatalogEntry{entry}}
		err := loader.Validate(config)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "index 0")
	})

	t.Run("unknown category", func(t *testing.T) {
		entry := validEntry
		entry.Category = "potion"
		config := &CatalogConfig{Version: "1.0", Consumables: []CatalogEntry{entry}}
		err := loader.Validate(config)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown category")
	})

	t.Run("empty category", func(t *testing.T) {
		entry := validEntry
		entry.Category = ""
		config := &CatalogConfig{Version: "1.0", Consumables: []CatalogEntry{entry}}
		err := loader.Validate(config)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown category")
	})

	t.Run("unknown rarity", func(t *testing.T) {
		entry := validEntry
		entry.Rarity = "mythic"
		config := &CatalogConfig{Version: "1.0", Consumables: []CatalogEntry{entry}}
		err := loader.Validate(config)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown rarity")
	})

	t.Run("negative nutrition", func(t *testing.T) {
		entry := validEntry
		entry.Nutrition.ProteinG = -1
		config := &CatalogConfig{Version: "1.0", Consumables: []CatalogEntry{entry}}
		err := loader.Validate(config)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "negative nutrition")
	})

	t.Run("alcohol over 100 percent", func(t *testing.T) {
		entry := validEntry
		entry.Nutrition.AlcoholABV = 101
		config := &CatalogConfig{Version: "1.0", Consumables: []CatalogEntry{entry}}
		err := loader.Validate(config)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "alcohol_abv")
	})
}

func TestCatalogLoader_SyncToDatabase(t *testing.T) {
	ctx := context.Background()

	t.Run("upserts every entry", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

		loader := NewCatalogLoader()
		config := &CatalogConfig{
			Version: "1.0",
			Consumables: []CatalogEntry{
				{Name: "banana", Category: "food", Rarity: "common"},
				{Name: "espresso", Category: "drink", Rarity: "rare"},
			},
		}

		result, err := loader.SyncToDatabase(ctx, config, repo)
		require.NoError(t, err)
		assert.Equal(t, 2, result.ConsumablesSynced)
		repo.AssertNumberOfCalls(t, "Upsert", 2)
	})

	t.Run("derives display name by title casing", func(t *testing.T) {
		repo := new(MockRepository)
		var captured *domain.Consumable
		repo.On("Upsert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			captured = args.Get(1).(*domain.Consumable)
		}).Return(nil)

		loader := NewCatalogLoader()
		config := &CatalogConfig{
			Version: "1.0",
			Consumables: []CatalogEntry{
				{Name: "dark chocolate", Category: "food", Rarity: "rare"},
			},
		}

		_, err := loader.SyncToDatabase(ctx, config, repo)
		require.NoError(t, err)
		require.NotNil(t, captured)
		assert.Equal(t, "dark chocolate", captured.Name)
		assert.Equal(t, "Dark Chocolate", captured.DisplayName)
	})

	t.Run("keeps explicit display name", func(t *testing.T) {
		repo := new(MockRepository)
		var captured *domain.Consumable
		repo.On("Upsert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			captured = args.Get(1).(*domain.Consumable)
		}).Return(nil)

		loader := NewCatalogLoader()
		config := &CatalogConfig{
			Version: "1.0",
			Consumables: []CatalogEntry{
				{Name: "vitamin c", DisplayName: "Vitamin C-1000", Category: "supplement", Rarity: "common"},
			},
		}

		_, err := loader.SyncToDatabase(ctx, config, repo)
		require.NoError(t, err)
		require.NotNil(t, captured)
		assert.Equal(t, "Vitamin C-1000", captured.DisplayName)
	})

	t.Run("stops on upsert failure", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("db down"))

		loader := NewCatalogLoader()
		config := &CatalogConfig{
			Version: "1.0",
			Consumables: []CatalogEntry{
				{Name: "banana", Category: "food", Rarity: "common"},
				{Name: "espresso", Category: "drink", Rarity: "rare"},
			},
		}

		_, err := loader.SyncToDatabase(ctx, config, repo)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "banana")
		repo.AssertNumberOfCalls(t, "Upsert", 1)
	})
}

func createTempCatalogFile(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp("", "catalog_*.json")
	require.NoError(t, err)

	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)

	err = tmpFile.Close()
	require.NoError(t, err)

	return tmpFile.Name()
}
