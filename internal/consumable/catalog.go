package consumable

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/logger"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/validation"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateName = errors.New("duplicate consumable name")

	ErrInvalidCatalog = errors.New("invalid catalog configuration")
)

// Schema paths
const (
	CatalogSchemaPath = "configs/schemas/consumables.schema.json"
)

// CatalogConfig represents the JSON catalog file
type CatalogConfig struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Consumables []CatalogEntry `json:"consumables"`
}

// CatalogEntry represents a single consumable definition in the JSON.
// DisplayName is optional; when omitted it is derived from Name by
// title-casing.
type CatalogEntry struct {
	Name        string           `json:"name"`
	DisplayName string           `json:"display_name,omitempty"`
	Category    string           `json:"category"`
	Rarity      string           `json:"rarity"`
	Description string           `json:"description,omitempty"`
	Nutrition   domain.Nutrition `json:"nutrition"`
	Vegan       bool             `json:"vegan"`
	Vegetarian  bool             `json:"vegetarian"`
	GlutenFree  bool             `json:"gluten_free"`
}

// CatalogLoader handles loading and validating the consumable catalog
type CatalogLoader interface {
	Load(path string) (*CatalogConfig, error)
	Validate(config *CatalogConfig) error
	SyncToDatabase(ctx context.Context, config *CatalogConfig, repo Repository) (*CatalogSyncResult, error)
}

// CatalogSyncResult contains the result of syncing the catalog to the database
type CatalogSyncResult struct {
	ConsumablesSynced int
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
	titleCaser      cases.Caser
}

// NewCatalogLoader creates a new CatalogLoader instance
func NewCatalogLoader() CatalogLoader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(),
		titleCaser:      cases.Title(language.English),
	}
}

// Load reads and parses a catalog JSON file
func (l *catalogLoader) Load(path string) (*CatalogConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, CatalogSchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config CatalogConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}

	return &config, nil
}

// Validate checks the catalog configuration for errors the schema cannot
// express, such as duplicate names and cross-field rules.
func (l *catalogLoader) Validate(config *CatalogConfig) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, ErrMsgCatalogNil)
	}

	if len(config.Consumables) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, ErrMsgNoConsumables)
	}

	names := make(map[string]bool, len(config.Consumables))

	for i := range config.Consumables {
		entry := &config.Consumables[i]

		if err := l.validateEntry(i, entry, names); err != nil {
			return err
		}
	}

	return nil
}

func (l *catalogLoader) validateEntry(index int, entry *CatalogEntry, names map[string]bool) error {
	if entry.Name == "" {
		return fmt.Errorf(ErrFmtEntryAtIndexEmpty, ErrInvalidCatalog, index)
	}

	if names[entry.Name] {
		return fmt.Errorf("%w: '%s'", ErrDuplicateName, entry.Name)
	}
	names[entry.Name] = true

	if entry.Category == "" || !domain.IsValidCategory(entry.Category) {
		return fmt.Errorf(ErrFmtEntryBadCategory, ErrInvalidCatalog, entry.Name, entry.Category)
	}

	if !domain.IsValidRarity(entry.Rarity) {
		return fmt.Errorf(ErrFmtEntryBadRarity, ErrInvalidCatalog, entry.Name, entry.Rarity)
	}

	n := entry.Nutrition
	if n.Calories < 0 || n.ProteinG < 0 || n.CarbsG < 0 || n.FatG < 0 || n.CaffeineMg < 0 {
		return fmt.Errorf(ErrFmtEntryNegativeNutrition, ErrInvalidCatalog, entry.Name)
	}
	if n.AlcoholABV < 0 || n.AlcoholABV > 100 {
		return fmt.Errorf(ErrFmtEntryBadABV, ErrInvalidCatalog, entry.Name)
	}

	return nil
}

// SyncToDatabase upserts every catalog entry. Entries are keyed by name in
// the database, so re-running the sync refreshes attributes while keeping
// consumable IDs stable.
func (l *catalogLoader) SyncToDatabase(ctx context.Context, config *CatalogConfig, repo Repository) (*CatalogSyncResult, error) {
	log := logger.FromContext(ctx)

	result := &CatalogSyncResult{}
	for _, entry := range config.Consumables {
		c := l.toDomain(entry)

		if err := repo.Upsert(ctx, &c); err != nil {
			return nil, fmt.Errorf(ErrFmtUpsertFailed, entry.Name, err)
		}
		result.ConsumablesSynced++
	}

	log.Info(LogMsgCatalogSynced,
		"version", config.Version,
		"synced", result.ConsumablesSynced)

	return result, nil
}

// toDomain converts a catalog entry into its domain form, deriving the
// display name when the entry does not carry one.
func (l *catalogLoader) toDomain(entry CatalogEntry) domain.Consumable {
	displayName := entry.DisplayName
	if displayName == "" {
		displayName = l.titleCaser.String(entry.Name)
	}

	return domain.Consumable{
		Name:        entry.Name,
		DisplayName: displayName,
		Category:    domain.Category(entry.Category),
		Rarity:      domain.Rarity(entry.Rarity),
		Description: entry.Description,
		Nutrition:   entry.Nutrition,
		Vegan:       entry.Vegan,
		Vegetarian:  entry.Vegetarian,
		GlutenFree:  entry.GlutenFree,
	}
}
