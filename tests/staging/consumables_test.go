//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
)

type SearchResponse struct {
	Results []struct {
		ConsumableID string `json:"consumable_id"`
		Name         string `json:"name"`
		DisplayName  string `json:"display_name"`
		Category     string `json:"category"`
		Rarity       string `json:"rarity"`
	} `json:"results"`
	Count int `json:"count"`
}

// searchConsumables queries the catalog and skips the test when the staging
// database has not been seeded
func searchConsumables(t *testing.T, query string, limit int) SearchResponse {
	t.Helper()

	path := fmt.Sprintf("/api/v1/consumables/search?q=%s&limit=%d", query, limit)
	resp, body := makeRequest(t, "GET", path, nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var result SearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	return result
}

// TestConsumableSearch tests catalog search and the category filter
func TestConsumableSearch(t *testing.T) {
	result := searchConsumables(t, "", 10)
	if result.Count == 0 {
		t.Skip("Catalog not seeded - run cmd/setup first")
	}

	if result.Count != len(result.Results) {
		t.Errorf("Count %d does not match results length %d", result.Count, len(result.Results))
	}

	// Category filter returns only that category
	resp, body := makeRequest(t, "GET", "/api/v1/consumables/search?category=drink&limit=10", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var drinks SearchResponse
	if err := json.Unmarshal(body, &drinks); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	for _, c := range drinks.Results {
		if c.Category != "drink" {
			t.Errorf("Expected only drinks, got %s (%s)", c.Category, c.Name)
		}
	}

	// Unknown category is rejected
	resp, _ = makeRequest(t, "GET", "/api/v1/consumables/search?category=potion", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown category, got %d", resp.StatusCode)
	}
}

// TestGetConsumable tests fetching a single catalog entry by ID
func TestGetConsumable(t *testing.T) {
	result := searchConsumables(t, "", 1)
	if result.Count == 0 {
		t.Skip("Catalog not seeded - run cmd/setup first")
	}

	id := result.Results[0].ConsumableID
	resp, body := makeRequest(t, "GET", "/api/v1/consumables/"+id, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var c struct {
		ConsumableID string `json:"consumable_id"`
		Rarity       string `json:"rarity"`
	}
	if err := json.Unmarshal(body, &c); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if c.ConsumableID != id {
		t.Errorf("Expected consumable %s, got %s", id, c.ConsumableID)
	}

	// Unknown ID is a 404
	resp, _ = makeRequest(t, "GET", "/api/v1/consumables/00000000-0000-0000-0000-000000000000", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404 for unknown consumable, got %d", resp.StatusCode)
	}
}
