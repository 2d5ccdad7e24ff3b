package usecase

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/productadvisor/backend/internal/domain"
)

func TestBuildSystemPrompt_RoundTrip(t *testing.T) {
	catalog := []domain.Product{
		{Identifier: "42", Title: "Essential Shirt", Price: "29.90", Color: "navy"},
		{Identifier: "43", Title: "Trail Shorts", Price: "39.90", Material: "recycled polyester"},
	}

	prompt, err := BuildSystemPrompt("Odlo", catalog)
	if err != nil {
		t.Fatalf("BuildSystemPrompt() error = %v", err)
	}

	// The embedded catalog is valid structured data: parsing it back must
	// reproduce identifier/title/price for every entry
	start := strings.Index(prompt, "[")
	if start < 0 {
		t.Fatalf("prompt carries no JSON array: %q", prompt)
	}

	var parsed []domain.Product
	if err := json.Unmarshal([]byte(prompt[start:]), &parsed); err != nil {
		t.Fatalf("embedded catalog is not valid JSON: %v", err)
	}

	if len(parsed) != len(catalog) {
		t.Fatalf("len(parsed) = %d, want %d", len(parsed), len(catalog))
	}
	for i := range catalog {
		if parsed[i].Identifier != catalog[i].Identifier {
			t.Errorf("parsed[%d].Identifier = %q, want %q", i, parsed[i].Identifier, catalog[i].Identifier)
		}
		if parsed[i].Title != catalog[i].Title {
			t.Errorf("parsed[%d].Title = %q, want %q", i, parsed[i].Title, catalog[i].Title)
		}
		if parsed[i].Price != catalog[i].Price {
			t.Errorf("parsed[%d].Price = %q, want %q", i, parsed[i].Price, catalog[i].Price)
		}
	}
}

func TestBuildSystemPrompt_StatesOperatingRules(t *testing.T) {
	prompt, err := BuildSystemPrompt("Odlo", []domain.Product{{Identifier: "1", Title: "Shirt"}})
	if err != nil {
		t.Fatalf("BuildSystemPrompt() error = %v", err)
	}

	for _, rule := range []string{
		"ONLY recommend products from the catalog",
		"NEVER mention competitors",
		"product name, ID, and key features",
		"sustainability",
		"first 1 products only",
	} {
		if !strings.Contains(prompt, rule) {
			t.Errorf("prompt missing %q", rule)
		}
	}
}

func TestBuildSystemPrompt_AllFieldsSerialized(t *testing.T) {
	catalog := []domain.Product{{Identifier: "1", Title: "Shirt"}}

	prompt, err := BuildSystemPrompt("Odlo", catalog)
	if err != nil {
		t.Fatalf("BuildSystemPrompt() error = %v", err)
	}

	// Every canonical field is present even when empty, so the model never
	// sees a record with missing keys
	for _, key := range []string{
		`"id"`, `"title"`, `"description"`, `"price"`, `"link"`,
		`"image_link"`, `"availability"`, `"category"`, `"condition"`,
		`"color"`, `"size"`, `"gender"`, `"material"`,
	} {
		if !strings.Contains(prompt, key) {
			t.Errorf("prompt missing serialized field %s", key)
		}
	}
}
