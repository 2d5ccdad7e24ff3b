package usecase

import (
	"testing"

	"github.com/productadvisor/backend/internal/domain"
)

func TestResolveFields_LiteralNames(t *testing.T) {
	headers := []string{
		"id", "title", "description", "price", "link", "image_link",
		"availability", "product_type", "condition", "color", "size",
		"gender", "material",
	}

	fields := ResolveFields(headers)

	if fields.Identifier != "id" {
		t.Errorf("Identifier = %q, want id", fields.Identifier)
	}
	if fields.Title != "title" {
		t.Errorf("Title = %q, want title", fields.Title)
	}
	if fields.Price != "price" {
		t.Errorf("Price = %q, want price", fields.Price)
	}
	if fields.Category != "product_type" {
		t.Errorf("Category = %q, want product_type", fields.Category)
	}
	if fields.Material != "material" {
		t.Errorf("Material = %q, want material", fields.Material)
	}
}

func TestResolveFields_Fallbacks(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		check   func(domain.FieldMap) (got, want string)
	}{
		{
			name:    "identifier falls back to gtin",
			headers: []string{"gtin", "title"},
			check:   func(f domain.FieldMap) (string, string) { return f.Identifier, "gtin" },
		},
		{
			name:    "identifier falls back to mpn after gtin",
			headers: []string{"mpn", "title"},
			check:   func(f domain.FieldMap) (string, string) { return f.Identifier, "mpn" },
		},
		{
			name:    "id wins over gtin",
			headers: []string{"gtin", "id", "title"},
			check:   func(f domain.FieldMap) (string, string) { return f.Identifier, "id" },
		},
		{
			name:    "price falls back to sale_price",
			headers: []string{"id", "title", "sale_price"},
			check:   func(f domain.FieldMap) (string, string) { return f.Price, "sale_price" },
		},
		{
			name:    "link falls back to mobile_link",
			headers: []string{"id", "title", "mobile_link"},
			check:   func(f domain.FieldMap) (string, string) { return f.Link, "mobile_link" },
		},
		{
			name:    "category falls back to google_product_category",
			headers: []string{"id", "title", "google_product_category"},
			check:   func(f domain.FieldMap) (string, string) { return f.Category, "google_product_category" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, want := tt.check(ResolveFields(tt.headers))
			if got != want {
				t.Errorf("got %q, want %q", got, want)
			}
		})
	}
}

func TestResolveFields_UnresolvedStayEmpty(t *testing.T) {
	fields := ResolveFields([]string{"sku", "name"})

	if fields.Identifier != "" {
		t.Errorf("Identifier = %q, want empty", fields.Identifier)
	}
	if fields.Title != "" {
		t.Errorf("Title = %q, want empty", fields.Title)
	}
}

func TestInferFields(t *testing.T) {
	headers := []string{"Item Group ID", "product_id", "Item Title", "Long Desc"}

	fields := InferFields(headers, ResolveFields(headers))

	// "Item Group ID" contains "id" but also "group", so it must be skipped
	if fields.Identifier != "product_id" {
		t.Errorf("Identifier = %q, want product_id", fields.Identifier)
	}
	if fields.Title != "Item Title" {
		t.Errorf("Title = %q, want Item Title", fields.Title)
	}
	if fields.Description != "Long Desc" {
		t.Errorf("Description = %q, want Long Desc", fields.Description)
	}
}

func TestInferFields_FirstMatchWins(t *testing.T) {
	headers := []string{"product_id", "variant_id", "Title A", "Title B"}

	fields := InferFields(headers, domain.FieldMap{})

	if fields.Identifier != "product_id" {
		t.Errorf("Identifier = %q, want product_id", fields.Identifier)
	}
	if fields.Title != "Title A" {
		t.Errorf("Title = %q, want Title A", fields.Title)
	}
}

func TestInferFields_KeepsOtherBindings(t *testing.T) {
	base := domain.FieldMap{Price: "price", Color: "color"}

	fields := InferFields([]string{"product_id", "item title"}, base)

	if fields.Price != "price" {
		t.Errorf("Price = %q, want price (carried over)", fields.Price)
	}
	if fields.Color != "color" {
		t.Errorf("Color = %q, want color (carried over)", fields.Color)
	}
}

func TestProjectRecord_DefaultsToEmptyString(t *testing.T) {
	record := domain.RawRecord{"id": "42", "title": "Essential Shirt"}
	fields := domain.FieldMap{Identifier: "id", Title: "title", Price: "price"}

	product := ProjectRecord(record, fields)

	if product.Identifier != "42" {
		t.Errorf("Identifier = %q, want 42", product.Identifier)
	}
	if product.Title != "Essential Shirt" {
		t.Errorf("Title = %q, want Essential Shirt", product.Title)
	}
	// Price binding exists but the cell is missing; unbound fields likewise
	if product.Price != "" {
		t.Errorf("Price = %q, want empty", product.Price)
	}
	if product.Description != "" {
		t.Errorf("Description = %q, want empty", product.Description)
	}
	if product.Material != "" {
		t.Errorf("Material = %q, want empty", product.Material)
	}
}
