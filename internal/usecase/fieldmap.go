package usecase

import (
	"strings"

	"github.com/productadvisor/backend/internal/domain"
)

// Fallback chains for direct field resolution. Feed vocabularies vary:
// identifiers show up as GTINs or MPNs, prices as sale prices, links as
// mobile links, categories under either taxonomy header.
var (
	identifierHeaders = []string{"id", "gtin", "mpn"}
	priceHeaders      = []string{"price", "sale_price"}
	linkHeaders       = []string{"link", "mobile_link"}
	categoryHeaders   = []string{"product_type", "google_product_category"}
)

// ResolveFields binds canonical product fields to literal header names.
// Each field binds to the first header in its fallback chain that actually
// appears in the feed; unmatched fields stay unbound.
func ResolveFields(headers []string) domain.FieldMap {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	pick := func(candidates ...string) string {
		for _, c := range candidates {
			if present[c] {
				return c
			}
		}
		return ""
	}

	return domain.FieldMap{
		Identifier:   pick(identifierHeaders...),
		Title:        pick("title"),
		Description:  pick("description"),
		Price:        pick(priceHeaders...),
		Link:         pick(linkHeaders...),
		Image:        pick("image_link"),
		Availability: pick("availability"),
		Category:     pick(categoryHeaders...),
		Condition:    pick("condition"),
		Color:        pick("color"),
		Size:         pick("size"),
		Gender:       pick("gender"),
		Material:     pick("material"),
	}
}

// InferFields rebinds identifier, title and description by scanning the
// header list case-insensitively: the first header containing "id" (but not
// "group"), "title" and "desc" respectively. All other bindings carry over
// from the direct resolution. Used when the literal names matched no rows.
func InferFields(headers []string, base domain.FieldMap) domain.FieldMap {
	inferred := base
	inferred.Identifier = firstMatching(headers, "id", "group")
	inferred.Title = firstMatching(headers, "title", "")
	inferred.Description = firstMatching(headers, "desc", "")
	return inferred
}

// firstMatching returns the first header whose lowercased name contains
// want and, when exclude is non-empty, does not contain exclude.
func firstMatching(headers []string, want, exclude string) string {
	for _, h := range headers {
		lower := strings.ToLower(h)
		if !strings.Contains(lower, want) {
			continue
		}
		if exclude != "" && strings.Contains(lower, exclude) {
			continue
		}
		return h
	}
	return ""
}

// ProjectRecord maps a raw row through the resolved bindings into a
// fully-defaulted Product. Unresolved bindings and missing cells become "".
func ProjectRecord(record domain.RawRecord, fields domain.FieldMap) domain.Product {
	return domain.Product{
		Identifier:   record.Value(fields.Identifier),
		Title:        record.Value(fields.Title),
		Description:  record.Value(fields.Description),
		Price:        record.Value(fields.Price),
		Link:         record.Value(fields.Link),
		Image:        record.Value(fields.Image),
		Availability: record.Value(fields.Availability),
		Category:     record.Value(fields.Category),
		Condition:    record.Value(fields.Condition),
		Color:        record.Value(fields.Color),
		Size:         record.Value(fields.Size),
		Gender:       record.Value(fields.Gender),
		Material:     record.Value(fields.Material),
	}
}
