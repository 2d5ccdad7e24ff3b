package domain

// RawRecord is a single parsed feed row keyed by the literal header names
type RawRecord map[string]string

// Value returns the cell bound to the given header name, or "" when the
// binding is unresolved or the column is absent from the row.
func (r RawRecord) Value(header string) string {
	if header == "" {
		return ""
	}
	return r[header]
}

// FieldMap binds each canonical product field to the literal header name it
// should be read from. An empty binding means the field did not resolve.
// Identifier and Title must both resolve or the feed is rejected.
type FieldMap struct {
	Identifier   string
	Title        string
	Description  string
	Price        string
	Link         string
	Image        string
	Availability string
	Category     string
	Condition    string
	Color        string
	Size         string
	Gender       string
	Material     string
}

// Product is a fully-defaulted catalog record. Every field is always present;
// unresolved or missing source cells become the empty string so consumers
// never branch on field presence.
type Product struct {
	Identifier   string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Price        string `json:"price"`
	Link         string `json:"link"`
	Image        string `json:"image_link"`
	Availability string `json:"availability"`
	Category     string `json:"category"`
	Condition    string `json:"condition"`
	Color        string `json:"color"`
	Size         string `json:"size"`
	Gender       string `json:"gender"`
	Material     string `json:"material"`
}

// CatalogState describes where the session catalog is in its lifecycle
type CatalogState string

const (
	CatalogIdle    CatalogState = "idle"
	CatalogLoading CatalogState = "loading"
	CatalogReady   CatalogState = "ready"
	CatalogError   CatalogState = "error"
)

// CatalogStatus is the presentation-facing catalog indicator
type CatalogStatus struct {
	State   CatalogState `json:"state"`
	Count   int          `json:"count"`
	Message string       `json:"message,omitempty"`
}
