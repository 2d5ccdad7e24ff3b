package usecase

import (
	"encoding/json"
	"fmt"

	"github.com/productadvisor/backend/internal/domain"
)

// promptTemplate states the advisor's operating rules. The catalog is
// embedded as a JSON array so the model can quote identifiers and prices
// exactly as they appear in the feed.
const promptTemplate = `You are %[1]s's product recommendation assistant. Your job is to help customers find the perfect %[1]s products based on their needs.

GUIDELINES:
1. ONLY recommend products from the catalog provided below.
2. If a customer asks for something not in the catalog, suggest the closest alternative.
3. NEVER mention competitors or compare to other brands.
4. Always highlight %[1]s's unique features like fabric technology, sustainability aspects, and performance benefits.
5. Format your responses in a conversational, helpful manner.
6. When recommending products, clearly state the product name, ID, and key features.

Here's the available product catalog (first %[2]d products only):
%[3]s`

// BuildSystemPrompt assembles the instruction block for one dispatch: the
// fixed operating rules followed by the already-capped catalog serialized
// as structured data.
func BuildSystemPrompt(brand string, catalog []domain.Product) (string, error) {
	serialized, err := json.Marshal(catalog)
	if err != nil {
		return "", fmt.Errorf("failed to serialize catalog: %w", err)
	}
	return fmt.Sprintf(promptTemplate, brand, len(catalog), serialized), nil
}
