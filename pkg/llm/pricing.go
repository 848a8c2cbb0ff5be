package llm

import (
	"github.com/deyna256/codeforces-contest-scraper/models"
)

// PricingSource looks up per-token pricing for a model. Absent pricing is
// not an error; cost metrics are simply skipped.
type PricingSource interface {
	GetPricing(model string) (models.ModelPricing, bool)
}

// StaticPricing is a fixed pricing table, typically loaded from the
// benchmark YAML config.
type StaticPricing map[string]models.ModelPricing

func (p StaticPricing) GetPricing(model string) (models.ModelPricing, bool) {
	pricing, ok := p[model]
	return pricing, ok
}
