package preview

import "strings"

// DefaultMaxIfPasses bounds if-block resolution on malformed input.
const DefaultMaxIfPasses = 50

// Capture is a named capture whose value is known ahead of time. Its
// definition block is dropped and every {{name}} reference is replaced by
// Value.
type Capture struct {
	Name  string
	Value string
}

// Policy is the fixed rule table deciding which branch of a conditional
// survives. There is no expression evaluation: a condition containing any
// FalseConditions substring removes the whole block, every other condition
// keeps its first branch.
type Policy struct {
	// FalseConditions are condition substrings known not to hold for the
	// sample order.
	FalseConditions []string

	// SaleCondition identifies the "line item is discounted" comparison.
	// It keeps the first (sale price) branch, same as the default outcome,
	// and is matched separately so the decision is explicit.
	SaleCondition string

	MaxIfPasses int

	Captures []Capture
}

// DefaultPolicy returns the rules used for storefront order emails.
func DefaultPolicy() Policy {
	return Policy{
		FalseConditions: []string{
			"original_item.product.metafields.custom.dhm_promos_risk_free_trial",
			"original_item.product.metafields.custom.dhm_promos_warranty",
			"custom.dhm_general_hcpcs_code",
			"original_item.selling_plan_allocation",
			"original_item.refunded_quantity",
			"line_item.variant.unit_price_measurement",
			"shipping_address.company",
			"shipping_address.address2",
			"shipping_address.country != shop.country",
			"billing_address.company",
			"billing_address.address2",
			"billing_address.country != shop.country",
			`p.first contains "preview"`,
			`p.last contains "/uploads/"`,
			`p.last contains "//uploadery.s3"`,
			"original_item.variant.compare_at_price != blank",
		},
		SaleCondition: "original_item.original_line_price != original_item.final_line_price",
		MaxIfPasses:   DefaultMaxIfPasses,
		Captures: []Capture{
			{Name: "default_utms", Value: "utm_campaign=test-email&utm_medium=email&utm_source=OrderlyEmails"},
			{Name: "question_mark", Value: "?"},
		},
	}
}

// outcome is the decision taken for one if-block.
type outcome int

const (
	outcomeDrop outcome = iota
	outcomeSale
	outcomeFirstBranch
)

func (p Policy) decide(condition string) outcome {
	for _, fc := range p.FalseConditions {
		if fc != "" && strings.Contains(condition, fc) {
			return outcomeDrop
		}
	}
	if p.SaleCondition != "" && strings.Contains(condition, p.SaleCondition) {
		return outcomeSale
	}
	return outcomeFirstBranch
}
