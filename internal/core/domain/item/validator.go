package item

import "itemservice/internal/platform/validation"

const (
	CodeRequired      = "required"
	CodeRange         = "range"
	CodeMax           = "max"
	CodeTotalPriceMin = "totalPriceMin"
)

type Rules struct {
	PriceMin      int
	PriceMax      int
	QuantityMax   int
	TotalPriceMin int
}

func DefaultRules() Rules {
	return Rules{
		PriceMin:      1000,
		PriceMax:      1000000,
		QuantityMax:   9999,
		TotalPriceMin: 10000,
	}
}

type Validator struct {
	rules Rules
}

var _ validation.Validator[*Item] = (*Validator)(nil)

func NewValidator(rules Rules) *Validator {
	return &Validator{rules: rules}
}

func (v *Validator) Rules() Rules {
	return v.rules
}

// Validate checks the field rules independently and then the total price
// rule, which only runs when both price and quantity are present.
func (v *Validator) Validate(target *Item, violations *validation.Violations) {
	violations.RejectIfEmptyOrWhitespace(FieldName, target.Name, CodeRequired)

	if target.Price == nil || *target.Price < v.rules.PriceMin || *target.Price > v.rules.PriceMax {
		violations.RejectValue(FieldPrice, target.Price, CodeRange, v.rules.PriceMin, v.rules.PriceMax)
	}

	if target.Quantity == nil || *target.Quantity > v.rules.QuantityMax {
		violations.RejectValue(FieldQuantity, target.Quantity, CodeMax, v.rules.QuantityMax)
	}

	if total, ok := target.TotalPrice(); ok && total < v.rules.TotalPriceMin {
		violations.Reject(CodeTotalPriceMin, v.rules.TotalPriceMin, total)
	}
}
