package core

import (
	"strconv"
	"strings"
)

type ShippingOutcome int

const (
	ShippingMissing ShippingOutcome = iota
	ShippingInvalidFormat
	ShippingEligible
	ShippingIneligible
)

// Free shipping postal code range, inclusive.
const (
	FreeShippingMinCode = 1000
	FreeShippingMaxCode = 1999
)

func (o ShippingOutcome) String() string {
	switch o {
	case ShippingMissing:
		return "missing"
	case ShippingInvalidFormat:
		return "invalid_format"
	case ShippingEligible:
		return "eligible"
	case ShippingIneligible:
		return "ineligible"
	default:
		return "unknown"
	}
}

// Message is the text shown to the customer for the outcome.
func (o ShippingOutcome) Message() string {
	switch o {
	case ShippingMissing:
		return "Enter a postal code to calculate shipping."
	case ShippingInvalidFormat:
		return "The postal code must have 4 numeric digits."
	case ShippingEligible:
		return "Free shipping!"
	case ShippingIneligible:
		return "We do not ship to that address yet."
	default:
		return ""
	}
}

func (o ShippingOutcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *ShippingOutcome) UnmarshalText(b []byte) error {
	switch string(b) {
	case "missing":
		*o = ShippingMissing
	case "invalid_format":
		*o = ShippingInvalidFormat
	case "eligible":
		*o = ShippingEligible
	default:
		*o = ShippingIneligible
	}
	return nil
}

// ClassifyPostalCode applies the free shipping rule to a 4-digit postal code.
// It never fails: malformed input is an outcome, not an error.
func ClassifyPostalCode(code string) ShippingOutcome {
	code = strings.TrimSpace(code)
	if code == "" {
		return ShippingMissing
	}
	if len(code) != 4 {
		return ShippingInvalidFormat
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return ShippingInvalidFormat
		}
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return ShippingInvalidFormat
	}
	if n >= FreeShippingMinCode && n <= FreeShippingMaxCode {
		return ShippingEligible
	}
	return ShippingIneligible
}
