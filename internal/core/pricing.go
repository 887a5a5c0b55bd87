package core

import (
	"strconv"
	"strings"
)

type ColorMode string

const (
	ColorModeNone          ColorMode = "NONE"
	ColorModeBlackAndWhite ColorMode = "BLACK_AND_WHITE"
	ColorModeColor         ColorMode = "COLOR"
)

// ParseColorMode maps unknown or blank input to ColorModeNone.
func ParseColorMode(s string) ColorMode {
	switch ColorMode(strings.ToUpper(strings.TrimSpace(s))) {
	case ColorModeBlackAndWhite, "BW", "BN":
		return ColorModeBlackAndWhite
	case ColorModeColor:
		return ColorModeColor
	default:
		return ColorModeNone
	}
}

// Print job prices, whole currency units.
const (
	PricePerPage          = 10
	PricePerPageBW        = 40
	PricePerPageColor     = 120
	DuplexSurchargePage   = 15
	RingBindingPrice      = 900
	SoftcoverBindingPrice = 1500
)

// PrintJob is the state of an ad-hoc print order form.
type PrintJob struct {
	PageCount        int       `json:"page_count"`
	ColorMode        ColorMode `json:"color_mode"`
	Duplex           bool      `json:"duplex"`
	RingBinding      bool      `json:"ring_binding"`
	SoftcoverBinding bool      `json:"softcover_binding"`
}

// Total prices the job. It is a pure function of the fields; a negative page
// count contributes nothing.
func (j PrintJob) Total() int {
	pages := max(j.PageCount, 0)

	total := pages * PricePerPage
	switch j.ColorMode {
	case ColorModeBlackAndWhite:
		total += pages * PricePerPageBW
	case ColorModeColor:
		total += pages * PricePerPageColor
	}
	if j.Duplex {
		total += pages * DuplexSurchargePage
	}
	if j.RingBinding {
		total += RingBindingPrice
	}
	if j.SoftcoverBinding {
		total += SoftcoverBindingPrice
	}
	return total
}

// ParsePageCount reads a form value; blank, malformed or negative input is 0.
func ParsePageCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
