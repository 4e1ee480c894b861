package homeinvest

import (
	"fmt"
	"math"
)

// Percent is a rate expressed in percent points (7.0 means 7%).
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// IsNaN reports whether the rate is undefined (e.g. a non-convergent IRR).
func (p Percent) IsNaN() bool { return math.IsNaN(float64(p)) }

func (p Percent) String() string {
	if p.IsNaN() {
		return "undefined"
	}
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	if p.IsNaN() {
		return "undefined"
	}
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// Rate returns the percent as a fractional rate (7.0% -> 0.07).
func (p Percent) Rate() float64 { return float64(p) / 100 }
