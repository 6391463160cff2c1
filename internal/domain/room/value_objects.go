package room

import (
	"math"
	"strings"
)

// maxPriceCents keeps cents conversions inside the exactly representable float64 range.
const maxPriceCents = 1 << 53

type Money struct {
	cents int64
}

// NewMoneyFromDecimal converts a decimal amount (e.g. 12.5) into cents.
func NewMoneyFromDecimal(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, ErrPriceOutOfRange
	}
	if amount < 0 {
		return Money{}, ErrNegativePrice
	}
	scaled := amount * 100
	cents := math.Round(scaled)
	if cents > maxPriceCents {
		return Money{}, ErrPriceOutOfRange
	}
	if math.Abs(scaled-cents) > 1e-6 {
		return Money{}, ErrPriceTooPrecise
	}
	return Money{cents: int64(cents)}, nil
}

func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Decimal() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

type Amenities struct {
	items []string
}

// NewAmenities trims entries and drops duplicates, keeping the first occurrence.
// An empty list is allowed; a blank entry is not.
func NewAmenities(items []string) (Amenities, error) {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		t := strings.TrimSpace(item)
		if t == "" {
			return Amenities{}, ErrEmptyAmenity
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return Amenities{items: out}, nil
}

// Items returns a copy.
func (a Amenities) Items() []string {
	out := make([]string, len(a.items))
	copy(out, a.items)
	return out
}

func (a Amenities) Len() int {
	return len(a.items)
}
