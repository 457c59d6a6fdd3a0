package catalog

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrSizeRequired  = errors.New("size selection required")
	ErrColorRequired = errors.New("color selection required")
)

const (
	fragranceCategory = "Fragrances"
	smallBottleSize   = "50ml"
	smallBottleRatio  = 0.65
)

// colorImageIndex maps a color name to a position in the product gallery.
var colorImageIndex = map[string]int{
	"Black":  0,
	"White":  1,
	"Gray":   1,
	"Silver": 0,
	"Gold":   0,
}

type Variant struct {
	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

// Resolved carries the display image and unit price frozen for a cart line.
type Resolved struct {
	Image string  `json:"image"`
	Price float64 `json:"price"`
}

func ImageIndex(p Product, color string) int {
	idx, ok := colorImageIndex[color]
	if !ok {
		return 0
	}
	if idx >= len(p.ImageList()) {
		return 0
	}
	return idx
}

func ImageFor(p Product, color string) string {
	return p.ImageList()[ImageIndex(p, color)]
}

// EffectivePrice is size-dependent only for fragrances: the small bottle
// sells at 65% of base, rounded to the nearest currency unit.
func EffectivePrice(p Product, size string) float64 {
	if p.Category == fragranceCategory && size == smallBottleSize {
		return math.Round(p.Price * smallBottleRatio)
	}
	return p.Price
}

// ValidateSelection rejects an add when the catalog entry declares variant
// options and the corresponding selection is missing.
func ValidateSelection(p Product, v Variant) error {
	if len(p.Sizes) > 0 && v.Size == "" {
		return fmt.Errorf("%s: %w", p.Name, ErrSizeRequired)
	}
	if len(p.Colors) > 0 && v.Color == "" {
		return fmt.Errorf("%s: %w", p.Name, ErrColorRequired)
	}
	return nil
}

// Resolve is a pure function of (product, selection); no state is touched.
func Resolve(p Product, v Variant) (Resolved, error) {
	if err := ValidateSelection(p, v); err != nil {
		return Resolved{}, err
	}
	return Resolved{
		Image: ImageFor(p, v.Color),
		Price: EffectivePrice(p, v.Size),
	}, nil
}

// DefaultVariant picks the first declared option for each required axis; used
// by bulk add-to-cart flows where the user made no explicit selection.
func DefaultVariant(p Product) Variant {
	var v Variant
	if len(p.Sizes) > 0 {
		v.Size = p.Sizes[0]
	}
	if len(p.Colors) > 0 {
		v.Color = p.Colors[0]
	}
	return v
}
