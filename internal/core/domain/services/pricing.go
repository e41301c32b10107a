package services

import (
	"math"

	"marketplace/internal/pkg/errs"
)

const (
	// MinDiscountPercent is the smallest percent discount a vendor may grant.
	MinDiscountPercent = 0.1
	// MaxDiscountPercent is the largest percent discount a vendor may grant.
	MaxDiscountPercent = 100.0

	// materialShareTenths and deliveryShareTenths define how a discounted
	// total is reallocated between the two price components: 70% material,
	// 30% delivery. Both parts are floored independently, so they may sum to
	// one unit less than the discounted total; the slack is accepted and
	// falls in the client's favor. Kept as integer tenths so the split never
	// picks up float representation noise.
	materialShareTenths = 7
	deliveryShareTenths = 3
	shareDenominator    = 10

	// floatNoiseEpsilon absorbs binary representation noise in products of
	// exact decimal inputs, so 150 * 3.2 rounds up to 480, not 481.
	floatNoiseEpsilon = 1e-9
)

// ceilMinorUnits rounds a monetary amount up to a whole minor unit.
func ceilMinorUnits(v float64) int64 {
	return int64(math.Ceil(v - floatNoiseEpsilon))
}

// DiscountedPrice is the result of applying a percent discount to an offer.
type DiscountedPrice struct {
	// MaterialPrice is the reallocated material component, in minor units.
	MaterialPrice int64
	// DeliveryPrice is the reallocated delivery component, in minor units.
	DeliveryPrice int64
	// DiscountAmount is the total reduction, in minor units.
	DiscountAmount int64
	// NewTotal is the discounted total, in minor units.
	NewTotal int64
}

// Pricer is a stateless domain service for quote and discount arithmetic.
// All monetary values are integral minor currency units; intermediate
// roundings are fixed so computed amounts always match stored ones.
//
// Example:
//
//	pricer := services.NewPricer()
//	material := pricer.SelfMaterialPrice(250, 40)
//	delivery := pricer.DeliveryPrice(150, 3.2)
//	total := material + delivery
type Pricer struct{}

// NewPricer creates a new Pricer instance.
func NewPricer() Pricer {
	return Pricer{}
}

// SelfMaterialPrice returns the vendor's own material quote:
// unit price times quantity.
func (p Pricer) SelfMaterialPrice(unitPrice int64, quantity int) int64 {
	return unitPrice * int64(quantity)
}

// DeliveryPrice returns the vendor's delivery quote: the per-km unit cost
// times the route distance, rounded up to a whole minor unit.
func (p Pricer) DeliveryPrice(perKmUnitCost float64, distanceKm float64) int64 {
	return ceilMinorUnits(perKmUnitCost * distanceKm)
}

// TotalSelfPrice returns the vendor's complete self quote:
// material plus delivery.
func (p Pricer) TotalSelfPrice(unitPrice int64, quantity int, perKmUnitCost, distanceKm float64) int64 {
	return p.SelfMaterialPrice(unitPrice, quantity) + p.DeliveryPrice(perKmUnitCost, distanceKm)
}

// ValidatePercentDiscount checks that percent lies in
// [MinDiscountPercent, MaxDiscountPercent].
func (p Pricer) ValidatePercentDiscount(percent float64) error {
	if percent < MinDiscountPercent || percent > MaxDiscountPercent {
		return errs.NewValueIsOutOfRangeError(
			"discount percent", percent, MinDiscountPercent, MaxDiscountPercent)
	}
	return nil
}

// AbsoluteDiscountBounds returns the allowed range for an absolute discount
// on the given total: between 0.1% and 50% of it, each bound rounded up.
func (p Pricer) AbsoluteDiscountBounds(total int64) (int64, int64) {
	minDiscount := ceilMinorUnits(float64(total) * 0.001)
	maxDiscount := ceilMinorUnits(float64(total) * 0.5)
	return minDiscount, maxDiscount
}

// ValidateAbsoluteDiscount checks that an absolute discount lies within the
// bounds derived from the current total.
func (p Pricer) ValidateAbsoluteDiscount(materialPrice, deliveryPrice, discount int64) error {
	minDiscount, maxDiscount := p.AbsoluteDiscountBounds(materialPrice + deliveryPrice)
	if discount < minDiscount || discount > maxDiscount {
		return errs.NewValueIsOutOfRangeError("absolute discount", discount, minDiscount, maxDiscount)
	}
	return nil
}

// ApplyPercentDiscount reduces the offer total by percent and reallocates the
// discounted total as 70% material / 30% delivery, flooring each part
// independently. The discount amount itself is rounded up.
//
// The reallocated parts may sum to one minor unit less than NewTotal; this
// rounding slack is part of the pricing contract.
func (p Pricer) ApplyPercentDiscount(materialPrice, deliveryPrice int64, percent float64) (DiscountedPrice, error) {
	if err := p.ValidatePercentDiscount(percent); err != nil {
		return DiscountedPrice{}, err
	}

	total := materialPrice + deliveryPrice
	discountAmount := ceilMinorUnits(float64(total) * percent / 100)
	newTotal := total - discountAmount

	// Integer division floors for non-negative totals.
	return DiscountedPrice{
		MaterialPrice:  newTotal * materialShareTenths / shareDenominator,
		DeliveryPrice:  newTotal * deliveryShareTenths / shareDenominator,
		DiscountAmount: discountAmount,
		NewTotal:       newTotal,
	}, nil
}

// PercentFromAbsoluteDiscount converts an absolute discount into the percent
// of the current total that remains after it, rounded to two decimal places.
func (p Pricer) PercentFromAbsoluteDiscount(materialPrice, deliveryPrice, discount int64) (float64, error) {
	if err := p.ValidateAbsoluteDiscount(materialPrice, deliveryPrice, discount); err != nil {
		return 0, err
	}

	total := materialPrice + deliveryPrice
	percent := (float64(total) - float64(discount)) / float64(total) * 100
	return math.Round(percent*100) / 100, nil
}
