package tax

import (
	"math"
	"sort"

	"hotel-frontoffice-backend/config"
)

// Calculator applies GST slabs to room tariffs and flat rates to food and other charges.
type Calculator struct {
	brackets []config.TaxBracket
	foodRate float64
}

// NewCalculator builds a Calculator from configured slabs. Open-ended slabs (UpTo == 0) sort last.
func NewCalculator(cfg config.TaxConfig) *Calculator {
	brackets := append([]config.TaxBracket(nil), cfg.RoomBrackets...)
	if len(brackets) == 0 {
		brackets = config.DefaultRoomBrackets()
	}
	sort.SliceStable(brackets, func(i, j int) bool {
		a, b := brackets[i].UpTo, brackets[j].UpTo
		if a == 0 {
			return false
		}
		if b == 0 {
			return true
		}
		return a < b
	})
	return &Calculator{brackets: brackets, foodRate: cfg.FoodRate}
}

// RoomRate returns the GST percentage for a nightly tariff.
func (c *Calculator) RoomRate(tariff float64) float64 {
	for _, b := range c.brackets {
		if b.UpTo == 0 || tariff <= b.UpTo {
			return b.Rate
		}
	}
	// Every slab is bounded and the tariff is above all of them.
	return c.brackets[len(c.brackets)-1].Rate
}

// FoodRate returns the GST percentage for food court sales.
func (c *Calculator) FoodRate() float64 {
	return c.foodRate
}

// Breakdown is the tax on a single taxable amount.
type Breakdown struct {
	Taxable float64 `json:"taxable"`
	Rate    float64 `json:"rate"`
	CGST    float64 `json:"cgst"`
	SGST    float64 `json:"sgst"`
	Tax     float64 `json:"tax"`
	Total   float64 `json:"total"`
}

// Compute splits the tax on amount at rate percent equally into CGST and SGST.
func Compute(amount, rate float64) Breakdown {
	half := Round2(amount * rate / 200)
	tax := Round2(half * 2)
	return Breakdown{
		Taxable: Round2(amount),
		Rate:    rate,
		CGST:    half,
		SGST:    half,
		Tax:     tax,
		Total:   Round2(amount + tax),
	}
}

// Round2 rounds to two decimals, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
