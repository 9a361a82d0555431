package tax

// Line is one charge on an invoice.
type Line struct {
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Tax         Breakdown `json:"tax"`
}

// Invoice totals a guest's stay.
type Invoice struct {
	Number   string  `json:"number"`
	Lines    []Line  `json:"lines"`
	Subtotal float64 `json:"subtotal"`
	CGST     float64 `json:"cgst"`
	SGST     float64 `json:"sgst"`
	TaxTotal float64 `json:"tax_total"`
	Total    float64 `json:"total"`
}

// AddRoomNights adds a room charge taxed at the slab for the nightly tariff.
func (c *Calculator) AddRoomNights(inv *Invoice, description string, nights int, tariff float64) {
	amount := float64(nights) * tariff
	inv.add(Line{
		Description: description,
		Quantity:    nights,
		UnitPrice:   tariff,
		Tax:         Compute(amount, c.RoomRate(tariff)),
	})
}

// AddFood adds a food court charge taxed at the food rate.
func (c *Calculator) AddFood(inv *Invoice, description string, amount float64) {
	inv.add(Line{
		Description: description,
		Quantity:    1,
		UnitPrice:   amount,
		Tax:         Compute(amount, c.foodRate),
	})
}

func (inv *Invoice) add(l Line) {
	inv.Lines = append(inv.Lines, l)
	inv.Subtotal = Round2(inv.Subtotal + l.Tax.Taxable)
	inv.CGST = Round2(inv.CGST + l.Tax.CGST)
	inv.SGST = Round2(inv.SGST + l.Tax.SGST)
	inv.TaxTotal = Round2(inv.CGST + inv.SGST)
	inv.Total = Round2(inv.Subtotal + inv.TaxTotal)
}
