package domain

import "math"

type Tier string

const (
	TierFree   Tier = "FREE"
	TierBronze Tier = "BRONZE"
	TierSilver Tier = "SILVER"
	TierGold   Tier = "GOLD"
)

// TierBenefit describes what a subscription level buys: a purchase discount
// and a percentage bonus applied on top of every point award.
type TierBenefit struct {
	Name            string  `json:"name"`
	PriceMonthly    float64 `json:"price"`
	DiscountPercent int     `json:"discount"`
	BonusPercent    int     `json:"bonusPoints"`
}

var TierTable = map[Tier]TierBenefit{
	TierFree:   {Name: "Gratuito", PriceMonthly: 0, DiscountPercent: 0, BonusPercent: 0},
	TierBronze: {Name: "Cliente Bronze", PriceMonthly: 9.99, DiscountPercent: 2, BonusPercent: 10},
	TierSilver: {Name: "Cliente Prata", PriceMonthly: 19.99, DiscountPercent: 4, BonusPercent: 20},
	TierGold:   {Name: "Cliente Ouro", PriceMonthly: 39.99, DiscountPercent: 7, BonusPercent: 30},
}

// TierOrder lists tiers from cheapest to most expensive, for stable listings.
var TierOrder = []Tier{TierFree, TierBronze, TierSilver, TierGold}

func (t Tier) Valid() bool {
	_, ok := TierTable[t]
	return ok
}

// ApplyBonus returns the point delta for a base award under this tier:
// base grown by the tier's bonus percentage, rounded to nearest.
func (t Tier) ApplyBonus(base int) int {
	b := TierTable[t]
	return int(math.Round(float64(base) * (1 + float64(b.BonusPercent)/100)))
}
