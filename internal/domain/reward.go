package domain

// Reward is a catalog item a client can redeem points for.
type Reward struct {
	PointsRequired int    `json:"pointsRequired"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Icon           string `json:"icon"`
}

var RewardCatalog = []Reward{
	{PointsRequired: 100, Title: "Película de Brinde", Description: "Proteja seu celular", Icon: "smartphone"},
	{PointsRequired: 200, Title: "Cabo Celular", Description: "Carregamento rápido", Icon: "cable"},
	{PointsRequired: 300, Title: "Carregador", Description: "Fonte de energia", Icon: "zap"},
	{PointsRequired: 400, Title: "Fone Bluetooth", Description: "Música sem fios", Icon: "headphones"},
	{PointsRequired: 500, Title: "R$50 de Desconto", Description: "Na sua compra atual ou próxima", Icon: "percent"},
}

// FindReward returns the catalog entry with the given cost, or nil.
func FindReward(pointsRequired int) *Reward {
	for i := range RewardCatalog {
		if RewardCatalog[i].PointsRequired == pointsRequired {
			return &RewardCatalog[i]
		}
	}
	return nil
}
