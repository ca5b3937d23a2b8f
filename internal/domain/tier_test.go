package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyBonus(t *testing.T) {
	// FREE has no bonus, BRONZE +10%, SILVER +20%, GOLD +30%.
	require.Equal(t, 50, TierFree.ApplyBonus(50))
	require.Equal(t, 55, TierBronze.ApplyBonus(50))
	require.Equal(t, 60, TierSilver.ApplyBonus(50))
	require.Equal(t, 65, TierGold.ApplyBonus(50))
}

func TestApplyBonusRoundsToNearest(t *testing.T) {
	// 25 * 1.1 = 27.5 -> 28 (round half up via math.Round)
	require.Equal(t, 28, TierBronze.ApplyBonus(25))
	// 33 * 1.1 = 36.3 -> 36
	require.Equal(t, 36, TierBronze.ApplyBonus(33))
}

func TestTierValid(t *testing.T) {
	for _, tier := range TierOrder {
		require.True(t, tier.Valid())
	}
	require.False(t, Tier("PLATINUM").Valid())
	require.False(t, Tier("").Valid())
}

func TestFindReward(t *testing.T) {
	r := FindReward(500)
	require.NotNil(t, r)
	require.Equal(t, "R$50 de Desconto", r.Title)
	require.Nil(t, FindReward(123))
}
