package comparison

import (
	"testing"
	"time"

	"solar_marketplace/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quote(id string, price float64, warranty string, created time.Time) entities.VendorQuotation {
	return entities.VendorQuotation{ID: id, Price: price, WarrantyPeriod: warranty, CreatedAt: created}
}

func TestParseWarrantyYears(t *testing.T) {
	cases := map[string]int{
		"10 years":            10,
		"5-year":              5,
		"lifetime":            0,
		"":                    0,
		"up to 25 years, 2nd": 25,
		"12":                  12,
		"99999999999999999999999 years": 0,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseWarrantyYears(in), "input %q", in)
	}
}

func TestRank_TwoQuotations(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	input := []entities.VendorQuotation{
		quote("a", 12500, "10 years", now),
		quote("b", 11200, "8 years", now.Add(time.Minute)),
	}

	res, err := Rank(input)
	require.NoError(t, err)

	assert.Equal(t, "b", res.LowestPrice.Quotation.ID)
	assert.Equal(t, "a", res.LongestWarranty.Quotation.ID)
	assert.Equal(t, "b", res.Recommended.Quotation.ID)
	assert.InDelta(t, 11850, res.AveragePrice, 1e-9)

	require.Len(t, res.ByPrice, 2)
	assert.Equal(t, "b", res.ByPrice[0].Quotation.ID)
	assert.Equal(t, "a", res.ByPrice[1].Quotation.ID)

	a := res.ByPrice[1]
	assert.InDelta(t, 0, a.PriceScore, 1e-9)
	assert.InDelta(t, 100, a.WarrantyScore, 1e-9)
	assert.InDelta(t, 30, a.OverallScore, 1e-9)

	b := res.ByPrice[0]
	assert.InDelta(t, 10.4, b.PriceScore, 1e-9)
	assert.InDelta(t, 80, b.WarrantyScore, 1e-9)
	assert.InDelta(t, 31.28, b.OverallScore, 1e-9)

	// input is left untouched and a second run is identical
	assert.Equal(t, "a", input[0].ID)
	again, err := Rank(input)
	require.NoError(t, err)
	assert.Equal(t, res, again)
}

func TestRank_Empty(t *testing.T) {
	_, err := Rank(nil)
	assert.ErrorIs(t, err, ErrNoQuotations)
}

func TestRank_SingleQuotation(t *testing.T) {
	res, err := Rank([]entities.VendorQuotation{quote("only", 9000, "12 years", time.Now())})
	require.NoError(t, err)
	assert.Equal(t, "only", res.Recommended.Quotation.ID)
	assert.InDelta(t, 0, res.Recommended.PriceScore, 1e-9)
	assert.InDelta(t, 100, res.Recommended.WarrantyScore, 1e-9)
	assert.InDelta(t, 30, res.Recommended.OverallScore, 1e-9)
	assert.InDelta(t, 9000, res.AveragePrice, 1e-9)
}

func TestRank_NoWarrantyDigits(t *testing.T) {
	res, err := Rank([]entities.VendorQuotation{
		quote("a", 100, "lifetime", time.Now()),
		quote("b", 200, "none", time.Now()),
	})
	require.NoError(t, err)
	for _, s := range res.Ranked {
		assert.InDelta(t, 0, s.WarrantyScore, 1e-9)
	}
	assert.Equal(t, "a", res.Recommended.Quotation.ID)
}

func TestRank_IdenticalPricesDecidedByWarranty(t *testing.T) {
	now := time.Now()
	res, err := Rank([]entities.VendorQuotation{
		quote("short", 5000, "5 years", now),
		quote("long", 5000, "20 years", now),
	})
	require.NoError(t, err)
	for _, s := range res.Ranked {
		assert.InDelta(t, 0, s.PriceScore, 1e-9)
	}
	assert.Equal(t, "long", res.Recommended.Quotation.ID)
}

func TestRank_TieBreak(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	// identical price and warranty: earliest created wins, then id
	res, err := Rank([]entities.VendorQuotation{
		quote("late", 7000, "10 years", now.Add(time.Hour)),
		quote("z-early", 7000, "10 years", now),
		quote("a-early", 7000, "10 years", now),
	})
	require.NoError(t, err)
	assert.Equal(t, "a-early", res.Recommended.Quotation.ID)
	assert.Equal(t, "a-early", res.LowestPrice.Quotation.ID)
	assert.Equal(t, "a-early", res.LongestWarranty.Quotation.ID)
	assert.Equal(t, []string{"a-early", "z-early", "late"}, ids(res.Ranked))
}

func ids(scores []Score) []string {
	out := make([]string, len(scores))
	for i, s := range scores {
		out[i] = s.Quotation.ID
	}
	return out
}
