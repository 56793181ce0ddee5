// Package comparison ranks the vendor quotations of one request by price and
// warranty. Everything here is a pure function of its input.
package comparison

import (
	"errors"
	"sort"
	"strconv"

	"solar_marketplace/internal/domain/entities"
)

// Scoring weights. Price dominates warranty.
const (
	PriceWeight    = 0.7
	WarrantyWeight = 0.3
)

var ErrNoQuotations = errors.New("no quotations to compare")

// Score is one quotation with its normalized scores.
type Score struct {
	Quotation     entities.VendorQuotation `json:"quotation"`
	WarrantyYears int                      `json:"warranty_years"`
	PriceScore    float64                  `json:"price_score"`
	WarrantyScore float64                  `json:"warranty_score"`
	OverallScore  float64                  `json:"overall_score"`
}

// Result is the comparison of a request's quotations.
type Result struct {
	// ByPrice is every quotation, cheapest first.
	ByPrice []Score `json:"by_price"`
	// Ranked is every quotation, best overall score first.
	Ranked          []Score `json:"ranked"`
	Recommended     Score   `json:"recommended"`
	LowestPrice     Score   `json:"lowest_price"`
	LongestWarranty Score   `json:"longest_warranty"`
	AveragePrice    float64 `json:"average_price"`
}

// ParseWarrantyYears extracts the first run of digits in text. Text with no
// digits, or a run too long to fit an int, yields 0.
func ParseWarrantyYears(text string) int {
	start := -1
	for i := 0; i < len(text); i++ {
		isDigit := text[i] >= '0' && text[i] <= '9'
		if isDigit && start < 0 {
			start = i
		}
		if !isDigit && start >= 0 {
			return atoi(text[start:i])
		}
	}
	if start >= 0 {
		return atoi(text[start:])
	}
	return 0
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// Rank scores quotations and picks the best value. A single quotation is
// compared against itself: price score 0, warranty score 100 (or 0 when it
// has no parseable warranty).
func Rank(quotations []entities.VendorQuotation) (Result, error) {
	if len(quotations) == 0 {
		return Result{}, ErrNoQuotations
	}

	maxPrice := 0.0
	maxYears := 0
	years := make([]int, len(quotations))
	for i, q := range quotations {
		if q.Price > maxPrice {
			maxPrice = q.Price
		}
		years[i] = ParseWarrantyYears(q.WarrantyPeriod)
		if years[i] > maxYears {
			maxYears = years[i]
		}
	}
	yearsDivisor := float64(maxYears)
	if yearsDivisor < 1 {
		yearsDivisor = 1
	}

	scores := make([]Score, len(quotations))
	total := 0.0
	for i, q := range quotations {
		priceScore := 0.0
		if maxPrice > 0 {
			priceScore = 100 - (q.Price/maxPrice)*100
		}
		warrantyScore := float64(years[i]) / yearsDivisor * 100
		scores[i] = Score{
			Quotation:     q,
			WarrantyYears: years[i],
			PriceScore:    priceScore,
			WarrantyScore: warrantyScore,
			OverallScore:  PriceWeight*priceScore + WarrantyWeight*warrantyScore,
		}
		total += q.Price
	}

	byPrice := append([]Score(nil), scores...)
	sort.SliceStable(byPrice, func(i, j int) bool {
		return cheaperFirst(byPrice[i], byPrice[j])
	})

	ranked := append([]Score(nil), scores...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].OverallScore != ranked[j].OverallScore {
			return ranked[i].OverallScore > ranked[j].OverallScore
		}
		return cheaperFirst(ranked[i], ranked[j])
	})

	longest := append([]Score(nil), scores...)
	sort.SliceStable(longest, func(i, j int) bool {
		if longest[i].WarrantyYears != longest[j].WarrantyYears {
			return longest[i].WarrantyYears > longest[j].WarrantyYears
		}
		return cheaperFirst(longest[i], longest[j])
	})

	return Result{
		ByPrice:         byPrice,
		Ranked:          ranked,
		Recommended:     ranked[0],
		LowestPrice:     byPrice[0],
		LongestWarranty: longest[0],
		AveragePrice:    total / float64(len(quotations)),
	}, nil
}

// cheaperFirst orders by price, then creation time, then id so that equal
// inputs always produce the same order.
func cheaperFirst(a, b Score) bool {
	if a.Quotation.Price != b.Quotation.Price {
		return a.Quotation.Price < b.Quotation.Price
	}
	if !a.Quotation.CreatedAt.Equal(b.Quotation.CreatedAt) {
		return a.Quotation.CreatedAt.Before(b.Quotation.CreatedAt)
	}
	return a.Quotation.ID < b.Quotation.ID
}
