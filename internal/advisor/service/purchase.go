package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"estimator_backend/internal/advisor/domain"
)

// DefaultPurchaseLowBound is used when a price range has no readable number.
var DefaultPurchaseLowBound = decimal.NewFromInt(5000)

var firstAmount = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// ParsePurchaseLowBound reads the first amount in a free-text price range
// such as "£1,200 - £1,900". Currency symbols and thousands separators are
// ignored. Unreadable input yields DefaultPurchaseLowBound.
func ParsePurchaseLowBound(priceRange string) decimal.Decimal {
	match := firstAmount.FindString(priceRange)
	if match == "" {
		return DefaultPurchaseLowBound
	}
	value, err := decimal.NewFromString(strings.ReplaceAll(match, ",", ""))
	if err != nil || !value.IsPositive() {
		return DefaultPurchaseLowBound
	}
	return value
}

// BreakEvenDays is the number of whole hire days that cost less than
// buying. A zero daily rate has no break-even and yields 0.
func BreakEvenDays(purchaseLow, dailyRate decimal.Decimal) int {
	if !dailyRate.IsPositive() || !purchaseLow.IsPositive() {
		return 0
	}
	return int(purchaseLow.Div(dailyRate).Floor().IntPart())
}

// Verdict applies the buy-vs-rent rule: short or small jobs always rent.
func Verdict(c domain.Classification) domain.BuyOrRent {
	if c.Duration == domain.DurationShort || c.Scale == domain.ScaleSmall {
		return domain.Rent
	}
	return domain.ConsiderBuying
}

// PurchaseAdvice compares hire against purchase for each priced
// recommendation.
func PurchaseAdvice(c domain.Classification, recs []domain.ToolRecommendation) []domain.PurchaseAdvice {
	verdict := Verdict(c)

	out := make([]domain.PurchaseAdvice, 0, len(recs))
	for _, rec := range recs {
		low := ParsePurchaseLowBound(rec.Pricing.PurchasePriceRange)
		days := BreakEvenDays(low, rec.Pricing.Daily)

		var reasoning string
		switch {
		case verdict == domain.Rent:
			reasoning = fmt.Sprintf("Hire makes sense for a %s, %s job.", c.Scale, c.Duration)
		case days == 0:
			reasoning = "No daily hire rate is known; compare local hire quotes before buying."
		default:
			reasoning = fmt.Sprintf("Buying pays off after about %d hire days.", days)
		}

		out = append(out, domain.PurchaseAdvice{
			ToolID:           rec.ToolID,
			Recommendation:   verdict,
			PurchaseLowBound: low,
			DailyRate:        rec.Pricing.Daily,
			BreakEvenDays:    days,
			Reasoning:        reasoning,
		})
	}
	return out
}
