package tax

import (
	"github.com/medusa-holding/medusa/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// Generic is the bracketed contribution and income tax regime.
type Generic struct{}

func (Generic) Name() string { return RegimeGeneric }

func (Generic) Contribution(base decimal.Decimal) decimal.Decimal {
	return ContributionGeneric(base)
}

func (Generic) IncomeTax(gross, contribution decimal.Decimal) decimal.Decimal {
	return IncomeTaxGeneric(gross, contribution)
}

type bracket struct {
	upTo       decimal.Decimal
	rate       decimal.Decimal
	deductible decimal.Decimal
}

var (
	genericContributionBrackets = []bracket{
		{upTo: money.MustParse("1320.00"), rate: money.MustParse("0.075")},
		{upTo: money.MustParse("2571.29"), rate: money.MustParse("0.09")},
		{upTo: money.MustParse("3856.94"), rate: money.MustParse("0.12")},
		{upTo: money.MustParse("7507.49"), rate: money.MustParse("0.14")},
	}
	genericContributionCeiling = money.MustParse("7507.49")
	genericContributionTopRate = money.MustParse("0.14")

	genericIncomeTaxExempt   = money.MustParse("1903.98")
	genericIncomeTaxBrackets = []bracket{
		{upTo: money.MustParse("2826.65"), rate: money.MustParse("0.075"), deductible: money.MustParse("142.80")},
		{upTo: money.MustParse("3751.05"), rate: money.MustParse("0.15"), deductible: money.MustParse("354.80")},
		{upTo: money.MustParse("4664.68"), rate: money.MustParse("0.225"), deductible: money.MustParse("636.13")},
	}
	genericIncomeTaxTop = bracket{rate: money.MustParse("0.275"), deductible: money.MustParse("869.36")}
)

// ContributionGeneric applies the rate of the bracket salary falls in to the whole salary.
// Above the last bracket the contribution is capped at the ceiling times the top rate.
func ContributionGeneric(salary decimal.Decimal) decimal.Decimal {
	if !salary.IsPositive() {
		return decimal.Zero
	}
	for _, b := range genericContributionBrackets {
		if salary.LessThanOrEqual(b.upTo) {
			return money.NonNegative(salary.Mul(b.rate))
		}
	}
	return money.NonNegative(genericContributionCeiling.Mul(genericContributionTopRate))
}

// IncomeTaxGeneric taxes salary minus contribution using rate and deductible per bracket.
func IncomeTaxGeneric(salary, contribution decimal.Decimal) decimal.Decimal {
	base := salary.Sub(contribution)
	if base.LessThanOrEqual(genericIncomeTaxExempt) {
		return decimal.Zero
	}
	for _, b := range genericIncomeTaxBrackets {
		if base.LessThanOrEqual(b.upTo) {
			return money.NonNegative(base.Mul(b.rate).Sub(b.deductible))
		}
	}
	return money.NonNegative(base.Mul(genericIncomeTaxTop.rate).Sub(genericIncomeTaxTop.deductible))
}
