package tax

import (
	"github.com/medusa-holding/medusa/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// Mozambique applies INSS and IRPS.
type Mozambique struct{}

func (Mozambique) Name() string { return RegimeMozambique }

func (Mozambique) Contribution(base decimal.Decimal) decimal.Decimal {
	return ContributionMZ(base)
}

func (Mozambique) IncomeTax(gross, contribution decimal.Decimal) decimal.Decimal {
	return IncomeTaxMZ(gross, contribution)
}

var (
	// MinimumWageMZ is the contribution floor.
	MinimumWageMZ = money.MustParse("4390.00")
	// ContributionCeilingMZ caps the contribution base.
	ContributionCeilingMZ = money.MustParse("21950.00")
	contributionRateMZ    = money.MustParse("0.07")

	incomeTaxExemptMZ = money.MustParse("41666.67")
)

type progressiveBracket struct {
	upTo  decimal.Decimal
	from  decimal.Decimal
	fixed decimal.Decimal
	rate  decimal.Decimal
}

var incomeTaxBracketsMZ = []progressiveBracket{
	{upTo: money.MustParse("83333.33"), from: money.MustParse("41666.67"), fixed: decimal.Zero, rate: money.MustParse("0.10")},
	{upTo: money.MustParse("291666.67"), from: money.MustParse("83333.33"), fixed: money.MustParse("4166.67"), rate: money.MustParse("0.15")},
	{upTo: money.MustParse("583333.33"), from: money.MustParse("291666.67"), fixed: money.MustParse("32500.00"), rate: money.MustParse("0.20")},
}

var incomeTaxTopMZ = progressiveBracket{from: money.MustParse("583333.33"), fixed: money.MustParse("90833.33"), rate: money.MustParse("0.25")}

// ContributionMZ is 7% of the salary, with the base capped at the ceiling and
// raised to the minimum wage for smaller salaries.
func ContributionMZ(salary decimal.Decimal) decimal.Decimal {
	base := decimal.Min(salary, ContributionCeilingMZ)
	if salary.LessThan(MinimumWageMZ) {
		base = MinimumWageMZ
	}
	return money.NonNegative(base.Mul(contributionRateMZ))
}

// IncomeTaxMZ taxes gross minus contribution progressively: a fixed amount for the
// lower brackets plus the marginal rate on the excess.
func IncomeTaxMZ(gross, contribution decimal.Decimal) decimal.Decimal {
	base := gross.Sub(contribution)
	if base.LessThanOrEqual(incomeTaxExemptMZ) {
		return decimal.Zero
	}
	for _, b := range incomeTaxBracketsMZ {
		if base.LessThanOrEqual(b.upTo) {
			return money.NonNegative(b.fixed.Add(base.Sub(b.from).Mul(b.rate)))
		}
	}
	return money.NonNegative(incomeTaxTopMZ.fixed.Add(base.Sub(incomeTaxTopMZ.from).Mul(incomeTaxTopMZ.rate)))
}

// NetMZ is gross minus contribution and income tax.
func NetMZ(gross decimal.Decimal) decimal.Decimal {
	return Apply(Mozambique{}, gross).Net
}
