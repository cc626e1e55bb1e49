package tax

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnknownRegime is returned by RegimeFor for an unsupported regime name.
var ErrUnknownRegime = errors.New("unknown tax regime")

const (
	RegimeGeneric    = "generic"
	RegimeMozambique = "mozambique"
)

// Regime computes the statutory deductions of one jurisdiction.
// Implementations are stateless and safe for concurrent use.
type Regime interface {
	Name() string
	// Contribution is the social security withholding on base.
	Contribution(base decimal.Decimal) decimal.Decimal
	// IncomeTax is the income tax on gross after the contribution is deducted.
	IncomeTax(gross, contribution decimal.Decimal) decimal.Decimal
}

// RegimeFor returns the regime registered under name.
func RegimeFor(name string) (Regime, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case RegimeGeneric:
		return Generic{}, nil
	case RegimeMozambique, "mz", "moz":
		return Mozambique{}, nil
	default:
		return nil, ErrUnknownRegime
	}
}

// Breakdown is the result of applying a regime to a gross amount.
type Breakdown struct {
	Regime       string          `json:"regime"`
	Gross        decimal.Decimal `json:"gross"`
	Contribution decimal.Decimal `json:"contribution"`
	IncomeTax    decimal.Decimal `json:"income_tax"`
	Net          decimal.Decimal `json:"net"`
}

// Apply computes contribution, income tax and net for gross under r.
func Apply(r Regime, gross decimal.Decimal) Breakdown {
	contribution := r.Contribution(gross)
	incomeTax := r.IncomeTax(gross, contribution)
	return Breakdown{
		Regime:       r.Name(),
		Gross:        gross,
		Contribution: contribution,
		IncomeTax:    incomeTax,
		Net:          gross.Sub(contribution).Sub(incomeTax),
	}
}
