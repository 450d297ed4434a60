package domain

// Ratio is an overage ratio that is undefined when the monthly cost is zero.
// The value can only be read together with its defined flag.
type Ratio struct {
	value   float64
	defined bool
}

// DefinedRatio wraps a known ratio value.
func DefinedRatio(v float64) Ratio { return Ratio{value: v, defined: true} }

// Get returns the ratio and whether it is defined.
func (r Ratio) Get() (float64, bool) { return r.value, r.defined }

func (r Ratio) Defined() bool { return r.defined }

// DeriveRatio computes overage / monthly cost, leaving the ratio undefined
// for zero-cost records.
func DeriveRatio(r Record) Ratio {
	if r.MonthlyCost == 0 {
		return Ratio{}
	}
	return DefinedRatio(float64(r.OverageCost) / float64(r.MonthlyCost))
}
