package domain

import (
	"math"
	"slices"
)

// Group is the ratio sample of one category value.
type Group struct {
	Key    string    `json:"key"`
	Ratios []float64 `json:"ratios"`
}

// Distribution is the ordered set of groups of one field.
type Distribution struct {
	Field  Field   `json:"field"`
	Groups []Group `json:"groups"`
}

func (d Distribution) Empty() bool { return len(d.Groups) == 0 }

// Lookup returns the ratios of the group with the given key.
func (d Distribution) Lookup(key string) ([]float64, bool) {
	for _, g := range d.Groups {
		if g.Key == key {
			return g.Ratios, true
		}
	}
	return nil, false
}

// GroupDistribution partitions the defined ratios of v by field f. Rows
// with an undefined ratio or a missing group value are left out.
func GroupDistribution(v FilteredView, f Field) Distribution {
	byKey := make(map[string][]float64)
	var keys []string
	for _, row := range v.Rows {
		ratio, ok := row.Ratio.Get()
		if !ok {
			continue
		}
		key, ok := row.Category(f)
		if !ok {
			continue
		}
		if _, seen := byKey[key]; !seen {
			keys = append(keys, key)
		}
		byKey[key] = append(byKey[key], ratio)
	}

	SortCategories(f, keys)
	d := Distribution{Field: f, Groups: make([]Group, 0, len(keys))}
	for _, k := range keys {
		d.Groups = append(d.Groups, Group{Key: k, Ratios: byKey[k]})
	}
	return d
}

// BoxStats is the five-number summary of a sample.
type BoxStats struct {
	N      int     `json:"n"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Stats computes the five-number summary of the group's ratios.
func (g Group) Stats() BoxStats { return Box(g.Ratios) }

// Box computes quartiles with linear interpolation between closest ranks.
// An empty sample yields the zero value.
func Box(sample []float64) BoxStats {
	if len(sample) == 0 {
		return BoxStats{}
	}
	sorted := slices.Clone(sample)
	slices.Sort(sorted)
	return BoxStats{
		N:      len(sorted),
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
}

func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
