package spk

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// AverageModules sets RataModul to the row-wise mean of the module scores.
// Module values large enough to overflow the mean are rejected.
func AverageModules(students []Student) error {
	for i := range students {
		if len(students[i].Modules) == 0 {
			return &ValidationError{Kind: KindNoModuleColumns}
		}
		m := stat.Mean(students[i].Modules, nil)
		if !finite(m) {
			return &ValidationError{Kind: KindDegenerateCriterion, Criterion: ColRataModul, Max: m}
		}
		students[i].RataModul = m
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// criterion binds one SAW criterion to its raw value, normalized slot and weight.
type criterion struct {
	name   string
	raw    func(*Student) float64
	norm   func(*Student) *float64
	weight func(Weights) float64
}

var criteria = []criterion{
	{ColRataModul, func(s *Student) float64 { return s.RataModul }, func(s *Student) *float64 { return &s.NormModul }, func(w Weights) float64 { return w.Modul }},
	{ColUTP, func(s *Student) float64 { return s.UTP }, func(s *Student) *float64 { return &s.NormUTP }, func(w Weights) float64 { return w.UTP }},
	{ColUAP, func(s *Student) float64 { return s.UAP }, func(s *Student) *float64 { return &s.NormUAP }, func(w Weights) float64 { return w.UAP }},
	{ColKeaktifan, func(s *Student) float64 { return s.Keaktifan }, func(s *Student) *float64 { return &s.NormKeaktifan }, func(w Weights) float64 { return w.Keaktifan }},
}

// Score applies benefit normalization (value / column max) to every
// criterion and sets SkorAkhir to the weighted sum. Weights are not
// normalized. A criterion whose maximum is not positive and finite cannot be
// normalized, and a weighted sum that overflows cannot be ranked; both are
// reported instead of producing NaN or Inf.
func Score(students []Student, w Weights) error {
	if len(students) == 0 {
		return &ValidationError{Kind: KindEmptyDataset}
	}
	col := make([]float64, len(students))
	for _, c := range criteria {
		for i := range students {
			col[i] = c.raw(&students[i])
		}
		hi := floats.Max(col)
		if !(hi > 0) || math.IsInf(hi, 1) {
			return &ValidationError{Kind: KindDegenerateCriterion, Criterion: c.name, Max: hi}
		}
		for i := range students {
			*c.norm(&students[i]) = col[i] / hi
		}
	}
	for i := range students {
		s := &students[i]
		s.SkorAkhir = s.NormModul*w.Modul + s.NormUTP*w.UTP + s.NormUAP*w.UAP + s.NormKeaktifan*w.Keaktifan
		if !finite(s.SkorAkhir) {
			return &ValidationError{Kind: KindDegenerateCriterion, Criterion: ColSkorAkhir, Max: s.SkorAkhir}
		}
	}
	return nil
}

// Rank orders students by SkorAkhir descending, keeping input order for
// ties, and numbers them from 1.
func Rank(students []Student) {
	slices.SortStableFunc(students, func(a, b Student) int {
		return cmp.Compare(b.SkorAkhir, a.SkorAkhir)
	})
	for i := range students {
		students[i].Rank = i + 1
	}
}
