package spk

import (
	"math"
	"strconv"
	"strings"
)

// ParseScore coerces a cell to a number. Commas are read as decimal
// separators ("7,5" is 7.5). Anything that is not a finite decimal number,
// including the empty string, becomes 0.
func ParseScore(raw string) float64 {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatScore renders a score so that ParseScore(FormatScore(v)) == v.
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Normalize builds one Student per row of t using the resolved schema.
// Missing trailing cells are treated as empty.
func Normalize(t Table, s Schema) []Student {
	cell := func(row []string, i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	out := make([]Student, 0, len(t.Rows))
	for _, row := range t.Rows {
		st := Student{
			NIM:       strings.TrimSpace(cell(row, s.Index[ColNIM])),
			Nama:      strings.TrimSpace(cell(row, s.Index[ColNama])),
			UTP:       ParseScore(cell(row, s.Index[ColUTP])),
			UAP:       ParseScore(cell(row, s.Index[ColUAP])),
			Keaktifan: ParseScore(cell(row, s.Index[ColKeaktifan])),
			Modules:   make([]float64, len(s.Modules)),
		}
		for j, i := range s.Modules {
			st.Modules[j] = ParseScore(cell(row, i))
		}
		out = append(out, st)
	}
	return out
}
