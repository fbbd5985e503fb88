package spk

import "strings"

// canonical maps a trimmed, lower-cased header to its canonical name.
var canonical = map[string]string{
	"nama":      ColNama,
	"nim":       ColNIM,
	"utp":       ColUTP,
	"uap":       ColUAP,
	"keaktifan": ColKeaktifan,
}

var required = []string{ColNama, ColNIM, ColUTP, ColUAP, ColKeaktifan}

// Schema locates the canonical and module columns of a standardized header.
type Schema struct {
	Header  []string
	Index   map[string]int
	Modules []int
}

// ModuleNames returns the header names of the detected module columns.
func (s Schema) ModuleNames() []string {
	out := make([]string, 0, len(s.Modules))
	for _, i := range s.Modules {
		out = append(out, s.Header[i])
	}
	return out
}

// StandardizeHeader trims every header and renames case-insensitive matches
// of the canonical names. Other headers are only trimmed.
func StandardizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if c, ok := canonical[strings.ToLower(h)]; ok {
			h = c
		}
		out[i] = h
	}
	return out
}

// IsModuleColumn reports whether a header names a module score column.
func IsModuleColumn(name string) bool {
	return strings.Contains(strings.ToLower(strings.TrimSpace(name)), "modul")
}

// ResolveColumns standardizes header and checks that every canonical column
// is present exactly once and that at least one module column exists.
func ResolveColumns(header []string) (Schema, error) {
	std := StandardizeHeader(header)
	s := Schema{Header: std, Index: map[string]int{}}

	var dups []string
	for i, h := range std {
		if _, ok := canonical[strings.ToLower(h)]; ok {
			if _, seen := s.Index[h]; seen {
				dups = append(dups, h)
				continue
			}
			s.Index[h] = i
		}
		if IsModuleColumn(h) {
			s.Modules = append(s.Modules, i)
		}
	}

	var missing []string
	for _, k := range required {
		if _, ok := s.Index[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return s, &ValidationError{Kind: KindMissingColumn, Columns: missing}
	}
	if len(dups) > 0 {
		return s, &ValidationError{Kind: KindDuplicateColumn, Columns: dups}
	}
	if len(s.Modules) == 0 {
		return s, &ValidationError{Kind: KindNoModuleColumns}
	}
	return s, nil
}
