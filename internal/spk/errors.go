package spk

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Kind classifies a structural problem with an uploaded dataset.
type Kind string

const (
	KindMissingColumn       Kind = "missing_column"
	KindDuplicateColumn     Kind = "duplicate_column"
	KindNoModuleColumns     Kind = "no_module_columns"
	KindEmptyDataset        Kind = "empty_dataset"
	KindDegenerateCriterion Kind = "degenerate_criterion"
	KindTooFewRows          Kind = "too_few_rows"
)

// ValidationError reports input the pipeline cannot score. It carries enough
// detail for the caller to fix the file.
type ValidationError struct {
	Kind      Kind
	Columns   []string // missing_column, duplicate_column
	Criterion string   // degenerate_criterion
	Max       float64  // degenerate_criterion: column max, or the offending value when not finite
	Rows      int      // too_few_rows, empty_dataset
	Need      int      // too_few_rows
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindMissingColumn:
		return "missing column: " + strings.Join(e.Columns, ", ")
	case KindDuplicateColumn:
		return "duplicate column: " + strings.Join(e.Columns, ", ")
	case KindNoModuleColumns:
		return `no module columns: expected at least one column whose name contains "modul"`
	case KindEmptyDataset:
		return "dataset has no rows"
	case KindDegenerateCriterion:
		if math.IsInf(e.Max, 0) || math.IsNaN(e.Max) {
			return fmt.Sprintf("criterion %s is not a finite number: got %g", e.Criterion, e.Max)
		}
		return fmt.Sprintf("criterion %s cannot be normalized: maximum is %g", e.Criterion, e.Max)
	case KindTooFewRows:
		return fmt.Sprintf("need at least %d rows to form %d clusters, got %d", e.Need, e.Need, e.Rows)
	default:
		return "invalid dataset: " + string(e.Kind)
	}
}

// IsValidation unwraps err to a *ValidationError.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
