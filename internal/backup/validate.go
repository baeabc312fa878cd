package backup

import (
	"fmt"
	"strings"
)

// ValidationError describes one problem with a candidate directory. It is
// data, not a fault: editors display the message and editing continues.
type ValidationError struct {
	Field   string
	Index   int
	Message string
	// Warning errors never block a commit.
	Warning bool
}

func (e ValidationError) Error() string {
	return e.Message
}

// Verify checks a candidate directory for well-formedness. It is pure: it
// reads only its input, mutates nothing, and is safe to call from any
// number of call sites concurrently. An empty result (ignoring warnings)
// means the directory is acceptable to commit.
func Verify(d Directory) []ValidationError {
	var errs []ValidationError
	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Index: -1, Message: "Name should not be empty"})
	}
	for i, source := range d.Sources {
		if strings.TrimSpace(source) == "" {
			errs = append(errs, ValidationError{
				Field:   "sources",
				Index:   i,
				Message: fmt.Sprintf("Source %d should have a path", i+1),
			})
		}
	}
	for i, exclude := range d.Excludes {
		if strings.TrimSpace(exclude) == "" {
			errs = append(errs, ValidationError{
				Field:   "excludes",
				Index:   i,
				Message: fmt.Sprintf("Exclude %d should not be empty", i+1),
			})
		}
	}
	errs = append(errs, duplicateWarnings("sources", d.Sources)...)
	errs = append(errs, duplicateWarnings("excludes", d.Excludes)...)
	return errs
}

// Blocking filters out warnings, leaving only the errors that gate a
// commit. Both the editor's save gate and the router's defensive re-check
// use this, so the two decision points cannot drift.
func Blocking(errs []ValidationError) []ValidationError {
	var out []ValidationError
	for _, e := range errs {
		if !e.Warning {
			out = append(out, e)
		}
	}
	return out
}

func duplicateWarnings(field string, values []string) []ValidationError {
	seen := make(map[string]int, len(values))
	var errs []ValidationError
	for i, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if first, ok := seen[trimmed]; ok {
			errs = append(errs, ValidationError{
				Field:   field,
				Index:   i,
				Message: fmt.Sprintf("Duplicate of entry %d: %s", first+1, trimmed),
				Warning: true,
			})
			continue
		}
		seen[trimmed] = i
	}
	return errs
}
