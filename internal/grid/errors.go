package grid

import "fmt"

// ConfigValidationError reports a configuration value that cannot be generated.
// It is always returned before any output is produced.
type ConfigValidationError struct {
	Field  string // "columns"
	Value  any    // 13
	Reason string // "odd numbers of columns are not supported"
}

func (e *ConfigValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func invalid(field string, value any, format string, args ...any) *ConfigValidationError {
	return &ConfigValidationError{
		Field:  field,
		Value:  value,
		Reason: fmt.Sprintf(format, args...),
	}
}
