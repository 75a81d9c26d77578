package validation

// Field pairs a form field name with its validation result.
type Field struct {
	Name   string
	Result Result
}

// Batch aggregates the results of several fields.
type Batch struct {
	Valid  bool
	Errors map[string]string // Reason per invalid field; valid fields are absent
}

// ValidateAll aggregates field results. Every field is reported; nothing
// short-circuits. If a name repeats, its first failure is kept.
func ValidateAll(fields ...Field) Batch {
	b := Batch{Valid: true, Errors: make(map[string]string)}
	for _, f := range fields {
		if f.Result.IsValid() {
			continue
		}
		b.Valid = false
		if _, seen := b.Errors[f.Name]; !seen {
			b.Errors[f.Name] = f.Result.ErrorMessage()
		}
	}
	return b
}
