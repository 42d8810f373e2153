package params

// ValidationError reports a parameter that is missing or violates its
// declared constraint
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}
