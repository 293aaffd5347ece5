package matcher

// Issue is a single violation found by a matcher.
type Issue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result collects the issues produced by one Match call.
// The zero value is an empty, valid result.
type Result struct {
	issues []Issue
}

// AddInvalidTypeError appends an issue to the result.
func (r *Result) AddInvalidTypeError(code, message string) {
	r.issues = append(r.issues, Issue{Code: code, Message: message})
}

func (r *Result) add(d Descriptor) {
	r.AddInvalidTypeError(d.Code, d.Message)
}

// Valid reports whether no issues were recorded.
func (r Result) Valid() bool {
	return len(r.issues) == 0
}

// Len returns the number of recorded issues.
func (r Result) Len() int {
	return len(r.issues)
}

// Issues returns a copy of the recorded issues in the order they were added.
func (r Result) Issues() []Issue {
	if len(r.issues) == 0 {
		return nil
	}
	out := make([]Issue, len(r.issues))
	copy(out, r.issues)
	return out
}

// Codes returns the issue codes in the order they were added.
func (r Result) Codes() []string {
	if len(r.issues) == 0 {
		return nil
	}
	codes := make([]string, 0, len(r.issues))
	for _, issue := range r.issues {
		codes = append(codes, issue.Code)
	}
	return codes
}

// Has reports whether an issue with the given code was recorded.
func (r Result) Has(code string) bool {
	for _, issue := range r.issues {
		if issue.Code == code {
			return true
		}
	}
	return false
}
