package rules

// Kind is the outcome of matching a line.
type Kind int

const (
	// NoMatch means the rule does not touch the line.
	NoMatch Kind = iota
	// PassThrough means no rule touched the line; it is written unchanged.
	PassThrough
	// MatchAndDelete means the line is dropped from the output.
	MatchAndDelete
	// MatchAndReplace means the line is replaced by Result.Text.
	MatchAndReplace
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case NoMatch:
		return "no-match"
	case PassThrough:
		return "pass-through"
	case MatchAndDelete:
		return "delete"
	case MatchAndReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Result is the decision for one line.
type Result struct {
	Kind Kind
	// Text is the replacement for MatchAndReplace and the original line for
	// PassThrough. It is empty otherwise.
	Text string
	// RuleIndex is the position of the deciding rule in the rule list, or -1.
	RuleIndex int
}

// IsHit reports whether a rule matched the line.
func (r Result) IsHit() bool {
	return r.Kind == MatchAndDelete || r.Kind == MatchAndReplace
}
