package ai

import "context"

// AnalysisResult is the structured quality assessment of one prompt
type AnalysisResult struct {
	Score        int      `json:"score"`
	Improvements []string `json:"improvements"`
	UnclearParts []string `json:"unclear_parts"`
}

// Analyzer is the capability every backend exposes
type Analyzer interface {
	// Name returns the provider identifier
	Name() string

	// Analyze scores prompt. It must return a descriptive error, never panic,
	// when required credentials or endpoints are missing.
	Analyze(ctx context.Context, prompt string) (*AnalysisResult, error)
}

// Grade buckets a score into a named quality band
type Grade int

const (
	GradeVeryPoor Grade = iota
	GradePoor
	GradeFair
	GradeGood
	GradeExcellent
)

// GradeFor returns the quality band for score
func GradeFor(score int) Grade {
	switch {
	case score >= 90:
		return GradeExcellent
	case score >= 70:
		return GradeGood
	case score >= 50:
		return GradeFair
	case score >= 30:
		return GradePoor
	default:
		return GradeVeryPoor
	}
}

func (g Grade) String() string {
	switch g {
	case GradeExcellent:
		return "Excellent"
	case GradeGood:
		return "Good"
	case GradeFair:
		return "Fair"
	case GradePoor:
		return "Poor"
	default:
		return "Very Poor"
	}
}

// Label returns the quality band name for the result's score
func (r *AnalysisResult) Label() string {
	return GradeFor(r.Score).String()
}

type requestIDKey struct{}

// WithRequestID attaches a request identifier used for logging and backend attribution
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the identifier set by WithRequestID, or ""
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
