package ai

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/yildizm/go-promptfmt"
)

// SystemPrompt instructs the model to act as a prompt quality analyzer
const SystemPrompt = `You are a prompt quality analyzer. Analyze the given prompt and provide:
1. A quality score from 0-100
2. A list of specific improvements
3. A list of unclear or ambiguous parts

Respond in JSON format only:
{
  "score": <number 0-100>,
  "improvements": ["improvement 1", "improvement 2", ...],
  "unclear_parts": ["unclear part 1", "unclear part 2", ...]
}

Scoring guidelines:
- 90-100: Excellent - clear, specific, well-structured
- 70-89: Good - mostly clear with minor improvements needed
- 50-69: Fair - needs clarification or more specificity
- 30-49: Poor - significant ambiguity or missing context
- 0-29: Very poor - vague or incomprehensible

Be constructive and specific in your feedback.`

const (
	// Temperature used for every analysis request
	Temperature = 0.3

	// MaxTokens caps the length of the backend reply
	MaxTokens = 1000
)

// BuildPrompt wraps the user's prompt in the analysis instructions
func BuildPrompt(prompt string) *promptfmt.Prompt {
	return promptfmt.New().
		System(SystemPrompt).
		User("Analyze this prompt:\n\n%s", prompt).
		Build()
}

// UserMessage returns the content of the last user turn in p
func UserMessage(p *promptfmt.Prompt) string {
	for i := len(p.Messages) - 1; i >= 0; i-- {
		if p.Messages[i].Role == "user" {
			return p.Messages[i].Content
		}
	}
	return ""
}

// rawAnalysis accepts fractional scores, which some models emit
type rawAnalysis struct {
	Score        float64  `json:"score"`
	Improvements []string `json:"improvements"`
	UnclearParts []string `json:"unclear_parts"`
}

// ParseAnalysis extracts an AnalysisResult from a model reply. Replies often
// wrap the JSON object in prose or code fences, so the object between the
// first '{' and the last '}' is used.
func ParseAnalysis(content, provider string) (*AnalysisResult, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return nil, NewProviderError(ErrTypeParse, "Failed to parse LLM response as JSON: no JSON object found", provider)
	}
	object := content[start : end+1]

	var raw rawAnalysis
	if parsed := promptfmt.NewResponse(object).TryParseJSON(&raw); !parsed.Success {
		// promptfmt does not expose the decoder error, decode again for the message
		raw = rawAnalysis{}
		if err := json.Unmarshal([]byte(object), &raw); err != nil {
			return nil, NewProviderErrorWithCause(ErrTypeParse, "Failed to parse LLM response as JSON", provider, err)
		}
	}

	result := &AnalysisResult{
		Score:        clampScore(raw.Score),
		Improvements: nonNil(raw.Improvements),
		UnclearParts: nonNil(raw.UnclearParts),
	}
	return result, nil
}

func clampScore(score float64) int {
	if math.IsNaN(score) {
		return 0
	}
	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
