package advisory

// Method tags identify how a suggestion response was produced. Callers
// must use the tag, never the recommendation count, to tell a model-derived
// answer from a rule-derived one.
const (
	MethodGemini        = "gemini"
	MethodHeuristic     = "heuristic"
	MethodErrorFallback = "gemini_error_fallback"
)

// Recommendation is one suggested crop. Score is desirability on a 0-1
// scale, higher is better.
type Recommendation struct {
	Crop           string  `json:"crop"`
	Score          float64 `json:"score"`
	Reasoning      string  `json:"reasoning"`
	PlantingWindow string  `json:"plantingWindow,omitempty"`
}

// SuggestionResponse is the crop-suggest reply. RawText carries the
// unparsed model output when the model replied but not in the contracted
// JSON shape.
type SuggestionResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
	Method          string           `json:"method"`
	RawText         string           `json:"rawText,omitempty"`
}
