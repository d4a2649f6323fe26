package advisory

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
)

// ErrModelUnavailable is returned by Answer when no model credential is
// configured. Crop suggestions never surface it; they degrade to the
// heuristic generator instead.
var ErrModelUnavailable = errors.New("generative model is not configured")

// Model generates free text from a prompt. Implemented by GeminiClient.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service produces crop recommendations and free-form answers. Stateless;
// safe for concurrent use.
type Service struct {
	model Model
}

// NewService creates a Service. A nil model means no credential is
// configured: crop suggestions come from the heuristic generator and
// Answer fails with ErrModelUnavailable.
func NewService(model Model) *Service {
	return &Service{model: model}
}

// SuggestCrops returns crop recommendations for a district given the
// weather snapshot the client posted back. The method tag records
// provenance:
//
//	heuristic             - no model credential, rule-based list
//	gemini_error_fallback - model call failed at transport level, rule-based list
//	gemini                - model replied; empty list plus rawText when its
//	                        output did not parse as the contracted JSON
//
// It never returns an error: every failure mode degrades to a usable
// response.
func (s *Service) SuggestCrops(ctx context.Context, district string, weatherJSON json.RawMessage) SuggestionResponse {
	if s.model == nil {
		return SuggestionResponse{
			Recommendations: heuristicFromSnapshot(weatherJSON),
			Method:          MethodHeuristic,
		}
	}

	text, err := s.model.Generate(ctx, cropPrompt(district, weatherJSON))
	if err != nil {
		log.Printf("model call failed for %s, using heuristic fallback: %v", district, err)
		return SuggestionResponse{
			Recommendations: heuristicFromSnapshot(weatherJSON),
			Method:          MethodErrorFallback,
		}
	}

	var parsed SuggestionResponse
	if err := json.Unmarshal([]byte(stripFence(text)), &parsed); err != nil {
		// The model answered but not in the contracted shape. Hand the raw
		// text back rather than substituting rule output.
		return SuggestionResponse{
			Recommendations: []Recommendation{},
			Method:          MethodGemini,
			RawText:         text,
		}
	}

	parsed.Method = MethodGemini
	if parsed.Recommendations == nil {
		parsed.Recommendations = []Recommendation{}
	}
	return parsed
}

// Answer responds to a free-form farmer question in the requested language
// ("ml" for Malayalam, anything else English).
func (s *Service) Answer(ctx context.Context, question, language string) (string, error) {
	if s.model == nil {
		return "", ErrModelUnavailable
	}

	text, err := s.model.Generate(ctx, askPrompt(question, language))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// heuristicFromSnapshot pulls the two rule inputs out of the snapshot,
// substituting the documented defaults for null or missing values.
func heuristicFromSnapshot(weatherJSON json.RawMessage) []Recommendation {
	var snap struct {
		Current struct {
			Temperature2m *float64 `json:"temperature_2m"`
			Precipitation *float64 `json:"precipitation"`
		} `json:"current"`
	}
	// A malformed snapshot simply leaves both inputs at their defaults.
	_ = json.Unmarshal(weatherJSON, &snap)

	tempC := float64(defaultTemperatureC)
	if snap.Current.Temperature2m != nil {
		tempC = *snap.Current.Temperature2m
	}
	precipMm := float64(defaultPrecipitationMm)
	if snap.Current.Precipitation != nil {
		precipMm = *snap.Current.Precipitation
	}

	return HeuristicSuggestions(tempC, precipMm)
}

// stripFence removes a Markdown code-fence wrapper, with or without a
// language hint, from model output.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimLeft(s, "abcdefghijklmnopqrstuvwxyz")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
