package advisory

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

type stubModel struct {
	text  string
	err   error
	calls int
}

func (m *stubModel) Generate(ctx context.Context, prompt string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

var sampleWeather = json.RawMessage(`{
	"provider": "open-meteo",
	"current": {
		"temperature_2m": 28,
		"relative_humidity_2m": null,
		"wind_speed_10m": 9.1,
		"precipitation": 2,
		"cloudcover": null
	}
}`)

func TestSuggestWithoutCredential(t *testing.T) {
	svc := NewService(nil)

	resp := svc.SuggestCrops(context.Background(), "Kottayam", sampleWeather)
	if resp.Method != MethodHeuristic {
		t.Fatalf("expected method %q, got %q", MethodHeuristic, resp.Method)
	}
	if len(resp.Recommendations) < 3 || len(resp.Recommendations) > 5 {
		t.Fatalf("expected 3-5 recommendations, got %d", len(resp.Recommendations))
	}
}

func TestSuggestTransportFailureFallsBack(t *testing.T) {
	model := &stubModel{err: errors.New("connection refused")}
	svc := NewService(model)

	resp := svc.SuggestCrops(context.Background(), "Kottayam", sampleWeather)
	if resp.Method != MethodErrorFallback {
		t.Fatalf("expected method %q, got %q", MethodErrorFallback, resp.Method)
	}
	if len(resp.Recommendations) == 0 {
		t.Fatal("expected heuristic recommendations on transport failure")
	}
	if model.calls != 1 {
		t.Fatalf("expected exactly one model call, got %d", model.calls)
	}
}

func TestSuggestMalformedModelOutput(t *testing.T) {
	model := &stubModel{text: "I'm sorry, I can only discuss the weather."}
	svc := NewService(model)

	resp := svc.SuggestCrops(context.Background(), "Kottayam", sampleWeather)
	if resp.Method != MethodGemini {
		t.Fatalf("expected method %q, got %q", MethodGemini, resp.Method)
	}
	if len(resp.Recommendations) != 0 {
		t.Fatalf("expected empty recommendations, got %d", len(resp.Recommendations))
	}
	if resp.RawText != model.text {
		t.Fatalf("expected rawText to carry the original output, got %q", resp.RawText)
	}
}

func TestSuggestParsesFencedModelOutput(t *testing.T) {
	model := &stubModel{text: "```json\n" + `{
		"recommendations": [
			{"crop": "Ginger", "score": 0.9, "reasoning": "humid climate", "plantingWindow": "now"},
			{"crop": "Turmeric", "score": 0.85, "reasoning": "same beds", "plantingWindow": "now"},
			{"crop": "Tapioca", "score": 0.7, "reasoning": "hardy", "plantingWindow": "next month"}
		],
		"method": "gemini"
	}` + "\n```"}
	svc := NewService(model)

	resp := svc.SuggestCrops(context.Background(), "Idukki", sampleWeather)
	if resp.Method != MethodGemini {
		t.Fatalf("expected method %q, got %q", MethodGemini, resp.Method)
	}
	if len(resp.Recommendations) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(resp.Recommendations))
	}
	if resp.Recommendations[0].Crop != "Ginger" || resp.Recommendations[0].Score != 0.9 {
		t.Fatalf("unexpected first recommendation: %+v", resp.Recommendations[0])
	}
	if resp.RawText != "" {
		t.Fatalf("expected no rawText on successful parse, got %q", resp.RawText)
	}
}

func TestSuggestNullWeatherUsesDefaults(t *testing.T) {
	svc := NewService(nil)

	nullWeather := json.RawMessage(`{"current": {"temperature_2m": null, "precipitation": null}}`)
	resp := svc.SuggestCrops(context.Background(), "Kottayam", nullWeather)

	want := HeuristicSuggestions(defaultTemperatureC, defaultPrecipitationMm)
	if len(resp.Recommendations) != len(want) {
		t.Fatalf("expected %d recommendations from defaults, got %d", len(want), len(resp.Recommendations))
	}
	for i := range want {
		if resp.Recommendations[i].Crop != want[i].Crop {
			t.Fatalf("position %d: expected %q, got %q", i, want[i].Crop, resp.Recommendations[i].Crop)
		}
	}
}

func TestAnswerWithoutCredential(t *testing.T) {
	svc := NewService(nil)

	if _, err := svc.Answer(context.Background(), "When should I plant paddy?", "en"); !errors.Is(err, ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}
}

func TestAnswerTrimsModelOutput(t *testing.T) {
	model := &stubModel{text: "  Plant at the onset of the monsoon.\n"}
	svc := NewService(model)

	answer, err := svc.Answer(context.Background(), "When should I plant paddy?", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "Plant at the onset of the monsoon." {
		t.Fatalf("unexpected answer: %q", answer)
	}
}

func TestStripFence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"  ```json\n{\"a\":1}\n```  ", "{\"a\":1}"},
	}

	for _, c := range cases {
		if got := stripFence(c.in); got != c.want {
			t.Fatalf("stripFence(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}
