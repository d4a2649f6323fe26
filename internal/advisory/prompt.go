package advisory

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// cropPrompt renders the agronomist prompt for a district and the
// JSON-serialized weather snapshot the client posted back.
func cropPrompt(district string, weatherJSON json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, weatherJSON, "", "  "); err != nil {
		buf.Reset()
		buf.Write(weatherJSON)
	}

	return fmt.Sprintf(`You are an agronomist advising Kerala farmers in %s.
Here is the current weather JSON:
%s

Suggest 3-5 suitable crops to grow NOW that can give high profit.
Output JSON in this format only:
{
  "recommendations": [
    { "crop": "Crop name", "score": 0.9, "reasoning": "why suitable", "plantingWindow": "when to plant" }
  ],
  "method": "gemini"
}`, district, buf.String())
}

// askPrompt renders the free-form Q&A prompt. Language "ml" asks the model
// to answer in Malayalam, anything else in English.
func askPrompt(question, language string) string {
	lang := "English"
	if language == "ml" {
		lang = "Malayalam"
	}

	return fmt.Sprintf(`You are an agricultural expert. A farmer has asked:

%q

Respond ONLY in %s.`, question, lang)
}
