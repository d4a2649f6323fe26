package advisory

// Defaults applied when the snapshot carries no value for a rule input.
const (
	defaultTemperatureC    = 28
	defaultPrecipitationMm = 2
)

// HeuristicSuggestions derives crop recommendations from temperature (°C)
// and precipitation (mm) alone. Each rule independently appends its
// candidate when its thresholds hold; rule scores are fixed and strictly
// descending, so list order doubles as rank. The final rule is an
// unconditional backstop when fewer than three candidates accumulated, so
// the result always has between 1 and 5 entries. Pure function: identical
// inputs always yield the identical ordered list.
func HeuristicSuggestions(tempC, precipMm float64) []Recommendation {
	var recs []Recommendation

	if tempC >= 24 && tempC <= 34 && precipMm >= 1 {
		recs = append(recs, Recommendation{
			Crop:           "Short-duration rice (Jyothi)",
			Score:          0.88,
			Reasoning:      "Warm weather with steady rainfall suits a quick paddy cycle.",
			PlantingWindow: "Within the next 2 weeks",
		})
	}
	if tempC >= 22 && tempC <= 32 && precipMm <= 3 {
		recs = append(recs, Recommendation{
			Crop:           "Banana (Nendran)",
			Score:          0.82,
			Reasoning:      "Moderate temperatures without waterlogging favour new banana pits.",
			PlantingWindow: "This month",
		})
	}
	if tempC >= 20 && tempC <= 30 {
		recs = append(recs, Recommendation{
			Crop:           "Quick-rotation vegetables (amaranthus, okra)",
			Score:          0.76,
			Reasoning:      "Mild conditions allow a short vegetable rotation for fast returns.",
			PlantingWindow: "Immediately",
		})
	}
	if precipMm >= 3 {
		recs = append(recs, Recommendation{
			Crop:           "Taro (Colocasia)",
			Score:          0.70,
			Reasoning:      "Tolerates heavy rain and wet soils better than most field crops.",
			PlantingWindow: "Start of the wet spell",
		})
	}
	if len(recs) < 3 {
		recs = append(recs, Recommendation{
			Crop:           "Coconut-based intercropping",
			Score:          0.65,
			Reasoning:      "Low-risk perennial option that holds value in any weather.",
			PlantingWindow: "Any time this season",
		})
	}

	if len(recs) > 5 {
		recs = recs[:5]
	}
	return recs
}
