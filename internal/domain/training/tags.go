package training

// TagColor is the badge colour pair used to display a session tag.
type TagColor struct {
	BackgroundColor string `json:"backgroundColor" yaml:"background"`
	TextColor       string `json:"textColor" yaml:"text"`
}

// DefaultTagColor is used for tags that are not in the table.
var DefaultTagColor = TagColor{BackgroundColor: "#6E4CB0", TextColor: "#FFFFFF"}

var knownTags = []string{"Brazo", "Pierna", "Pecho", "Espalda", "Hombro", "Cardio", "Abdomen"}

var tagColors = map[string]TagColor{
	"Brazo":   {BackgroundColor: "#29B568", TextColor: "#FFFFFF"},
	"Pierna":  {BackgroundColor: "#2976B5", TextColor: "#FFFFFF"},
	"Pecho":   {BackgroundColor: "#E3D53C", TextColor: "#000000"},
	"Espalda": {BackgroundColor: "#FF6B35", TextColor: "#FFFFFF"},
	"Hombro":  {BackgroundColor: "#8A2BE2", TextColor: "#FFFFFF"},
	"Cardio":  {BackgroundColor: "#00BFFF", TextColor: "#FFFFFF"},
	"Abdomen": {BackgroundColor: "#32CD32", TextColor: "#FFFFFF"},
}

// ResolveColor returns the colour pair for tag. Matching is exact.
func ResolveColor(tag string) TagColor {
	if c, ok := tagColors[tag]; ok {
		return c
	}
	return DefaultTagColor
}

// KnownTags returns the tags that have a dedicated colour, in display order.
func KnownTags() []string {
	out := make([]string, len(knownTags))
	copy(out, knownTags)
	return out
}
