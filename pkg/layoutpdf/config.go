package layoutpdf

// Config holds user options for rendering a layout PDF
type Config struct {
	Debug     bool    // Draw word and line boxes in red
	LayerName string  // Name of the text layer; region frames go on "Regions"
	MaxSide   float64 // Longest page side in points, larger layouts are scaled down
	Font      FontConfig
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Debug:     false,
		LayerName: "Text",
		MaxSide:   14400, // PDF viewers limit pages to 200 inches
		Font:      DefaultFont,
	}
}

// FontConfig contains font settings for text rendering
type FontConfig struct {
	Name        string  // Font name (e.g., "Helvetica")
	Style       string  // Font style ("", "B", "I", "BI")
	Size        float64 // Default font size
	AscentRatio float64 // Vertical positioning ratio
}

// DefaultFont is Helvetica, one of the core PDF fonts that need no embedding
var DefaultFont = FontConfig{
	Name:        "Helvetica",
	Style:       "",
	Size:        10,
	AscentRatio: 0.718,
}
