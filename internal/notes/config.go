package notes

// MaxNoteLength caps a suggested note; longer suggestions are truncated.
const MaxNoteLength = 120

// Config holds note suggestion settings.
type Config struct {
	// BatchSize is how many words go into a single request.
	BatchSize   int
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the settings used by the CLI.
func DefaultConfig() Config {
	return Config{
		BatchSize:   25,
		MaxTokens:   1024,
		Temperature: 0.4,
	}
}
