package types

import "errors"

// Config holds the options that shape one interpreter run.
type Config struct {
	Mode    string `json:"mode" yaml:"mode"`
	Format  string `json:"format" yaml:"format"`
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`
}

// Interpretation modes.
const (
	// ModeStrict reports malformed values, names, verbs and disciplines.
	ModeStrict = "strict"
	// ModeCompat reproduces stream-extraction semantics: bad numbers push
	// zero, unknown disciplines create queues, unknown verbs act as pop.
	ModeCompat = "compat"
)

// Transcript formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config defaults.
const (
	DefaultMode   = ModeStrict
	DefaultFormat = FormatText
)

// Config validation errors.
var (
	ErrModeUnknown   = errors.New("unknown mode")
	ErrFormatUnknown = errors.New("unknown transcript format")
)

var knownModes = map[string]bool{
	ModeStrict: true,
	ModeCompat: true,
}

var knownFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

// WithDefaults returns a copy of c with empty Mode and Format filled in.
func (c Config) WithDefaults() Config {
	if c.Mode == "" {
		c.Mode = DefaultMode
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	return c
}

// Validate checks that the Config is well-formed. Empty fields are valid
// and take their defaults.
func (c Config) Validate() error {
	c = c.WithDefaults()
	if !knownModes[c.Mode] {
		return ErrModeUnknown
	}
	if !knownFormats[c.Format] {
		return ErrFormatUnknown
	}
	return nil
}

// Strict reports whether c selects strict interpretation.
func (c Config) Strict() bool {
	return c.WithDefaults().Mode == ModeStrict
}
