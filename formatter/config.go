package formatter

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config controls rendering of segment trees.
type Config struct {
	// LineWidth is the maximum output width in fixed-width positions ("en"s).
	// Value labels are truncated to fit. 0 switches truncation off.
	LineWidth int
	// Indent is the number of positions per tree level.
	Indent int
	// Context determines the display width of East Asian characters.
	Context *uax11.Context
	// LeafColor and InnerColor are used for console output.
	LeafColor  *color.Color
	InnerColor *color.Color
	// Label converts a node value to text. Defaults to fmt.Sprint.
	Label func(v any) string
}

// DefaultConfig returns a configuration for fixed-width output of 80 positions.
func DefaultConfig() *Config {
	return &Config{
		LineWidth:  80,
		Indent:     2,
		Context:    uax11.LatinContext,
		LeafColor:  color.New(color.FgBlue),
		InnerColor: color.New(color.FgRed),
		Label:      sprint,
	}
}

func sprint(v any) string {
	return fmt.Sprint(v)
}

func (config *Config) normalized() *Config {
	c := DefaultConfig()
	if config == nil {
		return c
	}
	cfg := *config
	if cfg.Indent <= 0 {
		cfg.Indent = c.Indent
	}
	if cfg.LineWidth < 0 {
		cfg.LineWidth = 0
	}
	if cfg.Context == nil {
		cfg.Context = c.Context
	}
	if cfg.LeafColor == nil {
		cfg.LeafColor = c.LeafColor
	}
	if cfg.InnerColor == nil {
		cfg.InnerColor = c.InnerColor
	}
	if cfg.Label == nil {
		cfg.Label = c.Label
	}
	return &cfg
}

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. The display context is
// derived from the user's environment.
func ConfigFromTerminal() *Config {
	config := DefaultConfig()
	config.Context = uax11.ContextFromEnvironment()
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 80
		} else if w > 20 {
			config.LineWidth = w
		} else {
			config.LineWidth = 20
		}
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
