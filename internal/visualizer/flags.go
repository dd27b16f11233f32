package visualizer

import (
	"flag"
	"fmt"
	"strings"

	"github.com/dgallion1/termviz/internal/config"
	"github.com/dgallion1/termviz/internal/termdoc"
)

// Config holds the options of one visualizer invocation.
type Config struct {
	Path     string   // Document path; empty prints usage
	Format   string   // Loader override ("json", "md", ...); empty picks by extension
	Mode     string   // auto, text or graphical
	Branch   []string // Child-term path to visualize instead of the root
	BarWidth int
	NoPause  bool
}

// ParseConfig parses flags into a Config, using env for defaults.
func ParseConfig(fs *flag.FlagSet, args []string, env config.Config) (Config, error) {
	cfg := Config{
		Mode:     env.Mode,
		BarWidth: env.BarWidth,
		NoPause:  env.NoPause,
	}
	var branch string
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "render mode: auto, text or graphical")
	fs.StringVar(&cfg.Format, "format", "", "document format (json, md, html, docx, pdf, txt); default from file extension")
	fs.StringVar(&branch, "branch", "", "slash-separated child term path to visualize, e.g. goroutine/stack")
	fs.IntVar(&cfg.BarWidth, "bar-width", cfg.BarWidth, "widest text-mode bar in characters")
	fs.BoolVar(&cfg.NoPause, "no-pause", cfg.NoPause, "do not wait for Enter after a text chart")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if fs.NArg() > 1 {
		return Config{}, fmt.Errorf("expected one document path, got %d arguments", fs.NArg())
	}
	cfg.Path = fs.Arg(0)
	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))
	cfg.Branch = termdoc.ParseBranch(branch)
	if cfg.Path == "" {
		// Only the usage line is printed; the options are never used.
		return cfg, nil
	}

	check := config.Config{Mode: cfg.Mode, BarWidth: cfg.BarWidth}
	if err := check.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
