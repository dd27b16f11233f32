// Package visualizer implements the term visualizer command: it loads a term
// document and renders its child terms as a bar chart, in a window when one
// can be opened and as text otherwise.
package visualizer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dgallion1/termviz/internal/chart"
	"github.com/dgallion1/termviz/internal/config"
	"github.com/dgallion1/termviz/internal/termdoc"
)

// ErrGraphicsUnavailable is returned when graphical mode is forced but no
// window can be opened.
var ErrGraphicsUnavailable = errors.New("graphical charts unavailable")

// Usage is printed when no document path is given.
const Usage = "Usage: visualizer <data_json_path>"

// Messages printed in graphical mode when there is nothing to plot.
const (
	msgNoTerms      = "No terms found in data."
	msgEmptyBranch  = "No child terms to visualize in this branch."
	msgPressToClose = "\nPress Enter to close..."
)

// Plotter draws charts graphically.
type Plotter interface {
	// Available probes whether charts can be shown in this environment.
	Available() bool
	// Show displays the chart and blocks until the user dismisses it.
	Show(chart.Chart) error
}

// Visualizer carries the I/O the command runs against.
type Visualizer struct {
	Out     io.Writer
	In      io.Reader // Read for the close prompt; nil skips the prompt
	Plotter Plotter   // nil means no graphical capability
	Log     *slog.Logger
}

// Run prints the usage line when cfg has no path and visualizes it otherwise.
func (v *Visualizer) Run(cfg Config) error {
	if cfg.Path == "" {
		_, err := fmt.Fprintln(v.Out, Usage)
		return err
	}
	return v.Visualize(cfg)
}

// Visualize loads the document at cfg.Path and renders it.
func (v *Visualizer) Visualize(cfg Config) error {
	log := v.logger()

	var (
		doc *termdoc.Document
		err error
	)
	if cfg.Format != "" {
		doc, err = termdoc.LoadFormat(cfg.Path, cfg.Format)
	} else {
		doc, err = termdoc.Load(cfg.Path)
	}
	if err != nil {
		return err
	}
	log.Debug("loaded document", "path", cfg.Path, "term", doc.Term, "terms", len(doc.Terms))

	if len(cfg.Branch) > 0 {
		doc, err = termdoc.Branch(doc, cfg.Branch)
		if err != nil {
			return err
		}
		log.Debug("selected branch", "term", doc.Term)
	}

	graphical, err := v.selectMode(cfg.Mode)
	if err != nil {
		return err
	}
	if graphical {
		return v.renderGraphical(doc)
	}
	return v.renderText(doc, cfg)
}

// selectMode decides between graphical and text rendering. The capability is
// probed at most once.
func (v *Visualizer) selectMode(mode string) (bool, error) {
	log := v.logger()
	switch mode {
	case config.ModeText:
		log.Debug("render mode", "mode", mode)
		return false, nil
	case config.ModeGraphical:
		if !v.available() {
			return false, ErrGraphicsUnavailable
		}
		log.Debug("render mode", "mode", mode)
		return true, nil
	case config.ModeAuto, "":
		ok := v.available()
		log.Debug("graphics capability probed", "available", ok)
		return ok, nil
	default:
		return false, fmt.Errorf("unknown mode %q", mode)
	}
}

func (v *Visualizer) available() bool {
	return v.Plotter != nil && v.Plotter.Available()
}

func (v *Visualizer) renderGraphical(doc *termdoc.Document) error {
	if !doc.HasTerms() {
		_, err := fmt.Fprintln(v.Out, msgNoTerms)
		return err
	}
	if len(doc.Terms) == 0 {
		_, err := fmt.Fprintln(v.Out, msgEmptyBranch)
		return err
	}
	if err := v.Plotter.Show(chart.FromDocument(doc)); err != nil {
		return fmt.Errorf("show chart: %w", err)
	}
	return nil
}

func (v *Visualizer) renderText(doc *termdoc.Document, cfg Config) error {
	if err := chart.RenderText(v.Out, doc, chart.TextOptions{BarWidth: cfg.BarWidth}); err != nil {
		return err
	}
	if cfg.NoPause || v.In == nil {
		return nil
	}
	if _, err := fmt.Fprint(v.Out, msgPressToClose); err != nil {
		return err
	}
	// Any line, or end of input, closes the prompt.
	if _, err := bufio.NewReader(v.In).ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read prompt: %w", err)
	}
	return nil
}

func (v *Visualizer) logger() *slog.Logger {
	if v.Log != nil {
		return v.Log
	}
	return slog.Default()
}
