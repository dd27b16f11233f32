package main

import (
	"flag"
	"os"

	"github.com/dgallion1/termviz/internal/chart/window"
	"github.com/dgallion1/termviz/internal/config"
	"github.com/dgallion1/termviz/internal/logging"
	"github.com/dgallion1/termviz/internal/visualizer"
)

func main() {
	env, err := config.Load()
	if err != nil {
		config.Exitf("visualizer: %v", err)
	}
	log := logging.Init(logging.ParseLevel(env.LogLevel))

	cfg, err := visualizer.ParseConfig(flag.CommandLine, os.Args[1:], env)
	if err != nil {
		config.Exitf("visualizer: %v", err)
	}

	v := &visualizer.Visualizer{
		Out:     os.Stdout,
		In:      os.Stdin,
		Plotter: window.Display{},
		Log:     log,
	}
	if err := v.Run(cfg); err != nil {
		log.Debug("visualize failed", "path", cfg.Path, "error", err)
		config.Exitf("visualizer: %v", err)
	}
}
