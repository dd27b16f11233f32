package main

import (
	"os"

	"github.com/dgallion1/termviz/internal/calc"
	"github.com/dgallion1/termviz/internal/config"
)

func main() {
	if err := calc.Demo(os.Stdout); err != nil {
		config.Exitf("calculator: %v", err)
	}
}
