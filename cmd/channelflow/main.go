package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tmcasey/channelflow/internal/app"
	"github.com/tmcasey/channelflow/internal/constants"
	"github.com/tmcasey/channelflow/internal/log"
	"github.com/tmcasey/channelflow/pkg/config"
)

func main() {
	cfgFile := flag.String("config", "config.yaml", "Path to YAML configuration file")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("channelflow %s\n", constants.Version)
		os.Exit(0)
	}

	// Load configuration
	filename, _ := filepath.Abs(*cfgFile)
	cfg, err := config.NewYAMLProvider(filename).LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration. Did you pass the -config flag? Run with -h for help: %v\n", err)
		os.Exit(1)
	}

	// Set up logging
	if cfg.LogFile != "" {
		err = log.InitWithFile(*debug || cfg.Debug, cfg.LogFile)
	} else {
		err = log.Init(*debug || cfg.Debug)
	}
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Create and run the application
	application := app.New(cfg, log.GetSugaredLogger())
	if err := application.Run(context.Background()); err != nil {
		log.Errorf("Application error: %v", err)
		os.Exit(1)
	}
}
