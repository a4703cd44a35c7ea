package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hoteldesk/otaparse/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		outDir     string
		enablePDF  bool
		verbose    bool
		configPath string
	)

	flag.StringVar(&outDir, "out", "", "Directory for output files (default: beside each input)")
	flag.BoolVar(&enablePDF, "pdf", false, "Also write a <base>_report.pdf per document")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.StringVar(&configPath, "config", "", "Path to optional YAML config file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] file...\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Extracts booking fields from OTA confirmation documents (Expedia, Agoda)")
		fmt.Fprintln(flag.CommandLine.Output(), "and writes <base>_extracted.txt and <base>_report.html beside each input.")
		fmt.Fprintln(flag.CommandLine.Output(), "\nFlags:")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := app.Config{
		Inputs:    flag.Args(),
		OutDir:    outDir,
		EnablePDF: enablePDF,
		Verbose:   verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("config file failed")
			os.Exit(2)
		}
		app.MergeFileConfig(&cfg, fc)
	}
	app.ApplyEnvToConfig(&cfg)

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if len(cfg.Inputs) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := app.New(cfg).Run(); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: nonzero only when no document was processed;
		// partial batches complete with warnings.
		if errors.Is(err, app.ErrNoDocumentsProcessed) {
			os.Exit(2)
		}
		os.Exit(0)
	}
}
