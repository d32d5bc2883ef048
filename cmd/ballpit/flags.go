package main

import (
	"flag"
	"io"

	"github.com/zeusync/ballpit/internal/config"
)

// parseFlags builds the run configuration: defaults, then the -config file if
// given, then any flag set explicitly on the command line.
func parseFlags(args []string, output io.Writer) (config.Config, error) {
	def := config.Default()

	fs := flag.NewFlagSet("ballpit", flag.ContinueOnError)
	fs.SetOutput(output)

	path := fs.String("config", "", "path to a YAML config file")
	width := fs.Int("width", def.Canvas.Width, "canvas width")
	height := fs.Int("height", def.Canvas.Height, "canvas height")
	regular := fs.Int("regular", def.Population.Regular, "number of regular balls")
	monster := fs.Int("monster", def.Population.Monster, "number of monster balls")
	repellent := fs.Int("repellent", def.Population.Repellent, "number of repellent balls")
	seed := fs.Int64("seed", def.Seed, "random seed, 0 picks one from the clock")
	phrase := fs.String("seed-phrase", def.SeedPhrase, "derive the seed from this phrase")
	maxTicks := fs.Uint64("max-ticks", def.MaxTicks, "stop after this many ticks, 0 for no limit")
	reportEvery := fs.Uint64("report-every", def.ReportEvery, "log progress every n ticks, 0 to disable")
	runs := fs.Int("runs", def.Runs, "number of simulations, seeds increase by one per run")
	parallel := fs.Int("parallel", def.Parallel, "simulations to run at the same time")
	level := fs.String("log-level", def.Log.Level, "debug, info, warn or error")
	format := fs.String("log-format", def.Log.Format, "console or json")

	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := def
	if *path != "" {
		loaded, err := config.Load(*path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Canvas.Width = *width
		case "height":
			cfg.Canvas.Height = *height
		case "regular":
			cfg.Population.Regular = *regular
		case "monster":
			cfg.Population.Monster = *monster
		case "repellent":
			cfg.Population.Repellent = *repellent
		case "seed":
			cfg.Seed = *seed
		case "seed-phrase":
			cfg.SeedPhrase = *phrase
		case "max-ticks":
			cfg.MaxTicks = *maxTicks
		case "report-every":
			cfg.ReportEvery = *reportEvery
		case "runs":
			cfg.Runs = *runs
		case "parallel":
			cfg.Parallel = *parallel
		case "log-level":
			cfg.Log.Level = *level
		case "log-format":
			cfg.Log.Format = *format
		}
	})

	return cfg, cfg.Validate()
}
