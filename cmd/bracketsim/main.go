// Command bracketsim loads playoff bracket records and reports seed
// survival, peer-group variance, upset frequency, long-haul turnaround
// burden and the mileage a greedy nearest-host re-pairing would save.
//
//	bracketsim analyze --input brackets.yaml --format markdown
//	bracketsim simulate --input brackets.db
//	bracketsim sample --output brackets.yaml --seed 7
//	bracketsim convert --input brackets.csv --output brackets.db
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/quarterback/oregontennis/analysis"
	"github.com/quarterback/oregontennis/bracket"
	"github.com/quarterback/oregontennis/config"
	"github.com/quarterback/oregontennis/ingest"
	"github.com/quarterback/oregontennis/report"
	"github.com/quarterback/oregontennis/sample"
)

const (
	configFlag    = "config"
	logLevelFlag  = "log-level"
	inputFlag     = "input"
	outputFlag    = "output"
	formatFlag    = "format"
	gamesFlag     = "games-csv"
	seedFlag      = "seed"
	fieldSizeFlag = "field-size"
	upsetFlag     = "upset-bias"
	stdoutName    = "-"
)

var version = "v0.1.0-dev"

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "bracketsim:", err)
		os.Exit(1)
	}
}

// env carries what every command needs after the global flags are read.
type env struct {
	cfg    config.Config
	logger *logrus.Logger
	stdout io.Writer
}

func newApp(stdout, stderr io.Writer) *cli.App {
	e := &env{stdout: stdout}
	inputF := &cli.StringFlag{
		Name:     inputFlag,
		Aliases:  []string{"i"},
		Usage:    "bracket records: .yaml, .json, .csv, .db/.sqlite or .html",
		Required: true,
	}
	outputF := &cli.StringFlag{
		Name:    outputFlag,
		Aliases: []string{"o"},
		Usage:   `where to write the result, a file path or "-" for stdout`,
		Value:   stdoutName,
	}
	formatF := &cli.StringFlag{
		Name:    formatFlag,
		Aliases: []string{"f"},
		Usage:   "markdown, yaml or json",
		Value:   string(report.Markdown),
	}

	return &cli.App{
		Name:      "bracketsim",
		Usage:     "playoff travel and competitive-risk analysis",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: configFlag, Aliases: []string{"c"}, Usage: "settings file (default ./bracketsim.yaml when present)"},
			&cli.StringFlag{Name: logLevelFlag, Usage: "overrides log_level from the settings"},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load(c.String(configFlag))
			if err != nil {
				return err
			}
			if lvl := c.String(logLevelFlag); lvl != "" {
				cfg.LogLevel = lvl
			}
			level, err := cfg.Level()
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.logger = logrus.New()
			e.logger.SetOutput(stderr)
			e.logger.SetLevel(level)

			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "analyze",
				Usage: "run every statistic and write a report",
				Flags: []cli.Flag{inputF, outputF, formatF, &cli.StringFlag{
					Name:  gamesFlag,
					Usage: "also export every game with its distance and travel tier as CSV",
				}},
				Action: e.analyze,
			},
			{
				Name:   "simulate",
				Usage:  "run the travel re-pairing simulation only",
				Flags:  []cli.Flag{inputF, outputF, formatF},
				Action: e.simulate,
			},
			{
				Name:  "sample",
				Usage: "generate a synthetic bracket dataset",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: outputFlag, Aliases: []string{"o"}, Usage: "target file; the extension picks the format", Required: true},
					&cli.Int64Flag{Name: seedFlag, Usage: "random seed; 0 draws one", Value: sample.DefaultOptions().Seed},
					&cli.IntFlag{Name: fieldSizeFlag, Usage: "teams per bracket (2-32)", Value: sample.DefaultOptions().FieldSize},
					&cli.Float64Flag{Name: upsetFlag, Usage: "how often the worse seed wins, 0-1", Value: sample.DefaultOptions().UpsetBias},
				},
				Action: e.sample,
			},
			{
				Name:   "convert",
				Usage:  "rewrite bracket records in another format",
				Flags:  []cli.Flag{inputF, &cli.StringFlag{Name: outputFlag, Aliases: []string{"o"}, Required: true}},
				Action: e.convert,
			},
		},
	}
}

func (e *env) load(ctx context.Context, path string) (*bracket.Dataset, error) {
	ds, err := ingest.LoadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	e.logger.WithFields(logrus.Fields{
		"input":     path,
		"games":     ds.Len(),
		"instances": len(ds.Keys()),
	}).Info("dataset loaded")

	return ds, nil
}

func (e *env) analyze(c *cli.Context) error {
	format, err := report.ParseFormat(c.String(formatFlag))
	if err != nil {
		return err
	}
	ds, err := e.load(c.Context, c.String(inputFlag))
	if err != nil {
		return err
	}
	rep, err := analysis.NewRunner(e.cfg, e.logger).Run(c.Context, ds)
	if err != nil {
		return err
	}

	out := openOutput(c.String(outputFlag), e.stdout)
	err = report.Write(out, rep, format)
	if path := c.String(gamesFlag); err == nil && path != "" {
		games := &lazyFile{path: path}
		err = errors.Join(report.WriteGamesCSV(games, ds, e.cfg.Geo(), e.cfg.TurnaroundOptions().Tiers), games.Close())
	}

	return errors.Join(err, out.Close())
}

func (e *env) simulate(c *cli.Context) error {
	format, err := report.ParseFormat(c.String(formatFlag))
	if err != nil {
		return err
	}
	ds, err := e.load(c.Context, c.String(inputFlag))
	if err != nil {
		return err
	}
	sum, err := analysis.NewRunner(e.cfg, e.logger).Simulate(c.Context, ds)
	if err != nil {
		return err
	}

	out := openOutput(c.String(outputFlag), e.stdout)

	return errors.Join(report.WriteSummary(out, sum, format), out.Close())
}

func (e *env) sample(c *cli.Context) error {
	opts := sample.DefaultOptions()
	opts.Seed = c.Int64(seedFlag)
	opts.FieldSize = c.Int(fieldSizeFlag)
	opts.UpsetBias = c.Float64(upsetFlag)
	if need := opts.FieldSize * len(opts.Divisions); opts.Schools < need {
		opts.Schools = need
	}
	games, schools, err := sample.Generate(opts)
	if err != nil {
		return err
	}

	return e.write(c.Context, c.String(outputFlag), ingest.FromGames(games, schools))
}

func (e *env) convert(c *cli.Context) error {
	doc, err := ingest.ReadFile(c.Context, c.String(inputFlag))
	if err != nil {
		return err
	}
	if _, err := doc.Build(); err != nil {
		return err
	}

	return e.write(c.Context, c.String(outputFlag), doc)
}

// write stores doc at path, or prints it as YAML for "-".
func (e *env) write(ctx context.Context, path string, doc ingest.Document) error {
	if path == stdoutName {
		return ingest.Encode(e.stdout, doc)
	}
	if err := ingest.WriteFile(ctx, path, doc); err != nil {
		return err
	}
	e.logger.WithFields(logrus.Fields{
		"output":   filepath.Clean(path),
		"matchups": len(doc.Games),
		"schools":  len(doc.Schools),
	}).Info("records written")

	return nil
}
