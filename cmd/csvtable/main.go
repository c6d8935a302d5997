// Command csvtable parses CSV files with the shape-csvtable automaton and
// prints, validates or inspects them.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/afero"

	"github.com/shapestone/shape-csvtable/internal/linestore"
)

// env is shared by every command. It is filled in by setup once the command
// line has been parsed.
type env struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer

	configFile string
	flags      Config

	cfg    Config
	logger log.Logger
	store  *linestore.Store
}

func (e *env) setup(_ *kingpin.ParseContext) error {
	cfg := DefaultConfig()
	if e.configFile != "" {
		fileCfg, err := LoadConfig(e.fs, e.configFile)
		if err != nil {
			return err
		}
		cfg = fileCfg
	}
	cfg.Merge(e.flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(e.stderr, cfg)
	if err != nil {
		return err
	}

	e.cfg = cfg
	e.logger = logger
	e.store = linestore.NewStore(e.fs, linestore.WithLogger(logger))
	level.Debug(logger).Log("msg", "configuration loaded", "config_file", e.configFile, "output", cfg.Output, "snapshot", cfg.Snapshot)
	return nil
}

func newApp(e *env) *kingpin.Application {
	app := kingpin.New("csvtable", "Parse, validate and inspect CSV files.")
	app.UsageWriter(e.stdout)
	app.ErrorWriter(e.stderr)
	app.HelpFlag.Short('h')

	app.Flag("config.file", "YAML file with log_level, log_format, output and snapshot settings.").StringVar(&e.configFile)
	app.Flag("log.level", "Only log messages with the given severity or above: debug, info, warn, error.").StringVar(&e.flags.LogLevel)
	app.Flag("log.format", "Output format of log messages: logfmt or json.").StringVar(&e.flags.LogFormat)
	app.PreAction(e.setup)

	addParseCommand(app, e)
	addValidateCommand(app, e)
	addLinesCommand(app, e)
	return app
}

func run(args []string, fs afero.Fs, stdout, stderr io.Writer) error {
	e := &env{fs: fs, stdout: stdout, stderr: stderr}
	_, err := newApp(e).Parse(args)
	return err
}

func main() {
	if err := run(os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("csvtable:"), err)
		os.Exit(1)
	}
}
