package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/go-kit/log/level"

	"github.com/shapestone/shape-csvtable/pkg/csv"
)

// validateCommand checks each file and reports ok or the first error.
type validateCommand struct {
	env   *env
	files []string
}

func addValidateCommand(app *kingpin.Application, e *env) {
	cmd := &validateCommand{env: e}
	c := app.Command("validate", "Check that CSV files parse.").Action(cmd.run)
	c.Arg("file", "The CSV files to check.").Required().StringsVar(&cmd.files)
}

func (cmd *validateCommand) run(_ *kingpin.ParseContext) error {
	e := cmd.env
	failed := 0
	for _, f := range cmd.files {
		if err := cmd.validate(f); err != nil {
			failed++
			fmt.Fprintf(e.stdout, "%s %s: %v\n", color.RedString("FAIL"), f, err)
			continue
		}
		fmt.Fprintf(e.stdout, "%s   %s\n", color.GreenString("ok"), f)
	}

	level.Debug(e.logger).Log("msg", "validation finished", "files", len(cmd.files), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(cmd.files))
	}
	return nil
}

func (cmd *validateCommand) validate(file string) error {
	lines, err := cmd.env.store.Load(file)
	if err != nil {
		return err
	}
	_, err = csv.ParseLinesWithOptions(lines, csv.ReaderOptions{Logger: cmd.env.logger})
	return err
}
