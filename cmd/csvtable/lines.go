package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"
)

// linesCommand prints the raw lines of a file, numbered the way parse errors
// count them.
type linesCommand struct {
	env  *env
	file string
	save string
}

func addLinesCommand(app *kingpin.Application, e *env) {
	cmd := &linesCommand{env: e}
	c := app.Command("lines", "Print the numbered raw lines of a file.").Action(cmd.run)
	c.Arg("file", "The file to read.").Required().StringVar(&cmd.file)
	c.Flag("save", "Also write the lines, LF-terminated, to this path.").StringVar(&cmd.save)
}

func (cmd *linesCommand) run(_ *kingpin.ParseContext) error {
	e := cmd.env
	lines, err := e.store.Load(cmd.file)
	if err != nil {
		return err
	}
	printLines(e.stdout, lines)

	if cmd.save == "" {
		return nil
	}
	if err := e.store.Save(cmd.save, lines); err != nil {
		return err
	}
	level.Info(e.logger).Log("msg", "saved lines", "path", cmd.save, "lines", len(lines))
	return nil
}

func printLines(w io.Writer, lines []string) {
	digits := len(strconv.Itoa(len(lines)))
	for i, l := range lines {
		fmt.Fprintf(w, "%*d | %s\n", digits, i+1, l)
	}
}
