package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/shapestone/shape-csvtable/pkg/csv"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// parseCommand parses one file and prints the resulting table.
type parseCommand struct {
	env      *env
	file     string
	printRaw bool
}

func addParseCommand(app *kingpin.Application, e *env) {
	cmd := &parseCommand{env: e}
	c := app.Command("parse", "Parse a CSV file and print the table.").Action(cmd.run)
	c.Arg("file", "The CSV file to parse.").Required().StringVar(&cmd.file)
	c.Flag("output", "Output format: table, csv or json.").Short('o').StringVar(&e.flags.Output)
	c.Flag("snapshot", "Restore the raw lines from this snapshot if it exists, otherwise write it after reading the file.").StringVar(&e.flags.Snapshot)
	c.Flag("print-raw", "Print the raw lines before parsing.").BoolVar(&cmd.printRaw)
}

func (cmd *parseCommand) run(_ *kingpin.ParseContext) error {
	e := cmd.env

	lines, err := cmd.loadLines()
	if err != nil {
		return err
	}
	if cmd.printRaw {
		printLines(e.stdout, lines)
	}

	table, err := csv.ParseLinesWithOptions(lines, csv.ReaderOptions{Logger: e.logger})
	if err != nil {
		return errors.Wrapf(err, "parse %s", cmd.file)
	}

	switch e.cfg.Output {
	case "csv":
		_, err = e.stdout.Write(csv.Render(table))
	case "json":
		err = writeJSON(e, table)
	default:
		printTable(e.stdout, table)
	}
	if err != nil {
		return errors.Wrap(err, "write output")
	}

	fmt.Fprintf(e.stderr, "%s: %s rows, %s columns from %s lines (%s)\n",
		cmd.file,
		humanize.Comma(int64(table.Len())),
		humanize.Comma(int64(table.Width())),
		humanize.Comma(int64(len(lines))),
		humanize.Bytes(linesSize(lines)),
	)
	return nil
}

// loadLines reads the raw lines, going through the snapshot when one is configured.
func (cmd *parseCommand) loadLines() ([]string, error) {
	e := cmd.env
	snapshot := e.cfg.Snapshot
	if snapshot == "" {
		return e.store.Load(cmd.file)
	}

	ok, err := e.store.Exists(snapshot)
	if err != nil {
		return nil, err
	}
	if ok {
		level.Info(e.logger).Log("msg", "restoring lines from snapshot", "snapshot", snapshot)
		return e.store.LoadSnapshot(snapshot)
	}

	lines, err := e.store.Load(cmd.file)
	if err != nil {
		return nil, err
	}
	if err := e.store.SaveSnapshot(snapshot, lines); err != nil {
		return nil, err
	}
	level.Info(e.logger).Log("msg", "wrote snapshot", "snapshot", snapshot, "lines", len(lines))
	return lines, nil
}

type jsonTable struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

func writeJSON(e *env, table *csv.Table) error {
	out := jsonTable{Header: table.Header(), Rows: [][]string{}}
	for _, rec := range table.Records() {
		out.Rows = append(out.Rows, rec.Fields())
	}
	if out.Header == nil {
		out.Header = []string{}
	}

	enc := json.NewEncoder(e.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func linesSize(lines []string) uint64 {
	var n uint64
	for _, l := range lines {
		n += uint64(len(l)) + 1
	}
	return n
}
