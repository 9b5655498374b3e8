// Command progcsv tokenizes conference programme CSV files.
//
// Usage:
//
//	progcsv [-normalize] [-format rows|summary|json] file...
//
// Files are read concurrently and printed in argument order.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/shapestone/shape-progcsv/pkg/csv"
	"github.com/shapestone/shape-progcsv/pkg/programme"
	"golang.org/x/sync/errgroup"
)

const (
	formatRows    = "rows"
	formatSummary = "summary"
	formatJSON    = "json"
)

type config struct {
	format    string
	normalize bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.format, "format", formatSummary, "output format: rows, summary or json")
	flag.BoolVar(&cfg.normalize, "normalize", false, "convert CRLF and CR line endings to LF before tokenizing")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: progcsv [flags] file...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	log.SetFlags(0)
	log.SetPrefix("progcsv: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, flag.Args(), cfg); err != nil {
		log.Print(err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, paths []string, cfg config) error {
	switch cfg.format {
	case formatRows, formatSummary, formatJSON:
	default:
		return fmt.Errorf("unknown format %q", cfg.format)
	}

	opts := csv.DefaultOptions()
	opts.NormalizeNewlines = cfg.normalize

	tables, err := loadAll(ctx, paths, opts)
	if err != nil {
		return err
	}

	for i, path := range paths {
		if err := write(w, path, tables[i], cfg.format); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// loadAll tokenizes every file concurrently. The first failure cancels the
// rest.
func loadAll(ctx context.Context, paths []string, opts csv.Options) ([]csv.Table, error) {
	tables := make([]csv.Table, len(paths))
	group, ctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			table, err := loadFile(path, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			tables[i] = table
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

func loadFile(path string, opts csv.Options) (csv.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return csv.TokenizeReaderWithOptions(f, opts)
}

func write(w io.Writer, path string, table csv.Table, format string) error {
	if format == formatRows {
		for i, row := range table {
			if _, err := fmt.Fprintf(w, "%s:%d: %q\n", path, i+1, []string(row)); err != nil {
				return err
			}
		}
		return nil
	}

	prog, err := programme.Build(table)
	if err != nil {
		return err
	}

	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(prog)
	}

	c := prog.Count()
	_, err = fmt.Fprintf(w, "%s: %d lines, %d days, %d sessions, %d items, %d logos\n",
		path, len(table), c.Days, c.Sessions, c.Items, c.Logos)
	return err
}
