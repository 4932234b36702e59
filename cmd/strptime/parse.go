package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fractalqb/strptime"
	"github.com/fractalqb/strptime/internal/codec"
)

var errFailLimit = errors.New("fail limit reached")

type parseOptions struct {
	root      *rootOptions
	format    string
	name      string
	output    string
	failLimit int
	comment   string

	fails int
}

func newParseCmd(root *rootOptions) *cobra.Command {
	opts := &parseOptions{root: root}
	cmd := &cobra.Command{
		Use:   "parse (-f FORMAT | -n NAME) [FILE...]",
		Short: "Parse each line of the files with a format",
		Long: `Parse each line of the files with a format.

Reads stdin if no file is given or a file is '-'. Blank lines are
skipped. Writes one record per line to stdout. Exits with an error if
any line does not match.`,
		RunE: func(cmd *cobra.Command, files []string) error {
			flags := cmd.Flags()
			if !flags.Changed("output") {
				opts.output = root.cfg.Output
			}
			if !flags.Changed("fail-limit") {
				opts.failLimit = root.cfg.FailLimit
			}
			return opts.run(cmd.InOrStdin(), cmd.OutOrStdout(), files)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", "",
		"Set the format string")
	flags.StringVarP(&opts.name, "name", "n", "",
		"Use the named format from the config file")
	flags.StringVarP(&opts.output, "output", "o", "text",
		"Set output encoding: text, json or cbor")
	flags.IntVarP(&opts.failLimit, "fail-limit", "l", 0,
		"Abort after that many failed lines, 0 for no limit")
	flags.StringVar(&opts.comment, "comment", "",
		"Skip input lines starting with this prefix")
	cmd.MarkFlagsMutuallyExclusive("format", "name")
	return cmd
}

func (opts *parseOptions) parser() (*strptime.Parser, error) {
	cfg := opts.root.cfg
	switch {
	case opts.format != "":
		return strptime.Compile(opts.format, strptime.WithPivot(cfg.Pivot))
	case opts.name != "":
		return cfg.Parser(opts.name)
	}
	return nil, errors.New("either --format or --name is required")
}

func (opts *parseOptions) run(stdin io.Reader, stdout io.Writer, files []string) error {
	p, err := opts.parser()
	if err != nil {
		return err
	}
	enc, err := codec.NewEncoder(opts.output, stdout)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		files = []string{"-"}
	}
	opts.fails = 0
	for _, f := range files {
		if f == "-" {
			err = opts.parseReader(p, enc, newLineReader("-", stdin, opts.comment))
		} else {
			err = opts.parseFile(p, enc, f)
		}
		if err != nil {
			if errors.Is(err, errFailLimit) {
				log.Errorf("%s after %d failed lines", err, opts.fails)
				break
			}
			return err
		}
	}
	if opts.fails > 0 {
		return fmt.Errorf("%d lines do not match %q", opts.fails, p.Format())
	}
	return nil
}

func (opts *parseOptions) parseFile(p *strptime.Parser, enc codec.Encoder, name string) error {
	r, err := os.Open(name)
	if err != nil {
		return err
	}
	defer r.Close()
	return opts.parseReader(p, enc, newLineReader(name, r, opts.comment))
}

func (opts *parseOptions) parseReader(p *strptime.Parser, enc codec.Encoder, lr *lineReader) error {
	for lr.Next() {
		dt, err := p.Parse(lr.Text())
		if err != nil {
			opts.fails++
			log.Errorf("%s:%d: %s", lr.Name(), lr.Line(), err)
			var perr *strptime.ParseError
			if errors.As(err, &perr) {
				log.Debugf("%s:%d:\n%s", lr.Name(), lr.Line(), perr.Explain())
			}
		}
		rec := codec.NewRecord(lr.Name(), lr.Line(), lr.Text(), dt, err)
		if err = enc.Encode(rec); err != nil {
			return fmt.Errorf("%s:%d: %w", lr.Name(), lr.Line(), err)
		}
		if opts.failLimit > 0 && opts.fails >= opts.failLimit {
			return errFailLimit
		}
	}
	if err := lr.Err(); err != nil {
		return fmt.Errorf("%s:%d: %w", lr.Name(), lr.Line(), err)
	}
	log.Infof("%s: %d lines read", lr.Name(), lr.Line())
	return nil
}
