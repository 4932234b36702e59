package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fractalqb/strptime"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [FORMAT...]",
		Short: "Compile formats and show their programs",
		Long: `Compile formats and show their programs.

Without arguments all formats from the config file are checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkFormats(cmd.OutOrStdout(), root, args)
		},
	}
}

func checkFormats(w io.Writer, root *rootOptions, formats []string) error {
	if len(formats) == 0 {
		for _, name := range root.cfg.Names() {
			formats = append(formats, root.cfg.Formats[name])
		}
		if len(formats) == 0 {
			return fmt.Errorf("no formats to check")
		}
	}
	for _, f := range formats {
		p, err := strptime.Compile(f, strptime.WithPivot(root.cfg.Pivot))
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: %s\n", f, shape(p))
		for _, tok := range p.Tokens() {
			fmt.Fprintf(w, "   %s\n", tok)
		}
		log.Debugf("format %q ok", f)
	}
	return nil
}

func shape(p *strptime.Parser) string {
	switch {
	case p.HasDate() && p.HasTime():
		return "date time"
	case p.HasDate():
		return "date"
	case p.HasTime():
		return "time"
	}
	return "literal"
}
