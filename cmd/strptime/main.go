// A command line tool to parse dates and times with strptime formats
package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
	"github.com/tliron/commonlog/simple"
	"github.com/tliron/kutil/util"

	"github.com/fractalqb/strptime/internal/config"
)

var (
	logBackend = newLogBackend()
	log        = commonlog.GetLogger("strptime")
)

// newLogBackend installs an unbuffered simple backend. A buffered one is
// flushed by util.Exit hooks only.
func newLogBackend() *simple.Backend {
	b := simple.NewBackend()
	b.Buffered = false
	commonlog.SetBackend(b)
	return b
}

type rootOptions struct {
	config  string
	pivot   pivotFlag
	verbose int
	cfg     *config.Config
}

func newRootCmd() (*cobra.Command, *rootOptions) {
	opts := new(rootOptions)
	cmd := &cobra.Command{
		Use:   "strptime",
		Short: "Parse dates and times with strptime formats",
		Long: `Parse dates and times with strptime formats

Specifiers:
   %Y year, 4 digits     %H hour, 2 digits
   %y year, 2 digits     %M minute, 2 digits
   %m month, 2 digits    %S second, 2 digits
   %d day, 2 digits      %% literal '%'

A format with any of %Y/%y, %m, %d must have all of them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd.ErrOrStderr())
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.config, "config", "",
		"Read named formats and defaults from a YAML or JSONC file")
	flags.Var(&opts.pivot, "pivot",
		"Set the pivot for two-digit years (default 69)")
	flags.CountVarP(&opts.verbose, "verbose", "v",
		"Increase log verbosity")

	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newParseCmd(opts))
	return cmd, opts
}

func (opts *rootOptions) load(logs io.Writer) (err error) {
	commonlog.Configure(opts.verbose, nil)
	if commonlog.AllowLevel(commonlog.Critical) {
		logBackend.Writer = util.NewSyncedWriter(logs)
	}
	if opts.config == "" {
		opts.cfg = config.Default()
	} else if opts.cfg, err = config.LoadFile(opts.config); err != nil {
		return err
	} else {
		log.Infof("loaded %d formats from %s", len(opts.cfg.Formats), opts.config)
	}
	if opts.pivot.set {
		opts.cfg.Pivot = opts.pivot.value
	}
	return nil
}

// pivotFlag is a two-digit year pivot in 0…100
type pivotFlag struct {
	value int
	set   bool
}

var _ pflag.Value = (*pivotFlag)(nil)

func (f *pivotFlag) String() string {
	if !f.set {
		return ""
	}
	return strconv.Itoa(f.value)
}

func (f *pivotFlag) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v < 0 || v > 100 {
		return fmt.Errorf("pivot %d not in 0…100", v)
	}
	f.value, f.set = v, true
	return nil
}

func (f *pivotFlag) Type() string { return "pivot" }

func main() {
	cmd, _ := newRootCmd()
	code := 0
	if err := cmd.Execute(); err != nil {
		code = 1
	}
	util.Exit(code)
}
