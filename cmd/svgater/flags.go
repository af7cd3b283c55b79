package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line flags.
type cliFlags struct {
	config     string
	mode       string
	suffix     string
	quiet      bool
	verbose    bool
	showConfig bool
	version    bool
	help       bool
}

// parseFlags parses flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("svgater", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.mode, "mode", "m", "", "rewrite mode: class, inline")
	fs.StringVarP(&f.suffix, "suffix", "s", "", "output file name suffix (default \"-updated\")")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show found IDs and timing")
	fs.BoolVar(&f.showConfig, "show-config", false, "print the resolved configuration and exit")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
