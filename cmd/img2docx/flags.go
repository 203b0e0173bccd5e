package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the img2docx command.
type cliFlags struct {
	config  string
	output  string
	format  string
	model   string
	apiKey  string
	timeout string
	quiet   bool
	verbose bool
	version bool
	help    bool
}

// parseFlags parses command-line flags and returns positional args
// (the image paths to convert).
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("img2docx", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output file (single input) or directory")
	fs.StringVarP(&f.format, "format", "f", "", "output format: docx, pdf")
	fs.StringVarP(&f.model, "model", "m", "", "recognition model override")
	fs.StringVarP(&f.apiKey, "api-key", "k", "", "API key (default: GEMINI_API_KEY env)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "recognition timeout (e.g. 30s, 2m)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show progress details")
	fs.BoolVar(&f.version, "version", false, "show version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show usage and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
