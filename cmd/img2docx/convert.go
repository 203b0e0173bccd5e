package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	img2docx "github.com/alnah/go-img2docx"
	"github.com/alnah/go-img2docx/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput        = errors.New("no input image specified")
	ErrOutputConflict = errors.New("--output names a file but multiple inputs were given")
)

// envAPIKey is the environment variable consulted when neither flag nor
// config supplies an API key.
const envAPIKey = "GEMINI_API_KEY"

// dirPermissions is used when creating output directories.
const dirPermissions = 0o750 // rwxr-x---: owner full, group read+execute

// batchError reports how many conversions failed while keeping the
// individual causes reachable for errors.Is.
type batchError struct {
	errs []error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d conversion(s) failed", len(e.errs))
}

func (e *batchError) Unwrap() []error { return e.errs }

// run executes the CLI with parsed flags and positional inputs. All
// user-facing output goes through env; the returned error determines the
// exit code.
func run(ctx context.Context, flags *cliFlags, inputs []string, env *Environment) error {
	if flags.help {
		printUsage(env.Stderr)
		return nil
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "img2docx %s\n", Version)
		return nil
	}
	if len(inputs) == 0 {
		return ErrNoInput
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	conv, err := buildConverter(cfg, env)
	if err != nil {
		return err
	}

	if flags.output != "" && len(inputs) > 1 && !isDirectory(flags.output) {
		return ErrOutputConflict
	}

	var errs []error
	for _, input := range inputs {
		output, err := resolveOutputPath(input, flags.output, len(inputs), cfg)
		if err != nil {
			fmt.Fprintf(env.Stderr, "%s: %v\n", input, err)
			errs = append(errs, err)
			continue
		}
		if flags.verbose {
			fmt.Fprintf(env.Stderr, "Converting %s -> %s\n", input, output)
		}

		result := conv.Convert(ctx, img2docx.Input{ImagePath: input, OutputPath: output})
		if !result.Success {
			fmt.Fprintf(env.Stderr, "%s: %s\n", input, result.Message)
			errs = append(errs, result.Err)
			continue
		}
		if !flags.quiet {
			fmt.Fprintf(env.Stdout, "%s -> %s\n", input, result.OutputPath)
		}
	}

	if len(errs) > 0 {
		return &batchError{errs: errs}
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config
// values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.format != "" {
		cfg.Output.Format = flags.format
	}
	if flags.model != "" {
		cfg.API.Model = flags.model
	}
	if flags.timeout != "" {
		cfg.API.Timeout = flags.timeout
	}
	if flags.apiKey != "" {
		cfg.API.Key = flags.apiKey
	}
}

// buildConverter assembles library options from the merged config. The
// API key falls back to the environment when flag and config leave it
// empty.
func buildConverter(cfg *config.Config, env *Environment) (Converter, error) {
	apiKey := cfg.API.Key
	if apiKey == "" {
		apiKey = env.Getenv(envAPIKey)
	}

	opts := []img2docx.Option{img2docx.WithAPIKey(apiKey)}
	if cfg.API.Model != "" {
		opts = append(opts, img2docx.WithModel(cfg.API.Model))
	}
	timeout, err := cfg.APITimeout()
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		opts = append(opts, img2docx.WithTimeout(timeout))
	}

	return env.NewConverter(opts...)
}

// resolveOutputPath decides where one converted document goes. An
// explicit --output is used verbatim for a single input and as a
// directory otherwise; without it the document lands next to the input
// (or in the configured default directory) with the format's extension.
func resolveOutputPath(input, outputFlag string, inputCount int, cfg *config.Config) (string, error) {
	name := outputName(input, cfg.Output.Format)

	if outputFlag != "" {
		if inputCount == 1 && !isDirectory(outputFlag) {
			return outputFlag, nil
		}
		if err := os.MkdirAll(outputFlag, dirPermissions); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
		return filepath.Join(outputFlag, name), nil
	}

	if cfg.Output.DefaultDir != "" {
		if err := os.MkdirAll(cfg.Output.DefaultDir, dirPermissions); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
		return filepath.Join(cfg.Output.DefaultDir, name), nil
	}

	return filepath.Join(filepath.Dir(input), name), nil
}

// outputName derives the output file name from the input name and the
// configured format.
func outputName(input, format string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	ext := "." + config.FormatDocx
	if strings.EqualFold(format, config.FormatPDF) {
		ext = "." + config.FormatPDF
	}
	return stem + ext
}

// isDirectory reports whether path exists and is a directory.
func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
