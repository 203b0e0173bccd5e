package main

import (
	"context"
	"io"
	"os"

	img2docx "github.com/alnah/go-img2docx"
)

// Converter is the conversion capability the CLI drives.
type Converter interface {
	Convert(ctx context.Context, in img2docx.Input) *img2docx.ConvertResult
}

// Compile-time interface implementation check.
var _ Converter = (*img2docx.Converter)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout       io.Writer
	Stderr       io.Writer
	Getenv       func(string) string
	NewConverter func(opts ...img2docx.Option) (Converter, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
		NewConverter: func(opts ...img2docx.Option) (Converter, error) {
			return img2docx.New(opts...)
		},
	}
}
