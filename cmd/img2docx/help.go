package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: img2docx [flags] <image>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert photographed or scanned documents to DOCX or PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  image    One or more image files (JPEG, PNG, GIF)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>    Output file (single input) or directory")
	fmt.Fprintln(w, "  -f, --format <s>       Output format: docx (default), pdf")
	fmt.Fprintln(w, "  -c, --config <name>    Config file name or path")
	fmt.Fprintln(w, "  -k, --api-key <s>      API key (default: GEMINI_API_KEY env)")
	fmt.Fprintln(w, "  -m, --model <s>        Recognition model override")
	fmt.Fprintln(w, "  -t, --timeout <d>      Recognition timeout (e.g. 30s, 2m)")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
	fmt.Fprintln(w, "  -v, --verbose          Show progress details")
	fmt.Fprintln(w, "      --version          Show version and exit")
	fmt.Fprintln(w, "  -h, --help             Show this message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config files are searched in the current directory and in")
	fmt.Fprintln(w, "<user config dir>/go-img2docx/ (.yaml or .yml extension).")
}
