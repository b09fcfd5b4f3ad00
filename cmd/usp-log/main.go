// Command usp-log is a tool for viewing and analyzing USP codec capture files.
//
// Capture files are written by usp-gen when run with the --capture flag.
//
// Usage:
//
//	usp-log <command> [flags] <file.ulog>
//
// Commands:
//
//	view     View capture file in human-readable format
//	export   Export capture file to JSONL or CSV format
//	filter   Filter capture file and write to new file
//	stats    Show statistics about the capture file
//
// Examples:
//
//	# View only decoded messages
//	usp-log view --direction in run.ulog
//
//	# View GET requests with frame bytes
//	usp-log view --msg-type GET -v run.ulog
//
//	# Export to CSV
//	usp-log export --format csv -o run.csv run.ulog
//
//	# Keep the traffic of one endpoint
//	usp-log filter --endpoint proto::agent -o agent.ulog run.ulog
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/usp-protocol/usp-go/cmd/usp-log/commands"
)

const usage = `usp-log - USP Codec Capture Analyzer

Usage:
  usp-log <command> [flags] <file.ulog>

Commands:
  view     View capture file in human-readable format
  export   Export capture file to JSONL or CSV format
  filter   Filter capture file and write to new file
  stats    Show statistics about the capture file

Use "usp-log <command> --help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "view":
		err = runView(args)
	case "export":
		err = runExport(args)
	case "filter":
		err = runFilter(args)
	case "stats":
		err = runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newFlagSet(name, synopsis string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usp-log %s - %s\n\nUsage:\n  usp-log %s [flags] <file.ulog>\n\nFlags:\n", name, synopsis, name)
		fs.PrintDefaults()
	}
	return fs
}

func addFilterFlags(fs *pflag.FlagSet, opts *commands.FilterOptions) {
	fs.StringVar(&opts.SessionID, "session", "", "Filter by session ID")
	fs.StringVar(&opts.EndpointID, "endpoint", "", "Filter by to_id or from_id")
	fs.StringVar(&opts.MsgType, "msg-type", "", "Filter by message type (GET, SET_RESP, ...)")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	fs.StringVar(&opts.Layer, "layer", "", "Filter by layer (record, msg)")
	fs.StringVar(&opts.Direction, "direction", "", "Filter by direction (in, out)")
	fs.StringVar(&opts.Category, "category", "", "Filter by category (message, error)")
}

// fileArg returns the single positional argument or prints usage.
func fileArg(fs *pflag.FlagSet) (string, error) {
	if fs.NArg() < 1 {
		fs.Usage()
		return "", fmt.Errorf("capture file path required")
	}
	return fs.Arg(0), nil
}

func runView(args []string) error {
	fs := newFlagSet("view", "View capture file in human-readable format")
	var opts commands.FilterOptions
	addFilterFlags(fs, &opts)
	verbose := fs.BoolP("verbose", "v", false, "Show frame bytes and JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := fileArg(fs)
	if err != nil {
		return err
	}

	filter, err := opts.Build()
	if err != nil {
		return err
	}
	return commands.RunView(path, filter, *verbose, os.Stdout)
}

func runExport(args []string) error {
	fs := newFlagSet("export", "Export capture file to JSONL or CSV format")
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.StringP("output", "o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := fileArg(fs)
	if err != nil {
		return err
	}
	return commands.RunExport(path, *format, *output)
}

func runFilter(args []string) error {
	fs := newFlagSet("filter", "Filter capture file and write to new file")
	var opts commands.FilterOptions
	addFilterFlags(fs, &opts)
	output := fs.StringP("output", "o", "", "Output file (required)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := fileArg(fs)
	if err != nil {
		return err
	}
	if *output == "" {
		fs.Usage()
		return fmt.Errorf("output file (-o) required")
	}

	filter, err := opts.Build()
	if err != nil {
		return err
	}
	count, err := commands.RunFilter(path, *output, filter)
	if err != nil {
		return err
	}
	fmt.Printf("Filtered %d events to %s\n", count, *output)
	return nil
}

func runStats(args []string) error {
	fs := newFlagSet("stats", "Show statistics about the capture file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := fileArg(fs)
	if err != nil {
		return err
	}
	return commands.RunStats(path, os.Stdout)
}
