// Command usp-gen encodes USP message descriptions and decodes USP bytes.
//
// Usage:
//
//	usp-gen encode [flags] <description.yaml|.jsonc>
//	usp-gen decode [flags] <file.bin|->
//
// Flags:
//
//	--format string   Output format: binary, json, c-str, c-array
//	--msg             Operate on the bare Msg instead of the Record
//	-o, --output      Output file (default: stdout)
//	--capture string  Append codec events to a capture file (CBOR, .ulog)
//	-v, --verbose     Log codec events to stderr
//
// Examples:
//
//	# Encode a description to a binary Record
//	usp-gen encode -o get.bin get.yaml
//
//	# Embed the encoded Msg in C test code
//	usp-gen encode --msg --format c-array get.yaml
//
//	# Decode a Record captured off the wire
//	usp-gen decode --capture run.ulog get.bin
package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/usp-protocol/usp-go/cmd/usp-gen/commands"
	"github.com/usp-protocol/usp-go/pkg/log"
)

const usage = `usp-gen - USP Record and Msg generator

Usage:
  usp-gen <command> [flags] <input>

Commands:
  encode   Encode a YAML or JSONC message description
  decode   Decode a binary Record or Msg

Use "usp-gen <command> --help" for more information about a command.
`

// flags shared by encode and decode.
type flags struct {
	format  string
	msg     bool
	output  string
	capture string
	verbose bool
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "encode":
		err = run(cmd, args, "YAML or JSONC description", "binary")
	case "decode":
		err = run(cmd, args, "binary input, - for stdin", "json")
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

func run(cmd string, args []string, inputHelp, defaultFormat string) error {
	var f flags
	fs := pflag.NewFlagSet(cmd, pflag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usp-gen %s\n\nUsage:\n  usp-gen %s [flags] <input> (%s)\n\nFlags:\n", cmd, cmd, inputHelp)
		fs.PrintDefaults()
	}
	fs.StringVar(&f.format, "format", defaultFormat, "Output format (binary, json, c-str, c-array)")
	fs.BoolVar(&f.msg, "msg", false, "Operate on the bare Msg instead of the Record")
	fs.StringVarP(&f.output, "output", "o", "", "Output file (default: stdout)")
	fs.StringVar(&f.capture, "capture", "", "Append codec events to this capture file")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Log codec events to stderr")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("input path required")
	}
	input := fs.Arg(0)

	format, err := commands.ParseFormat(f.format)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := commands.Options{
		Format:    format,
		Msg:       f.msg,
		SessionID: uuid.NewString(),
		Source:    input,
		Logger:    logger,
	}

	execute := func(capture log.Logger) error {
		var loggers []log.Logger
		if capture != nil {
			loggers = append(loggers, capture)
		}
		if f.verbose {
			loggers = append(loggers, log.NewSlogAdapter(logger))
		}
		if len(loggers) > 0 {
			opts.Capture = log.NewMultiLogger(loggers...)
		}

		var out bytes.Buffer
		var err error
		switch cmd {
		case "encode":
			err = commands.RunEncode(input, opts, &out)
		case "decode":
			var data []byte
			data, err = readInput(input)
			if err == nil {
				err = commands.RunDecode(data, opts, &out)
			}
		}
		if err != nil {
			return err
		}
		return writeOutput(f.output, out.Bytes())
	}

	if f.capture == "" {
		return execute(nil)
	}
	logger.Debug("capturing codec events", "file", f.capture, "session_id", opts.SessionID)
	return commands.WithCapture(f.capture, execute)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
