package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/specialistvlad/compressopts/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// flags is the kong grammar for the command line.
type flags struct {
	Paths     []string `arg:"" name:"path" help:"Option files (.hcl, .json, .yaml, .yml) or directories containing them."`
	Format    string   `short:"f" enum:"hcl,json" default:"json" help:"Output format (${enum})."`
	Output    string   `short:"o" placeholder:"FILE" help:"Write output to FILE instead of stdout."`
	LogFormat string   `name:"log-format" enum:"text,json,pretty" default:"text" help:"Log output format (${enum})."`
	LogLevel  string   `name:"log-level" enum:"debug,info,warn,error" default:"info" help:"Logging level (${enum})."`
	Workers   int      `short:"w" default:"4" help:"Number of files translated concurrently."`
}

const description = `Translate terser-style compressor options into canonical compress options.

Every PATH is read as HCL, JSON or YAML by extension. Directories are searched
recursively. A single file produces one document; several produce one document
per source path.`

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var cli flags
	exited := false
	parser, err := kong.New(&cli,
		kong.Name("compressopts"),
		kong.Description(description),
		kong.Writers(output, output),
		kong.Exit(func(int) { exited = true }),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if len(args) == 0 {
		slog.Debug("No path provided, printing usage and exiting.")
		args = []string{"--help"}
	}

	_, err = parser.Parse(args)
	if exited {
		return nil, true, nil
	}
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.", "paths", cli.Paths)

	config, err := app.NewConfig(app.Config{
		Paths:       cli.Paths,
		Format:      strings.ToLower(cli.Format),
		OutputPath:  cli.Output,
		LogFormat:   strings.ToLower(cli.LogFormat),
		LogLevel:    strings.ToLower(cli.LogLevel),
		WorkerCount: cli.Workers,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
