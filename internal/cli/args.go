package cli

import (
	"errors"
	"fmt"
	"io"

	"uwsgi-log-stats/internal/models"
	"uwsgi-log-stats/internal/shared/validators"

	"github.com/spf13/pflag"
)

const ProgramName = "uwsgi-log-stats"

// ErrHelp is returned when -h/--help was given.
var ErrHelp = pflag.ErrHelp

// Args is the parsed command line.
type Args struct {
	FileName   string `validate:"required"`
	From       string
	To         string
	ConfigPath string
	Window     models.TimeWindow
}

func newFlagSet(args *Args) *pflag.FlagSet {
	fs := pflag.NewFlagSet(ProgramName, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVarP(&args.From, "from", "f", "", "window start, DD-MM-YYYY_HH-MM-SS (trailing time fields may be omitted)")
	fs.StringVarP(&args.To, "to", "t", "", "window end, same format as --from")
	fs.StringVarP(&args.ConfigPath, "config", "c", "", "optional YAML config file")
	return fs
}

// Usage returns the help text.
func Usage() string {
	return fmt.Sprintf("Simple uWSGI logs parser\n\nUsage: %s [flags] file_name\n\nFlags:\n%s",
		ProgramName, newFlagSet(&Args{}).FlagUsages())
}

// ParseArgs parses argv (without the program name). The window is validated
// from first, then to.
func ParseArgs(argv []string) (*Args, error) {
	args := &Args{}
	fs := newFlagSet(args)
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, ErrHelp
		}
		return nil, errInvalidCommandLine(err.Error(), err)
	}

	switch fs.NArg() {
	case 0:
		return nil, errInvalidCommandLine("the following arguments are required: file_name", nil)
	case 1:
		args.FileName = fs.Arg(0)
	default:
		return nil, errInvalidCommandLine(fmt.Sprintf("unrecognized arguments: %v", fs.Args()[1:]), nil)
	}

	if err := validators.New().Struct(args); err != nil {
		return nil, errInvalidCommandLine("file_name must not be empty", err)
	}

	window, err := models.NewTimeWindow(args.From, args.To)
	if err != nil {
		return nil, errInvalidDateTimeArgument(err)
	}
	args.Window = window

	return args, nil
}
