package wc

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"gitlab.com/yarbelk/slimwc/lib"
)

// Errors collects the failures of a run, one per input
type Errors []error

func (es Errors) Error() string {
	builder := strings.Builder{}
	for i, e := range es {
		if i != 0 {
			builder.WriteRune('\n')
		}
		builder.WriteString(e.Error())
	}
	return builder.String()
}

func (es Errors) Unwrap() []error {
	return es
}

// Options is everything Main needs for one run
type Options struct {
	Requested []Option
	Files     []string

	Stdin  io.Reader
	Stdout io.Writer
	Logger *slog.Logger
}

// ResultSet is the counts for one input, in requested order
type ResultSet struct {
	Input  lib.Input
	Counts []uint64
}

func (rs ResultSet) String() string {
	return rs.Input.Format(rs.Counts)
}

// ParseArgs splits args into flags and files and resolves the flags against fs.
// It returns pflag.ErrHelp when help was asked for.
func ParseArgs(fs *pflag.FlagSet, args []string) (Options, error) {
	flags, files := Partition(args)
	requested, err := Resolve(fs, flags)
	if err != nil {
		return Options{}, err
	}
	return Options{Requested: requested, Files: files}, nil
}

// count opens the input and runs one counter over it, closing it whatever happens
func count(input lib.Input, option Option) (uint64, error) {
	e, ok := lookup(option)
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrInvalidOption, option)
	}
	in, err := input.Open()
	if err != nil {
		return 0, err
	}
	defer in.Close()

	return e.count(in)
}

// Count runs every option over input, reopening it for each one
func Count(input lib.Input, options []Option) (ResultSet, error) {
	rs := ResultSet{Input: input, Counts: make([]uint64, 0, len(options))}
	for _, option := range options {
		n, err := count(input, option)
		if err != nil {
			return rs, err
		}
		rs.Counts = append(rs.Counts, n)
	}
	return rs, nil
}

// Main counts each input in turn and prints a line per input.  An input that
// fails is logged and skipped; the failures are returned together once every
// input has been tried.
func Main(options Options) error {
	if len(options.Requested) == 0 {
		options.Requested = DefaultOptions()
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	errs := make(Errors, 0)
	for _, input := range lib.NewInputs(options.Files, options.Stdin) {
		rs, err := Count(input, options.Requested)
		if err != nil {
			logger.Error("cannot count input", "input", input.String(), "err", err)
			errs = append(errs, err)
			continue
		}
		if _, err := fmt.Fprintln(options.Stdout, rs); err != nil {
			return err
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BindFlagSet builds the flag set for the registered options.  It is only used
// for lookups and usage; Resolve keeps the order flags were given in.
func BindFlagSet() *pflag.FlagSet {
	var wcFS *pflag.FlagSet = pflag.NewFlagSet("wc", pflag.ContinueOnError)
	for _, e := range registry {
		wcFS.BoolP(e.name, e.shorthand, false, e.usage)
	}
	wcFS.BoolP(helpFlag, "h", false, "Print this message")
	wcFS.SortFlags = false
	setUsage(wcFS)
	return wcFS
}

func setUsage(wcFS *pflag.FlagSet) {
	wcFS.Usage = func() {

		fmt.Fprint(wcFS.Output(), `Usage: wc [OPTION]... [FILE]...
Print byte, newline and word counts for each FILE, one line per FILE.
A word is a non-zero-length run of characters delimited by space, tab
or newline.

With no FILE, read standard input.

Counts are printed in the order the options are given.  With no options
the byte, newline and word counts are printed, in that order.
`)
		wcFS.PrintDefaults()
	}
}
