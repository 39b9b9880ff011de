package wc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Option is one counting mode
type Option int

const (
	ByteCount Option = iota
	LineCount
	WordCount
	CharCount
)

const helpFlag = "help"

// ErrInvalidOption is wrapped by every error about an unrecognised flag token
var ErrInvalidOption = errors.New("invalid option")

// DefaultOptions are used, in this order, when no flags are given
func DefaultOptions() []Option {
	return []Option{ByteCount, LineCount, WordCount}
}

func (o Option) String() string {
	if e, ok := lookup(o); ok {
		return e.name
	}
	return fmt.Sprintf("Option(%d)", int(o))
}

// Partition splits args into flags and paths, keeping the order within each.
// Anything starting with '-' is a flag; nothing is validated here.
func Partition(args []string) (flags, paths []string) {
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			flags = append(flags, arg)
		} else {
			paths = append(paths, arg)
		}
	}
	return flags, paths
}

// Resolve maps flag tokens to options in the order they were given, using fs (see
// BindFlagSet) to know the names.  An empty list resolves to DefaultOptions.
// A help flag anywhere returns pflag.ErrHelp.
func Resolve(fs *pflag.FlagSet, flags []string) ([]Option, error) {
	if len(flags) == 0 {
		return DefaultOptions(), nil
	}
	options := make([]Option, 0, len(flags))
	for _, token := range flags {
		var f *pflag.Flag
		switch {
		case strings.HasPrefix(token, "--") && len(token) > 2:
			f = fs.Lookup(token[2:])
		case !strings.HasPrefix(token, "--") && len(token) == 2:
			f = fs.ShorthandLookup(token[1:])
		}
		if f == nil {
			return nil, fmt.Errorf("%w %q", ErrInvalidOption, token)
		}
		if f.Name == helpFlag {
			return nil, pflag.ErrHelp
		}
		e, ok := lookupName(f.Name)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrInvalidOption, token)
		}
		options = append(options, e.option)
	}
	return options, nil
}
