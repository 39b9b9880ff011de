package lib

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Kind tags which source an Input reads from
type Kind int

const (
	NamedFile Kind = iota
	StandardInput
)

// OpenError is returned when a named file can't be opened for reading
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// stdin is read once and replayed for every Open, so each option sees all of it
type stdin struct {
	r    io.Reader
	buf  []byte
	err  error
	read bool
}

func (s *stdin) open() (io.ReadCloser, error) {
	if !s.read {
		s.buf, s.err = io.ReadAll(s.r)
		s.read = true
	}
	if s.err != nil {
		return nil, s.err
	}
	return io.NopCloser(bytes.NewReader(s.buf)), nil
}

// Input is either a named file or standard input
type Input struct {
	Kind Kind
	Path string

	in *stdin
}

// NewInputs turns file arguments into inputs.  With no paths it returns a single
// StandardInput reading from in.
func NewInputs(paths []string, in io.Reader) []Input {
	if len(paths) == 0 {
		return []Input{{Kind: StandardInput, in: &stdin{r: in}}}
	}
	inputs := make([]Input, len(paths))
	for i, p := range paths {
		inputs[i] = Input{Kind: NamedFile, Path: p}
	}
	return inputs
}

// Open returns a fresh handle on the input.  The caller closes it; for standard
// input closing does not touch the process stream.
func (i Input) Open() (io.ReadCloser, error) {
	switch i.Kind {
	case StandardInput:
		if i.in == nil {
			return nil, &OpenError{Path: i.String(), Err: os.ErrInvalid}
		}
		return i.in.open()
	default:
		fd, err := os.Open(i.Path)
		if err != nil {
			return nil, &OpenError{Path: i.Path, Err: err}
		}
		return fd, nil
	}
}

// Format renders counts space separated, followed by the path for named files
func (i Input) Format(counts []uint64) string {
	builder := strings.Builder{}
	for n, c := range counts {
		if n != 0 {
			builder.WriteRune(' ')
		}
		builder.WriteString(strconv.FormatUint(c, 10))
	}
	if i.Kind == NamedFile {
		builder.WriteRune(' ')
		builder.WriteString(i.Path)
	}
	return builder.String()
}

func (i Input) String() string {
	if i.Kind == StandardInput {
		return "standard input"
	}
	return i.Path
}
