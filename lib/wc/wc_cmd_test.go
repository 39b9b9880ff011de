package wc_test

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"gitlab.com/yarbelk/slimwc/lib"
	"gitlab.com/yarbelk/slimwc/lib/wc"
)

var _ = Describe("Main", func() {
	var (
		dir    string
		stdout *bytes.Buffer
		stderr *bytes.Buffer
		stdin  *strings.Reader
	)

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
		return path
	}

	run := func(args ...string) error {
		options, err := wc.ParseArgs(wc.BindFlagSet(), args)
		if err != nil {
			return err
		}
		options.Stdin = stdin
		options.Stdout = stdout
		options.Logger = slog.New(slog.NewTextHandler(stderr, nil))
		return wc.Main(options)
	}

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "wc")
		Expect(err).NotTo(HaveOccurred())
		stdout = new(bytes.Buffer)
		stderr = new(bytes.Buffer)
		stdin = strings.NewReader("")
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	Context("with a single file", func() {
		var path string

		BeforeEach(func() {
			path = write("words.txt", "one two\nthree\n")
		})

		It("prints the default counts then the path", func() {
			Expect(run(path)).To(Succeed())
			Expect(stdout.String()).To(Equal("14 2 3 " + path + "\n"))
		})

		It("prints the requested counts in request order", func() {
			Expect(run("-l", "-w", path)).To(Succeed())
			Expect(stdout.String()).To(Equal("2 3 " + path + "\n"))
		})

		It("accepts flags after the path", func() {
			Expect(run(path, "-w", "-c")).To(Succeed())
			Expect(stdout.String()).To(Equal("3 14 " + path + "\n"))
		})

		It("counts characters", func() {
			Expect(run("-m", "-c", path)).To(Succeed())
			Expect(stdout.String()).To(Equal("14 14 " + path + "\n"))
		})

		It("gives the same answer every time", func() {
			Expect(run("-c", path)).To(Succeed())
			Expect(run("-c", path)).To(Succeed())
			Expect(stdout.String()).To(Equal("14 " + path + "\n14 " + path + "\n"))
		})
	})

	Context("with several files", func() {
		It("prints one line per file in argument order", func() {
			a := write("a", "a b c\n")
			b := write("b", "héllo")
			Expect(run("-w", "-m", "-c", b, a)).To(Succeed())
			Expect(stdout.String()).To(Equal("1 5 6 " + b + "\n3 6 6 " + a + "\n"))
		})

		It("keeps going past a file that cannot be opened", func() {
			a := write("a", "a b c\n")
			missing := filepath.Join(dir, "missing")

			err := run("-l", missing, a)

			Expect(err).To(HaveOccurred())
			Expect(stdout.String()).To(Equal("1 " + a + "\n"))
			Expect(stderr.String()).To(ContainSubstring("cannot open " + missing))

			var openErr *lib.OpenError
			Expect(errors.As(err, &openErr)).To(BeTrue())
			Expect(openErr.Path).To(Equal(missing))
			Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
		})

		It("reports a directory that cannot be read", func() {
			err := run("-c", dir)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("is a directory"))
			Expect(stdout.String()).To(BeEmpty())
		})
	})

	Context("with standard input", func() {
		It("prints the default counts without a path", func() {
			stdin = strings.NewReader("one two\nthree\n")
			Expect(run()).To(Succeed())
			Expect(stdout.String()).To(Equal("14 2 3\n"))
		})

		It("applies every option to the whole stream", func() {
			stdin = strings.NewReader("a  b\tc\n")
			Expect(run("-w", "-l", "-m")).To(Succeed())
			Expect(stdout.String()).To(Equal("3 1 7\n"))
		})

		It("counts nothing in an empty stream", func() {
			Expect(run("-w")).To(Succeed())
			Expect(stdout.String()).To(Equal("0\n"))
		})
	})

	Context("with a bad option", func() {
		It("fails before printing anything", func() {
			path := write("a", "a\n")
			err := run("-l", "-z", path)
			Expect(errors.Is(err, wc.ErrInvalidOption)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring(`"-z"`))
			Expect(stdout.String()).To(BeEmpty())
		})
	})

	Context("with no requested options", func() {
		It("falls back to the defaults", func() {
			stdin = strings.NewReader("x y")
			err := wc.Main(wc.Options{Stdin: stdin, Stdout: stdout})
			Expect(err).NotTo(HaveOccurred())
			Expect(stdout.String()).To(Equal("3 0 2\n"))
		})
	})
})

var _ = Describe("Input", func() {
	It("opens standard input once for many reads", func() {
		reads := 0
		in := lib.NewInputs(nil, readCounter{strings.NewReader("abc"), &reads})[0]

		rs, err := wc.Count(in, []wc.Option{wc.ByteCount, wc.CharCount, wc.WordCount})

		Expect(err).NotTo(HaveOccurred())
		Expect(rs.Counts).To(Equal([]uint64{3, 3, 1}))
		Expect(reads).To(BeNumerically("<=", 2))
	})
})

type readCounter struct {
	r     *strings.Reader
	reads *int
}

func (rc readCounter) Read(p []byte) (int, error) {
	*rc.reads++
	return rc.r.Read(p)
}
