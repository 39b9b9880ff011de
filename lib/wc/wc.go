package wc

import (
	"bufio"
	"bytes"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	LineFlag = "lines"
	ByteFlag = "bytes"
	WordFlag = "words"
	CharFlag = "chars"
)

func init() {
	register(ByteCount, ByteFlag, "c", "Count bytes", CountBytes)
	register(LineCount, LineFlag, "l", "Count newlines", CountLines)
	register(WordCount, WordFlag, "w", "Count words", CountWords)
	register(CharCount, CharFlag, "m", "Count characters", CountChars)
}

// CountBytes counts every byte read until EOF
func CountBytes(in io.Reader) (uint64, error) {
	n, err := io.Copy(io.Discard, in)
	return uint64(n), err
}

// CountLines counts '\n' bytes; an unterminated last line isn't a line
func CountLines(in io.Reader) (uint64, error) {
	var lines uint64
	buf := make([]byte, 32*1024)
	for {
		n, err := in.Read(buf)
		lines += uint64(bytes.Count(buf[:n], []byte{'\n'}))
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
	}
}

// only space, tab and newline separate words
func isCountable(b byte) bool {
	return b != ' ' && b != '\t' && b != '\n'
}

// CountWords counts runs of countable bytes.  A word is counted when its run ends,
// or at EOF if the stream ends inside one.
func CountWords(in io.Reader) (uint64, error) {
	buffered := bufio.NewReader(in)
	var words uint64
	inWord := false
	for {
		b, err := buffered.ReadByte()
		if err != nil {
			if inWord {
				words++
			}
			if err == io.EOF {
				return words, nil
			}
			return words, err
		}
		switch countable := isCountable(b); {
		case countable && !inWord:
			inWord = true
		case !countable && inWord:
			inWord = false
			words++
		}
	}
}

// CountChars decodes in as UTF-8 and counts runes.  Invalid bytes decode to
// U+FFFD, one character each.
func CountChars(in io.Reader) (uint64, error) {
	buffered := bufio.NewReader(transform.NewReader(in, unicode.UTF8.NewDecoder()))
	var chars uint64
	for {
		_, size, err := buffered.ReadRune()
		if err == io.EOF {
			return chars, nil
		}
		if err != nil {
			return chars, err
		}
		if size > 0 {
			chars++
		}
	}
}
