// Package wordcount accumulates word frequencies of text into a dictionary.
package wordcount

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/theflywheel/hashdict"
)

// Stdin is the path that selects standard input in CountFiles.
const Stdin = "-"

type Options struct {
	// MinLength skips words with fewer runes.
	MinLength int
	// CaseSensitive keeps the original case of words.
	CaseSensitive bool
}

var DefaultOptions = Options{MinLength: 1}

// Normalize trims leading and trailing runes that are neither letters nor
// digits and, unless caseSensitive is set, lowercases the rest.
func Normalize(word string, caseSensitive bool) string {
	word = strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if !caseSensitive {
		word = strings.ToLower(word)
	}
	return word
}

// Count splits r on whitespace and adds one to the counter of every
// normalized word in d. It returns the number of words counted.
func Count(r io.Reader, d *hashdict.Dictionary[string, int64], opts Options) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)

	n := 0
	for scanner.Scan() {
		word := Normalize(scanner.Text(), opts.CaseSensitive)
		if word == "" || len([]rune(word)) < opts.MinLength {
			continue
		}
		*d.GetOrInsertDefault(word)++
		n++
	}
	return n, scanner.Err()
}

// CountFiles runs Count over every path in turn. Stdin reads standard input.
func CountFiles(paths []string, d *hashdict.Dictionary[string, int64], opts Options) (int, error) {
	total := 0
	for _, path := range paths {
		n, err := countFile(path, d, opts)
		if err != nil {
			return total, err
		}
		slog.Debug("Counted words",
			slog.String("path", path),
			slog.Int("words", n),
			slog.Int("distinct", d.Len()))
		total += n
	}
	return total, nil
}

func countFile(path string, d *hashdict.Dictionary[string, int64], opts Options) (n int, err error) {
	if path == Stdin {
		n, err = Count(os.Stdin, d, opts)
		return n, errors.Wrap(err, "failed to read stdin")
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to open %s", path)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	n, err = Count(f, d, opts)
	return n, errors.Wrapf(err, "failed to read %s", path)
}
