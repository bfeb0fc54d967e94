// Package input tokenizes the line-oriented text input of the puzzles.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"puzzlekit/internal/puzzle/domain"
)

var (
	ErrUnexpectedEnd  = errors.New("unexpected end of input")
	ErrMalformedInput = errors.New("malformed input")
)

// DefaultMaxTokenSize mirrors config.DefaultMaxTokenSize.
const DefaultMaxTokenSize = 1 << 20

// maxPrealloc bounds the capacity reserved up front from an untrusted count.
const maxPrealloc = 1 << 16

type Options struct {
	MaxTokenSize int
}

// tokenReader hands out whitespace-separated tokens and counts them so
// errors can point at the offending one.
type tokenReader struct {
	scanner *bufio.Scanner
	index   int
}

func newTokenReader(r io.Reader, opts Options) *tokenReader {
	maxSize := opts.MaxTokenSize
	if maxSize <= 0 {
		maxSize = DefaultMaxTokenSize
	}
	initial := 64 * 1024
	if initial > maxSize {
		initial = maxSize
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initial), maxSize)
	scanner.Split(bufio.ScanWords)
	return &tokenReader{scanner: scanner}
}

func (t *tokenReader) next(what string) (string, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read %s (token %d): %w", what, t.index+1, err)
		}
		return "", fmt.Errorf("%s (token %d): %w", what, t.index+1, ErrUnexpectedEnd)
	}
	t.index++
	return t.scanner.Text(), nil
}

func (t *tokenReader) nextInt(what string) (int, error) {
	tok, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%s (token %d) %q is not an integer: %w", what, t.index, tok, ErrMalformedInput)
	}
	return v, nil
}

func (t *tokenReader) nextCount(what string) (int, error) {
	n, err := t.nextInt(what)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%s (token %d) must not be negative, got %d: %w", what, t.index, n, ErrMalformedInput)
	}
	return n, nil
}

// ReadSequence reads a length n followed by n integers.
func ReadSequence(r io.Reader, opts Options) ([]int, error) {
	tr := newTokenReader(r, opts)

	n, err := tr.nextCount("sequence length")
	if err != nil {
		return nil, err
	}

	seq := make([]int, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		v, err := tr.nextInt(fmt.Sprintf("element %d", i+1))
		if err != nil {
			return nil, err
		}
		seq = append(seq, v)
	}
	return seq, nil
}

// ReadDigitCases reads a case count T followed by T digit strings.
func ReadDigitCases(r io.Reader, opts Options) ([]string, error) {
	tr := newTokenReader(r, opts)

	count, err := tr.nextCount("case count")
	if err != nil {
		return nil, err
	}

	cases := make([]string, 0, min(count, maxPrealloc))
	for i := 0; i < count; i++ {
		tok, err := tr.next(fmt.Sprintf("case %d", i+1))
		if err != nil {
			return nil, err
		}
		if !domain.IsDigitString(tok) {
			return nil, fmt.Errorf("case %d (token %d) %q is not a digit string: %w", i+1, tr.index, tok, ErrMalformedInput)
		}
		cases = append(cases, tok)
	}
	return cases, nil
}
