package service

import (
	"bufio"
	"fmt"
	"io"
)

// ResultSink 接收每个测试用例的结果
type ResultSink interface {
	Emit(result int) error
}

// LineSink writes one decimal integer per line.
type LineSink struct {
	w *bufio.Writer
}

var _ ResultSink = (*LineSink)(nil)

func NewLineSink(w io.Writer) *LineSink {
	return &LineSink{w: bufio.NewWriter(w)}
}

func (s *LineSink) Emit(result int) error {
	if _, err := fmt.Fprintln(s.w, result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// Flush pushes buffered results to the underlying writer.
func (s *LineSink) Flush() error {
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush results: %w", err)
	}
	return nil
}
