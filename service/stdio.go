// File: stdio.go
// Role: the default CLI transport — one point per line of stdin, one
// model per line of stdout.
package service

import (
	"bufio"
	"fmt"
	"io"
)

// stdioSource reads newline-delimited records from an io.Reader.
type stdioSource struct {
	scanner *bufio.Scanner
}

// NewStdioSource wraps r as a PointSource reading one record per line.
func NewStdioSource(r io.Reader) PointSource {
	return &stdioSource{scanner: bufio.NewScanner(r)}
}

func (s *stdioSource) Next() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return s.scanner.Text(), nil
}

// stdioSink writes newline-delimited records to an io.Writer.
type stdioSink struct {
	w io.Writer
}

// NewStdioSink wraps w as a ModelSink writing one record per line.
func NewStdioSink(w io.Writer) ModelSink {
	return &stdioSink{w: w}
}

func (s *stdioSink) Write(line string) error {
	_, err := fmt.Fprintln(s.w, line)

	return err
}
