package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

// LineReader reads user input one line at a time.
type LineReader struct {
	reader *bufio.Reader
}

func NewLineReader(in io.Reader) *LineReader {
	return &LineReader{
		reader: bufio.NewReader(in),
	}
}

// ReadLine blocks until a full line is available. The trailing newline is kept.
// Once the input is exhausted it returns an error wrapping io.EOF.
func (that *LineReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := that.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return line, nil
}
