package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/fatih/color"
)

var promptColor = color.New(color.FgCyan)

// readLine reads one line without its line terminator. A final line
// without a newline is returned as is; EOF with nothing read is an error.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// GetSimpleText prints prompt to w and reads a single line from reader,
// trimmed of surrounding whitespace.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := promptColor.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := readLine(reader)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm prints "y/N: " and reports whether the answer is exactly "y".
// Anything else, including an empty line or end of input, is a no.
func Confirm(reader *bufio.Reader, w io.Writer) (bool, error) {
	if _, err := promptColor.Fprint(w, "y/N: "); err != nil {
		return false, err
	}
	line, err := readLine(reader)
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return line == "y", nil
}
