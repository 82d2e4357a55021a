package shell

import (
	"bufio"
	"io"
	"strings"
)

// ParseInput splits a command line on whitespace. There is no quoting: an
// argument can never contain a space.
func ParseInput(input string) (name string, args []string) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// ReadScript streams the command lines of a script. Blank lines and lines
// starting with '#' are skipped. It runs asynchronously.
func ReadScript(r io.Reader) (chan string, chan error) {
	lines := make(chan string)
	errs := make(chan error, 1) // Buffered to avoid blocking if receiver stops

	go func() {
		defer close(lines)
		defer close(errs)

		scanner := bufio.NewScanner(r)
		// Large buffer so a pasted file body fits on one echo line
		buf := make([]byte, 0, 64*1024)
		scanner.Buffer(buf, 1024*1024)

		for scanner.Scan() {
			text := strings.TrimSpace(scanner.Text())
			if text == "" || strings.HasPrefix(text, "#") {
				continue
			}
			lines <- text
		}
		if err := scanner.Err(); err != nil {
			errs <- err
		}
	}()

	return lines, errs
}
