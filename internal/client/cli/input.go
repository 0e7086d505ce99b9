package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword so tests never touch
// the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line from reader,
// trimming the trailing newline. A partial line before EOF is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a prompt to w and reads a password from the terminal
// without echo.
func GetPassword(prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// GetChoice prints the numbered options and reads a selection. An empty
// line selects nothing and returns "". Out-of-range or non-numeric input
// is re-prompted.
func GetChoice(reader *bufio.Reader, prompt string, options []string, w io.Writer) (string, error) {
	fmt.Fprintln(w, prompt)
	for i, opt := range options {
		fmt.Fprintf(w, "  %2d. %s\n", i+1, opt)
	}

	for {
		line, err := GetSimpleText(reader, "Pick a number (empty to skip)", w)
		if err != nil {
			return "", err
		}
		if line == "" {
			return "", nil
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintln(w, "Invalid choice")
			continue
		}
		return options[n-1], nil
	}
}

// GetSkillList reads skills one per line until an empty line. Lines are
// trimmed; blank entries end the loop rather than joining the list.
func GetSkillList(reader *bufio.Reader, w io.Writer) ([]string, error) {
	fmt.Fprintln(w, "Enter skills one per line (empty line to finish)")

	var skills []string
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return skills, nil
		}
		skills = append(skills, trimmed)
		if errors.Is(err, io.EOF) {
			return skills, nil
		}
	}
}
