package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword reads from the terminal without echo; tests replace it.
var readPassword = term.ReadPassword

// askLine writes "question\n> " and returns the next line, trimmed. A final
// line without a newline still counts as an answer.
func askLine(r *bufio.Reader, w io.Writer, question string) (string, error) {
	if _, err := fmt.Fprintf(w, "%s\n> ", question); err != nil {
		return "", err
	}
	line, err := r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// askSecret prompts with label and reads a password from stdin with echo
// off. Callers wipe the returned slice.
func askSecret(w io.Writer, label string) ([]byte, error) {
	if _, err := fmt.Fprintf(w, "%s: ", label); err != nil {
		return nil, err
	}
	secret, err := readPassword(int(os.Stdin.Fd()))
	// echo is off, so the user's Enter never reached the screen
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}
	return secret, nil
}

// askParagraph collects lines until a blank one or EOF and joins them with
// '\n'. Group descriptions are entered this way.
func askParagraph(r *bufio.Reader, w io.Writer, question string) (string, error) {
	if _, err := fmt.Fprintf(w, "%s (finish with an empty line)\n", question); err != nil {
		return "", err
	}

	var b strings.Builder
	for {
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if err != nil {
			break
		}
	}
	return strings.TrimSpace(b.String()), nil
}
