package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/zenkeeper/internal/common"
	"github.com/dmitrijs2005/zenkeeper/internal/shared"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
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

// GetSecret prints prompt to w and reads a line from the terminal without
// echo. A newline is printed after the read to keep the UI tidy.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetSecret(prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return nil, err
	}
	secret, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return secret, nil
}

// getToken asks for the API token. It reads without echo on a terminal and
// falls back to a plain line from reader otherwise, so the token can be piped in.
func getToken(reader *bufio.Reader, w io.Writer) (string, error) {
	var token string
	if isTerminal(int(os.Stdin.Fd())) {
		secret, err := GetSecret("Enter API token: ", w)
		if err != nil {
			return "", err
		}
		token = strings.TrimSpace(string(secret))
		shared.WipeByteArray(secret)
	} else {
		line, err := GetSimpleText(reader, "Enter API token", w)
		if err != nil {
			return "", err
		}
		token = line
	}
	if token == "" {
		return "", common.ErrTokenMissing
	}
	return token, nil
}

// splitArgs splits a command line into words. Single or double quotes group
// words containing spaces; quotes themselves are dropped.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		quote   rune
		inToken bool
	)
	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			cur.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inToken = true
		case unicode.IsSpace(r):
			if inToken {
				args = append(args, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated quote %q", quote)
	}
	if inToken {
		args = append(args, cur.String())
	}
	return args, nil
}
