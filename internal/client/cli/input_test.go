package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/zenkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
	if out.String() != "Name?\n> " {
		t.Fatalf("prompt = %q", out.String())
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	if err == nil {
		t.Fatal("expected EOF error on empty input")
	}
}

func TestGetSecret_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetSecret("Token: ", &out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func stubTerminal(t *testing.T, tty bool, secret string) {
	t.Helper()
	origTTY, origRead := isTerminal, readPassword
	isTerminal = func(int) bool { return tty }
	readPassword = func(int) ([]byte, error) { return []byte(secret), nil }
	t.Cleanup(func() { isTerminal, readPassword = origTTY, origRead })
}

func TestGetToken(t *testing.T) {
	t.Run("terminal", func(t *testing.T) {
		stubTerminal(t, true, " secret-token \n")
		var out bytes.Buffer
		tok, err := getToken(rdr(""), &out)
		require.NoError(t, err)
		assert.Equal(t, "secret-token", tok)
		assert.Contains(t, out.String(), "Enter API token")
	})

	t.Run("piped", func(t *testing.T) {
		stubTerminal(t, false, "")
		var out bytes.Buffer
		tok, err := getToken(rdr("piped-token\n"), &out)
		require.NoError(t, err)
		assert.Equal(t, "piped-token", tok)
	})

	t.Run("empty", func(t *testing.T) {
		stubTerminal(t, true, "   ")
		var out bytes.Buffer
		_, err := getToken(rdr(""), &out)
		require.ErrorIs(t, err, common.ErrTokenMissing)
	})
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		in      string
		want    []string
		wantErr bool
	}{
		{in: "", want: nil},
		{in: "  sync  ", want: []string{"sync"}},
		{in: `transactions -payee "Corner Shop" -min 10`, want: []string{"transactions", "-payee", "Corner Shop", "-min", "10"}},
		{in: `addtx -comment 'it''s'`, want: []string{"addtx", "-comment", "its"}},
		{in: `suggest -payee ""`, want: []string{"suggest", "-payee", ""}},
		{in: `deltx "abc`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := splitArgs(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
