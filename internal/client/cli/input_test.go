package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  hello \nrest"))

	s, err := GetSimpleText(r, "Enter name", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
	assert.Equal(t, "Enter name\n> ", out.String())

	// partial last line
	s, err = GetSimpleText(r, "again", &out)
	require.NoError(t, err)
	assert.Equal(t, "rest", s)

	_, err = GetSimpleText(r, "eof", &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetPassword_Piped(t *testing.T) {
	stubTerminal(t)
	var out bytes.Buffer

	pw, err := GetPassword(bufio.NewReader(strings.NewReader("s3cret\n")), &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Equal(t, "Enter password: ", out.String())
}

func TestGetPassword_Terminal(t *testing.T) {
	origTerm, origRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = origTerm, origRead })
	isTerminal = func(int) bool { return true }

	readPassword = func(int) ([]byte, error) { return []byte("hidden"), nil }
	var out bytes.Buffer
	pw, err := GetPassword(bufio.NewReader(strings.NewReader("")), &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("hidden"), pw)
	assert.Equal(t, "Enter password: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("no tty") }
	_, err = GetPassword(bufio.NewReader(strings.NewReader("")), &out)
	require.EqualError(t, err, "no tty")
}
