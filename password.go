package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/term"
)

const (
	// maxPasswordLen bounds the password buffer. Longer input is read in
	// chunks of this size and only the final chunk is kept.
	maxPasswordLen = 127

	// Environment variable consulted before the input stream, for use in
	// scripts where stdin carries other data.
	passwordEnvVar = "ARGON2CLI_PASSWORD"
)

// zeroBytes overwrites a byte slice with zeros.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// resolvePassword obtains the password from, in order: the environment,
// an interactive no-echo prompt when stdin is a terminal, or the stream.
func resolvePassword(stdin io.Reader) ([]byte, error) {
	if envPass := os.Getenv(passwordEnvVar); envPass != "" {
		return capPassword([]byte(envPass)), nil
	}

	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return promptPassword(f)
	}

	return readPassword(stdin)
}

func promptPassword(f *os.File) ([]byte, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("cannot read password: %w", err)
	}
	return capPassword(password), nil
}

// readPassword drains the stream in chunks of up to maxPasswordLen bytes,
// keeping the last chunk, and strips one trailing line terminator.
func readPassword(r io.Reader) ([]byte, error) {
	password := make([]byte, 0, maxPasswordLen)
	chunk := make([]byte, maxPasswordLen)
	defer zeroBytes(chunk)

	for {
		n, err := io.ReadFull(r, chunk)
		if n > 0 {
			password = append(password[:0], chunk[:n]...)
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			zeroBytes(password[:cap(password)])
			return nil, fmt.Errorf("cannot read password: %w", err)
		}
	}

	if n := len(password); n > 0 && password[n-1] == '\n' {
		password[n-1] = 0
		password = password[:n-1]
	}
	if n := len(password); n > 0 && password[n-1] == '\r' {
		password[n-1] = 0
		password = password[:n-1]
	}

	return password, nil
}

// capPassword truncates an out-of-band password to the buffer bound,
// wiping whatever is cut off.
func capPassword(password []byte) []byte {
	if len(password) > maxPasswordLen {
		zeroBytes(password[maxPasswordLen:])
		password = password[:maxPasswordLen]
	}
	return password
}
