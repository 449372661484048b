package main

import (
	"fmt"
	"io"
	"os"
)

// Exit statuses. Missing arguments get their own status so scripts can
// distinguish a usage mistake from a failed hash.
const (
	exitOK          = 0
	exitFailure     = 1
	exitMissingArgs = 2
)

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, argonEngine{}))
}

// realMain runs the whole pipeline and returns the process exit status.
// It never calls os.Exit itself so that deferred password wipes always run.
func realMain(args []string, stdin io.Reader, stdout, stderr io.Writer, eng Engine) int {
	if len(args) < 1 {
		printUsage(stderr)
		return exitMissingArgs
	}
	salt := []byte(args[0])

	password, err := resolvePassword(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	return execute(args[1:], password, salt, eng, stdout, stderr)
}

// execute owns the password buffer from here on: it is wiped on every
// return path, including option-parse failures.
func execute(optArgs []string, password, salt []byte, eng Engine, stdout, stderr io.Writer) int {
	defer zeroBytes(password[:cap(password)])

	opts, err := parseOptions(optArgs)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	fmt.Fprintf(stdout, "Type:\t\t%s\n", opts.Variant)
	fmt.Fprintf(stdout, "Iterations:\t%d \n", opts.TimeCost)
	fmt.Fprintf(stdout, "Memory:\t\t%d KiB\n", opts.MemoryKiB)
	fmt.Fprintf(stdout, "Parallelism:\t%d \n", opts.Parallelism)

	if err := hashAndVerify(eng, opts, password, salt, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
	return exitOK
}

func printUsage(w io.Writer) {
	usage := `Usage:  argon2cli salt [-d] [-t iterations] [-m memory] [-p parallelism] [-h hash length]
	Password is read from stdin
Parameters:
	salt		The salt to use, at most 16 characters
	-d		Use Argon2id instead of Argon2i (which is the default)
	-t N		Sets the number of iterations to N (default = 3)
	-m N		Sets the memory usage of 2^N KiB (default 12)
	-p N		Sets parallelism to N threads (default 1)
	-h N		Sets hash output length to N bytes (default 32)
`
	fmt.Fprint(w, usage)
}
