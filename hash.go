package main

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// hashAndVerify computes the hash, reports the digest, encoded string and
// elapsed wall-clock time, then verifies the fresh encoded string against
// the same password as a self-check. The password is wiped before this
// function returns, on the success path and on every failure path.
func hashAndVerify(eng Engine, opts Options, password, salt []byte, w io.Writer) error {
	defer zeroBytes(password)

	start := time.Now()

	if password == nil {
		return errors.New("password missing")
	}
	if salt == nil {
		return errors.New("salt missing")
	}

	capacity := maxEncodedLen(len(salt), int(opts.HashLen))

	digest, encoded, err := eng.Hash(opts, password, salt)
	if err != nil {
		return err
	}
	if len(encoded) > capacity {
		// The capacity formula is an invariant of the encoding; an
		// excess means hash and sizing disagree, not bad user input.
		return fmt.Errorf("encoded hash needs %d bytes, computed capacity is %d", len(encoded), capacity)
	}

	elapsed := time.Since(start)

	fmt.Fprintf(w, "Hash:\t\t%x\n", digest)
	fmt.Fprintf(w, "Encoded:\t%s\n", encoded)
	fmt.Fprintf(w, "%2.3f seconds\n", elapsed.Seconds())

	ok, err := eng.Verify(encoded, password, opts.Variant)
	if err != nil {
		return fmt.Errorf("verification error: %w", err)
	}
	if !ok {
		return errors.New("verification of freshly computed hash failed")
	}
	fmt.Fprintln(w, "Verification ok")

	return nil
}
