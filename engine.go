package main

import (
	"fmt"
	"strings"

	"github.com/matthewhartstonge/argon2"
)

// Variant selects the memory-addressing scheme of the hash.
type Variant int

const (
	// Argon2i uses data-independent memory access.
	Argon2i Variant = iota
	// Argon2id starts data-independent and switches to data-dependent
	// access, and is the data-dependent member of the family this tool
	// exposes.
	Argon2id
)

func (v Variant) String() string {
	if v == Argon2id {
		return "Argon2id"
	}
	return "Argon2i"
}

// prefix is the tag the encoded credential string must start with.
func (v Variant) prefix() string {
	if v == Argon2id {
		return "$argon2id$"
	}
	return "$argon2i$"
}

// Engine is the hash primitive consumed by the pipeline. The production
// implementation wraps a real memory-hard engine; tests substitute a fake
// that succeeds or fails deterministically.
type Engine interface {
	// Hash derives a digest of opts.HashLen bytes and the encoded
	// credential string embedding the parameters, salt and digest.
	Hash(opts Options, password, salt []byte) (digest []byte, encoded string, err error)

	// Verify checks password against an encoded credential string of the
	// given variant. It returns (false, nil) on a clean mismatch and an
	// error when the string is malformed or of the wrong variant.
	Verify(encoded string, password []byte, v Variant) (bool, error)
}

// argonEngine is the production Engine.
type argonEngine struct{}

func (argonEngine) Hash(opts Options, password, salt []byte) ([]byte, string, error) {
	cfg := argon2.Config{
		HashLength:  opts.HashLen,
		SaltLength:  uint32(len(salt)),
		TimeCost:    opts.TimeCost,
		MemoryCost:  opts.MemoryKiB,
		Parallelism: opts.Parallelism,
		Mode:        mode(opts.Variant),
		Version:     argon2.Version13,
	}

	raw, err := cfg.Hash(password, salt)
	if err != nil {
		return nil, "", err
	}
	return raw.Hash, string(raw.Encode()), nil
}

func (argonEngine) Verify(encoded string, password []byte, v Variant) (bool, error) {
	if !strings.HasPrefix(encoded, v.prefix()) {
		return false, fmt.Errorf("encoded hash is not %s", v)
	}
	return argon2.VerifyEncoded(password, []byte(encoded))
}

func mode(v Variant) argon2.Mode {
	if v == Argon2id {
		return argon2.ModeArgon2id
	}
	return argon2.ModeArgon2i
}

// b64Len is the base64-expanded size of len input bytes, rounded up to
// whole 4-byte groups.
func b64Len(len int) int {
	return (len + 2) / 3 * 4
}

// maxEncodedLen bounds the length of the encoded credential string for a
// given salt and digest length. It must never underestimate.
//
// 55 = len("$argon2id$v=19$m=4294967295,t=4294967295,p=4294967295$$")
//    = len("$argon2id$v=19$m=,t=,p=$$") = 25
//      + 10 digits for the maximum memory cost, 2^32-1
//      + 10 digits for the maximum time cost, 2^32-1
//      + 10 digits for the maximum parallelism, as a 32-bit value
func maxEncodedLen(saltLen, hashLen int) int {
	return 55 + b64Len(saltLen) + b64Len(hashLen)
}
