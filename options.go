package main

import (
	"errors"
	"strconv"
)

// Cost parameter defaults.
const (
	defaultTimeCost    uint32 = 3
	defaultMemoryBits         = 12 // 2^12 KiB = 4 MiB
	defaultParallelism uint8  = 1
	defaultHashLen     uint32 = 32
)

// Hard limits of the underlying hash primitive.
const (
	maxTimeCost uint64 = 1<<32 - 1

	// Exponent for the largest representable memory cost: the primitive
	// carries the cost in KiB as a 32-bit value.
	maxMemoryBits uint64 = 32
	maxMemoryKiB  uint64 = 1<<32 - 1

	// The primitive runs one lane per thread and carries the lane count
	// as an 8-bit value, so both ceilings coincide here.
	maxThreads uint64 = 255
	maxLanes   uint64 = 255
)

// Options is the validated parameter set for one invocation.
type Options struct {
	TimeCost    uint32
	MemoryKiB   uint32
	Parallelism uint8
	HashLen     uint32
	Variant     Variant
}

func defaultOptions() Options {
	return Options{
		TimeCost:    defaultTimeCost,
		MemoryKiB:   1 << defaultMemoryBits,
		Parallelism: defaultParallelism,
		HashLen:     defaultHashLen,
		Variant:     Argon2i,
	}
}

// parseOptions validates the option tokens that follow the salt argument.
// Each numeric option consumes the next token; a missing or out-of-range
// value is fatal before any hashing is attempted.
func parseOptions(args []string) (Options, error) {
	opts := defaultOptions()

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-m":
			if i >= len(args)-1 {
				return Options{}, errors.New("missing -m argument")
			}
			i++
			n, ok := parseNumeric(args[i], maxMemoryBits)
			if !ok {
				return Options{}, errors.New("bad numeric input for -m")
			}
			memKiB := uint64(1) << n
			if memKiB > maxMemoryKiB {
				return Options{}, errors.New("memory cost overflow")
			}
			opts.MemoryKiB = uint32(memKiB)
		case "-t":
			if i >= len(args)-1 {
				return Options{}, errors.New("missing -t argument")
			}
			i++
			n, ok := parseNumeric(args[i], maxTimeCost)
			if !ok {
				return Options{}, errors.New("bad numeric input for -t")
			}
			opts.TimeCost = uint32(n)
		case "-p":
			if i >= len(args)-1 {
				return Options{}, errors.New("missing -p argument")
			}
			i++
			n, ok := parseNumeric(args[i], min(maxThreads, maxLanes))
			if !ok {
				return Options{}, errors.New("bad numeric input for -p")
			}
			opts.Parallelism = uint8(n)
		case "-h":
			if i >= len(args)-1 {
				return Options{}, errors.New("missing -h argument")
			}
			i++
			// The output length is deliberately not range-checked here;
			// the hash primitive enforces its own digest bounds.
			n, err := strconv.ParseUint(args[i], 10, 32)
			if err != nil {
				return Options{}, errors.New("bad numeric input for -h")
			}
			opts.HashLen = uint32(n)
		case "-d":
			opts.Variant = Argon2id
		default:
			return Options{}, errors.New("unknown argument")
		}
	}

	return opts, nil
}

// parseNumeric parses a decimal token and checks it against (0, max].
// Values that overflow 64 bits fail the parse and are rejected the same
// way as any other malformed input.
func parseNumeric(s string, max uint64) (uint64, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 || n > max {
		return 0, false
	}
	return n, true
}
