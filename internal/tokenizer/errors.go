package tokenizer

import (
	"errors"

	"wakachi/internal/dic"
	"wakachi/internal/lattice"
)

// ErrInvalidMode reports a mode string outside A, B and C.
var ErrInvalidMode = errors.New("invalid mode")

// Failures surfaced by Load and Tokenize.
var (
	ErrDictionaryFormat = dic.ErrFormat
	ErrIO               = dic.ErrIO
	ErrLookup           = dic.ErrLookup
	ErrPath             = lattice.ErrNoPath
	ErrMissingWordID    = lattice.ErrMissingWordID
)
