package dic

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat reports a truncated or malformed dictionary region.
	ErrFormat = errors.New("dic: malformed dictionary")
	// ErrLookup reports a failed lexicon or connection-cost query.
	ErrLookup = errors.New("dic: lookup failed")
	// ErrIO reports an unreadable dictionary file.
	ErrIO = errors.New("dic: cannot read dictionary")
)

func formatErrorf(section string, off int, format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d: %s", ErrFormat, section, off, fmt.Sprintf(format, args...))
}

func lookupErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrLookup, fmt.Sprintf(format, args...))
}
