package tokenizer

import (
	"fmt"

	"wakachi/internal/dic"
)

// Mode selects the segmentation granularity.
//
//	A: 選挙/管理/委員/会
//	B: 選挙/管理/委員会
//	C: 選挙管理委員会
type Mode int

const (
	// ModeA yields the shortest units.
	ModeA Mode = iota
	// ModeB yields middle units, close to everyday words.
	ModeB
	// ModeC yields the longest units the dictionary knows, e.g. named entities.
	ModeC
)

// ParseMode parses a single case-insensitive mode letter.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "A", "a":
		return ModeA, nil
	case "B", "b":
		return ModeB, nil
	case "C", "c":
		return ModeC, nil
	}
	return 0, fmt.Errorf("%w %q: must be one of \"A\", \"B\" or \"C\" (in lower or upper case)", ErrInvalidMode, s)
}

func (m Mode) String() string {
	switch m {
	case ModeA:
		return "A"
	case ModeB:
		return "B"
	case ModeC:
		return "C"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// MarshalText lets modes appear as letters in JSON.
func (m Mode) MarshalText() ([]byte, error) {
	if m < ModeA || m > ModeC {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText parses a mode letter.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// selectSplit returns the decomposition of wi used by m. Mode C never splits.
func selectSplit(wi dic.WordInfo, m Mode) []uint32 {
	switch m {
	case ModeA:
		return wi.AUnitSplit
	case ModeB:
		return wi.BUnitSplit
	}
	return nil
}
