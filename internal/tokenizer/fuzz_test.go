package tokenizer

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func FuzzTokenize(f *testing.F) {
	for _, seed := range []string{
		"",
		"選挙管理委員会",
		"委員会選挙",
		"会っ委員う",
		"選挙管理委員会委員会会",
		"\x80選挙",
		"選\xe6",
	} {
		f.Add(seed)
	}
	tok := newTestTokenizer(f)

	f.Fuzz(func(t *testing.T, input string) {
		counts := make(map[Mode]int)
		for _, mode := range []Mode{ModeA, ModeB, ModeC} {
			ms, err := tok.Tokenize(input, mode, false)
			if errors.Is(err, ErrPath) {
				return
			}
			if err != nil {
				t.Fatalf("Tokenize(%q, %v): %v", input, mode, err)
			}

			// Surfaces cover the input exactly.
			var sb strings.Builder
			prev := 0
			for _, m := range ms {
				if m.Begin != prev || m.End <= m.Begin {
					t.Fatalf("Tokenize(%q, %v): span [%d, %d) after %d", input, mode, m.Begin, m.End, prev)
				}
				if input[m.Begin]&0xC0 == 0x80 {
					t.Fatalf("Tokenize(%q, %v): morpheme begins on continuation byte %d", input, mode, m.Begin)
				}
				sb.WriteString(m.Surface)
				prev = m.End
			}
			if sb.String() != input {
				t.Fatalf("Tokenize(%q, %v) surfaces = %q", input, mode, sb.String())
			}

			again, err := tok.Tokenize(input, mode, false)
			if err != nil || !reflect.DeepEqual(again, ms) {
				t.Fatalf("Tokenize(%q, %v) is not deterministic", input, mode)
			}
			counts[mode] = len(ms)
		}
		if counts[ModeA] < counts[ModeB] || counts[ModeB] < counts[ModeC] {
			t.Errorf("Tokenize(%q) counts A=%d B=%d C=%d, want A >= B >= C", input, counts[ModeA], counts[ModeB], counts[ModeC])
		}
	})
}
