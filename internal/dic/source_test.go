package dic

import (
	"reflect"
	"strings"
	"testing"
)

const testMatrix = `2 2
0 0 0
0 1 10
1 0 -5
1 1 7
`

const testLexicon = `# surface,left,right,cost,pos x6,reading,normalized,dictform,a,b,structure
選挙,1,1,3000,名詞,普通名詞,サ変可能,*,*,*,センキョ,*,*,*,*,*
管理,1,1,3000,名詞,普通名詞,サ変可能,*,*,*,カンリ,*,*,*,*,*
委員,1,1,3000,名詞,普通名詞,一般,*,*,*,イイン,*,*,*,*,*
会,1,1,3000,名詞,普通名詞,一般,*,*,*,カイ,*,*,*,*,*
委員会,1,1,3500,名詞,普通名詞,一般,*,*,*,イインカイ,*,*,2/3,*,*
選挙管理委員会,1,1,2000,名詞,固有名詞,一般,*,*,*,センキョカンリイインカイ,*,*,0/1/2/3,0/1/4,0/1/4
`

func TestReadSources(t *testing.T) {
	b := NewBuilder("from csv")
	if err := ReadMatrix(strings.NewReader(testMatrix), b); err != nil {
		t.Fatalf("ReadMatrix: %v", err)
	}
	if err := ReadLexicon(strings.NewReader(testLexicon), b); err != nil {
		t.Fatalf("ReadLexicon: %v", err)
	}
	data, err := b.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	d, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if c, err := d.Grammar.ConnectCost(1, 0); err != nil || c != -5 {
		t.Errorf("ConnectCost(1, 0) = %d, %v, want -5", c, err)
	}
	if d.Lexicon.Size() != 6 {
		t.Fatalf("Size() = %d, want 6", d.Lexicon.Size())
	}
	wi, err := d.Lexicon.WordInfo(5)
	if err != nil {
		t.Fatalf("WordInfo(5): %v", err)
	}
	if !reflect.DeepEqual(wi.AUnitSplit, []uint32{0, 1, 2, 3}) {
		t.Errorf("AUnitSplit = %v, want [0 1 2 3]", wi.AUnitSplit)
	}
	if !reflect.DeepEqual(wi.BUnitSplit, []uint32{0, 1, 4}) {
		t.Errorf("BUnitSplit = %v, want [0 1 4]", wi.BUnitSplit)
	}
	if wi.ReadingForm != "センキョカンリイインカイ" {
		t.Errorf("ReadingForm = %q", wi.ReadingForm)
	}
	pos, err := d.Grammar.PartOfSpeech(wi.POSID)
	if err != nil || pos[1] != "固有名詞" {
		t.Errorf("PartOfSpeech(%d) = %v, %v", wi.POSID, pos, err)
	}
}

func TestReadSourcesErrors(t *testing.T) {
	tests := []struct {
		name    string
		matrix  string
		lexicon string
	}{
		{"missing size line", "", ""},
		{"bad size line", "2\n", ""},
		{"cost outside matrix", "1 1\n1 0 5\n", ""},
		{"bad cost", "1 1\n0 0 x\n", ""},
		{"short row", "1 1\n", "a,0,0,1\n"},
		{"bad split", "1 1\n", "a,0,0,1,*,*,*,*,*,*,*,*,*,1/x,*,*\n"},
		{"id outside matrix", "1 1\n", "a,1,0,1,*,*,*,*,*,*,*,*,*,*,*,*\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder("")
			err := ReadMatrix(strings.NewReader(tt.matrix), b)
			if err == nil {
				err = ReadLexicon(strings.NewReader(tt.lexicon), b)
			}
			if err == nil {
				t.Error("expected an error")
			}
		})
	}
}
