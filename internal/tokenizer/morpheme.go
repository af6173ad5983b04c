package tokenizer

// Morpheme is one unit of a tokenized sentence.
type Morpheme struct {
	Begin          int      `json:"begin"`
	End            int      `json:"end"`
	Surface        string   `json:"surface"`
	WordID         uint32   `json:"word_id"`
	POSID          int16    `json:"pos_id"`
	PartOfSpeech   []string `json:"pos"`
	NormalizedForm string   `json:"normalized_form"`
	DictionaryForm string   `json:"dictionary_form"`
	ReadingForm    string   `json:"reading_form"`
}

// unit is a resolved word id with its byte span in the input.
type unit struct {
	wordID     uint32
	begin, end int
}

func (t *Tokenizer) morpheme(input string, u unit) (Morpheme, error) {
	wi, err := t.lexicon.WordInfo(u.wordID)
	if err != nil {
		return Morpheme{}, err
	}
	pos, err := t.grammar.PartOfSpeech(wi.POSID)
	if err != nil {
		return Morpheme{}, err
	}
	dictForm := wi.Surface
	if wi.DictionaryFormWordID >= 0 {
		dwi, err := t.lexicon.WordInfo(uint32(wi.DictionaryFormWordID))
		if err != nil {
			return Morpheme{}, err
		}
		dictForm = dwi.Surface
	}
	return Morpheme{
		Begin:          u.begin,
		End:            u.end,
		Surface:        input[u.begin:u.end],
		WordID:         u.wordID,
		POSID:          wi.POSID,
		PartOfSpeech:   pos,
		NormalizedForm: wi.NormalizedForm,
		DictionaryForm: dictForm,
		ReadingForm:    wi.ReadingForm,
	}, nil
}
