package dic

// WordInfo is the per-word record stored in the lexicon.
type WordInfo struct {
	Surface        string
	HeadwordLength int
	POSID          int16
	NormalizedForm string
	// DictionaryFormWordID is -1 when the word is its own dictionary form.
	DictionaryFormWordID int32
	ReadingForm          string
	AUnitSplit           []uint32
	BUnitSplit           []uint32
	WordStructure        []uint32
}

func readWordInfo(r *reader) (WordInfo, error) {
	var (
		wi  WordInfo
		err error
	)
	if wi.Surface, err = r.str(); err != nil {
		return wi, err
	}
	hl, err := r.u16()
	if err != nil {
		return wi, err
	}
	wi.HeadwordLength = int(hl)
	if wi.POSID, err = r.i16(); err != nil {
		return wi, err
	}
	if wi.NormalizedForm, err = r.str(); err != nil {
		return wi, err
	}
	if wi.NormalizedForm == "" {
		wi.NormalizedForm = wi.Surface
	}
	if wi.DictionaryFormWordID, err = r.i32(); err != nil {
		return wi, err
	}
	if wi.ReadingForm, err = r.str(); err != nil {
		return wi, err
	}
	if wi.ReadingForm == "" {
		wi.ReadingForm = wi.Surface
	}
	if wi.AUnitSplit, err = r.ids(); err != nil {
		return wi, err
	}
	if wi.BUnitSplit, err = r.ids(); err != nil {
		return wi, err
	}
	if wi.WordStructure, err = r.ids(); err != nil {
		return wi, err
	}
	return wi, nil
}
