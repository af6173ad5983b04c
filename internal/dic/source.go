package dic

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Lexicon CSV columns.
const (
	colSurface = iota
	colLeftID
	colRightID
	colCost
	colPOS
	colReading     = colPOS + POSDepth
	colNormalized  = colReading + 1
	colDictForm    = colNormalized + 1
	colAUnitSplit  = colDictForm + 1
	colBUnitSplit  = colAUnitSplit + 1
	colStructure   = colBUnitSplit + 1
	lexiconColumns = colStructure + 1
)

// ReadMatrix reads a MeCab-style matrix.def: a "left right" size line
// followed by "prevRight nextLeft cost" lines.
func ReadMatrix(r io.Reader, b *Builder) error {
	s := bufio.NewScanner(r)
	line := 0
	sized := false
	for s.Scan() {
		line++
		fields := strings.Fields(s.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if !sized {
			if len(fields) != 2 {
				return fmt.Errorf("matrix line %d: want \"left right\", got %q", line, s.Text())
			}
			left, err1 := strconv.Atoi(fields[0])
			right, err2 := strconv.Atoi(fields[1])
			if err := errors.Join(err1, err2); err != nil {
				return fmt.Errorf("matrix line %d: %w", line, err)
			}
			if err := b.SetMatrixSize(left, right); err != nil {
				return fmt.Errorf("matrix line %d: %w", line, err)
			}
			sized = true
			continue
		}
		if len(fields) != 3 {
			return fmt.Errorf("matrix line %d: want 3 fields, got %d", line, len(fields))
		}
		prev, err1 := strconv.Atoi(fields[0])
		next, err2 := strconv.Atoi(fields[1])
		cost, err3 := strconv.ParseInt(fields[2], 10, 16)
		if err := errors.Join(err1, err2, err3); err != nil {
			return fmt.Errorf("matrix line %d: %w", line, err)
		}
		if err := b.SetConnectCost(prev, next, int16(cost)); err != nil {
			return fmt.Errorf("matrix line %d: %w", line, err)
		}
	}
	if err := s.Err(); err != nil {
		return err
	}
	if !sized {
		return fmt.Errorf("matrix: missing size line")
	}
	return nil
}

// ReadLexicon reads lexicon CSV rows into b. Word ids are the zero-based row
// numbers, which is what split columns refer to.
func ReadLexicon(r io.Reader, b *Builder) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = lexiconColumns
	cr.Comment = '#'
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("lexicon: %w", err)
		}
		line, _ := cr.FieldPos(0)
		w, err := parseWordEntry(rec)
		if err != nil {
			return fmt.Errorf("lexicon line %d: %w", line, err)
		}
		if _, err := b.AddWord(w); err != nil {
			return fmt.Errorf("lexicon line %d: %w", line, err)
		}
	}
}

func parseWordEntry(rec []string) (WordEntry, error) {
	var w WordEntry
	left, err1 := strconv.ParseInt(rec[colLeftID], 10, 16)
	right, err2 := strconv.ParseInt(rec[colRightID], 10, 16)
	cost, err3 := strconv.ParseInt(rec[colCost], 10, 16)
	if err := errors.Join(err1, err2, err3); err != nil {
		return w, err
	}
	w.Surface = rec[colSurface]
	w.LeftID, w.RightID, w.Cost = int16(left), int16(right), int16(cost)
	w.POS = append([]string(nil), rec[colPOS:colPOS+POSDepth]...)
	w.ReadingForm = optional(rec[colReading])
	w.NormalizedForm = optional(rec[colNormalized])

	w.DictionaryFormWordID = -1
	if v := optional(rec[colDictForm]); v != "" {
		id, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return w, fmt.Errorf("dictionary form: %w", err)
		}
		w.DictionaryFormWordID = int32(id)
	}

	var err error
	if w.AUnitSplit, err = parseIDList(rec[colAUnitSplit]); err != nil {
		return w, fmt.Errorf("a-unit split: %w", err)
	}
	if w.BUnitSplit, err = parseIDList(rec[colBUnitSplit]); err != nil {
		return w, fmt.Errorf("b-unit split: %w", err)
	}
	if w.WordStructure, err = parseIDList(rec[colStructure]); err != nil {
		return w, fmt.Errorf("word structure: %w", err)
	}
	return w, nil
}

func optional(s string) string {
	if s == "*" {
		return ""
	}
	return s
}

func parseIDList(s string) ([]uint32, error) {
	s = optional(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, "/")
	ids := make([]uint32, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, err
		}
		ids[i] = uint32(v)
	}
	return ids, nil
}
