package dic

import (
	"bytes"
	"time"
)

const (
	// SystemDictVersion identifies a system dictionary.
	SystemDictVersion uint64 = 0x7366d3f18bd111e7

	// HeaderSize is the fixed number of bytes occupied by the header.
	HeaderSize = 8 + 8 + descriptionSize

	descriptionSize = 256
)

// Header is the fixed-size preamble of a dictionary file.
type Header struct {
	Version     uint64
	CreateTime  time.Time
	Description string
}

// ParseHeader validates and decodes the header at the start of buf.
func ParseHeader(buf []byte) (*Header, error) {
	if len(buf) < HeaderSize {
		return nil, formatErrorf("header", 0, "dictionary is %d bytes, header needs %d", len(buf), HeaderSize)
	}
	r := newReader(buf[:HeaderSize], 0, "header")
	version, _ := r.u64()
	if version != SystemDictVersion {
		return nil, formatErrorf("header", 0, "unknown version %#x", version)
	}
	created, _ := r.u64()
	desc, _ := r.bytes(descriptionSize)
	if i := bytes.IndexByte(desc, 0); i >= 0 {
		desc = desc[:i]
	}
	return &Header{
		Version:     version,
		CreateTime:  time.Unix(int64(created), 0).UTC(),
		Description: string(desc),
	}, nil
}
