package dic

import (
	"encoding/binary"
	"unicode/utf8"
)

// reader walks a dictionary region in little-endian order. Every read is
// bounds-checked and reports the section name on failure.
type reader struct {
	buf     []byte
	off     int
	section string
}

func newReader(buf []byte, off int, section string) *reader {
	return &reader{buf: buf, off: off, section: section}
}

func (r *reader) need(n int) error {
	if n < 0 || r.off < 0 || r.off+n > len(r.buf) {
		return formatErrorf(r.section, r.off, "need %d bytes, have %d", n, max(len(r.buf)-r.off, 0))
	}
	return nil
}

func (r *reader) bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) u8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.off]
	r.off++
	return v, nil
}

func (r *reader) u16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v, nil
}

func (r *reader) i16() (int16, error) {
	v, err := r.u16()
	return int16(v), err
}

func (r *reader) u32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v, nil
}

func (r *reader) i32() (int32, error) {
	v, err := r.u32()
	return int32(v), err
}

func (r *reader) u64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.buf[r.off:])
	r.off += 8
	return v, nil
}

// str reads a u16 length-prefixed UTF-8 string.
func (r *reader) str() (string, error) {
	n, err := r.u16()
	if err != nil {
		return "", err
	}
	start := r.off
	b, err := r.bytes(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", formatErrorf(r.section, start, "invalid UTF-8 string")
	}
	return string(b), nil
}

// ids reads a u8 length-prefixed list of i32 word ids.
func (r *reader) ids() ([]uint32, error) {
	n, err := r.u8()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]uint32, n)
	for i := range out {
		v, err := r.i32()
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, formatErrorf(r.section, r.off-4, "negative word id %d", v)
		}
		out[i] = uint32(v)
	}
	return out, nil
}
