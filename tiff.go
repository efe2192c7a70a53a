// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgexif

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// FieldType is the numeric data type code of an IFD entry.
type FieldType uint16

// The supported field types and their codes.
const (
	TypeByte     FieldType = dtByte
	TypeASCII    FieldType = dtASCII
	TypeShort    FieldType = dtShort
	TypeLong     FieldType = dtLong
	TypeRational FieldType = dtRational
)

// Supported reports whether values of this type can be decoded. Entries
// of any other type are retained with an empty Value so that directory
// walking continues.
func (t FieldType) Supported() bool {
	return t >= dtByte && t <= dtRational
}

// A Rational is an unsigned fraction of two 32-bit integers.
type Rational struct {
	Num, Den uint32
}

// A Value is the decoded payload of one IFD entry. Type selects which
// of the payload fields is populated; for an unsupported type code none
// of them are.
type Value struct {
	Type      FieldType
	Bytes     []byte
	Text      string
	Shorts    []uint16
	Longs     []uint32
	Rationals []Rational
}

// A Tag is one decoded directory entry. IFD is the index of the
// directory the entry came from, in decode order: the primary IFD is 0
// and every further directory (chained, or reached through the
// ExifOffset pointer) increments it.
type Tag struct {
	Code  uint16
	Name  string
	IFD   int
	Value Value
}

// Metadata is the result of one decode: the tags of every IFD reached
// from the header, in directory order, plus warnings for the parts that
// could not be decoded (truncated values, unsupported type codes). A
// truncated buffer yields the tags read up to the truncation rather
// than an error.
type Metadata struct {
	LittleEndian bool
	Tags         []Tag
	Warnings     []error
}

// Get returns the first decoded tag with the given code in the given
// IFD, or nil.
func (m *Metadata) Get(code uint16, ifd int) *Tag {
	for i := range m.Tags {
		if m.Tags[i].Code == code && m.Tags[i].IFD == ifd {
			return &m.Tags[i]
		}
	}
	return nil
}

// DecodeTIFF decodes the IFD chain of the TIFF structure in data. The
// buffer must start at the TIFF header; all offsets inside the
// structure are interpreted relative to it.
func DecodeTIFF(data []byte) (*Metadata, error) {
	if len(data) < 8 {
		return nil, FormatError("truncated TIFF header")
	}
	var order binary.ByteOrder
	switch string(data[0:2]) {
	case "II":
		order = binary.LittleEndian
	case "MM":
		order = binary.BigEndian
	default:
		return nil, FormatError("invalid TIFF byte order")
	}
	if order.Uint16(data[2:4]) != 42 {
		return nil, FormatError("invalid TIFF magic number")
	}
	d := &tiffDecoder{buf: data, order: order}
	d.decodeChain(order.Uint32(data[4:8]))
	return &Metadata{
		LittleEndian: string(data[0:2]) == "II",
		Tags:         d.tags,
		Warnings:     d.warns,
	}, nil
}

type tiffDecoder struct {
	buf    []byte
	order  binary.ByteOrder
	tags   []Tag
	warns  []error
	nextNo int // number assigned to the next directory
}

// ensure validates that n bytes can be read at off.
func (d *tiffDecoder) ensure(off, n int64) error {
	if off < 0 || n < 0 || off+n > int64(len(d.buf)) {
		return &BoundsError{Offset: off, Need: n, Size: len(d.buf)}
	}
	return nil
}

// decodeChain walks the linked list of IFDs starting at offset. A next
// offset of 0 or one past the end of the buffer terminates the chain;
// the depth cap keeps a cyclic chain from looping forever.
func (d *tiffDecoder) decodeChain(offset uint32) {
	for depth := 0; offset != 0 && int64(offset) < int64(len(d.buf)); depth++ {
		if depth >= maxIfdDepth {
			d.warns = append(d.warns, FormatError("IFD chain longer than 32 directories"))
			return
		}
		next, ok := d.decodeIFD(offset, true)
		if !ok {
			return
		}
		offset = next
	}
}

// decodeIFD decodes the directory at offset and returns the offset of
// the next one. A truncated directory stops the walk but keeps the
// entries decoded so far (ok == false, tags retained). When follow is
// set, the directory's ExifOffset entry has its sub-IFD enumerated too;
// the sub-IFD itself is walked with follow unset so that pointer tags
// inside it stay plain values.
func (d *tiffDecoder) decodeIFD(offset uint32, follow bool) (next uint32, ok bool) {
	no := d.nextNo
	d.nextNo++
	if err := d.ensure(int64(offset), 2); err != nil {
		d.warns = append(d.warns, err)
		return 0, false
	}
	numTags := int(d.order.Uint16(d.buf[offset:]))
	pos := int64(offset) + 2
	for i := 0; i < numTags; i++ {
		if err := d.ensure(pos, ifdLen); err != nil {
			d.warns = append(d.warns, err)
			return 0, false
		}
		d.decodeEntry(pos, no, follow)
		pos += ifdLen
	}
	if err := d.ensure(pos, 4); err != nil {
		d.warns = append(d.warns, err)
		return 0, false
	}
	return d.order.Uint32(d.buf[pos:]), true
}

// decodeEntry decodes the 12-byte entry at pos. Failures here are
// contained to the single entry: the tag is retained with an empty
// value and a warning, and the walk continues.
func (d *tiffDecoder) decodeEntry(pos int64, ifd int, follow bool) {
	code := d.order.Uint16(d.buf[pos:])
	typ := FieldType(d.order.Uint16(d.buf[pos+2:]))
	count := d.order.Uint32(d.buf[pos+4:])
	tag := Tag{Code: code, Name: tagName(code), IFD: ifd, Value: Value{Type: typ}}

	if !typ.Supported() {
		d.warns = append(d.warns, UnsupportedError(
			fmt.Sprintf("field type %d for %s", typ, tag.Name)))
		d.tags = append(d.tags, tag)
		return
	}
	if count > math.MaxUint32/lengths[typ] {
		d.warns = append(d.warns, FormatError("IFD data too large"))
		d.tags = append(d.tags, tag)
		return
	}

	var raw []byte
	if size := int64(lengths[typ]) * int64(count); size <= 4 {
		// The value fits in the value/offset field itself.
		raw = d.buf[pos+8 : pos+8+size]
	} else {
		valOff := int64(d.order.Uint32(d.buf[pos+8:]))
		if err := d.ensure(valOff, size); err != nil {
			d.warns = append(d.warns, err)
			d.tags = append(d.tags, tag)
			return
		}
		raw = d.buf[valOff : valOff+size]
	}
	tag.Value = d.decodeValue(typ, count, raw)
	d.tags = append(d.tags, tag)

	if follow && code == tExifOffset && typ == TypeLong && count == 1 {
		d.decodeIFD(tag.Value.Longs[0], false)
	}
}

// decodeValue interprets the raw value bytes per the entry's type.
func (d *tiffDecoder) decodeValue(typ FieldType, count uint32, raw []byte) Value {
	v := Value{Type: typ}
	switch typ {
	case TypeByte:
		v.Bytes = raw
	case TypeASCII:
		// TIFF ASCII values are NUL-terminated; trim the terminator
		// and anything after it.
		if i := bytes.IndexByte(raw, 0); i >= 0 {
			raw = raw[:i]
		}
		v.Text = string(raw)
	case TypeShort:
		v.Shorts = make([]uint16, count)
		for i := range v.Shorts {
			v.Shorts[i] = d.order.Uint16(raw[2*i:])
		}
	case TypeLong:
		v.Longs = make([]uint32, count)
		for i := range v.Longs {
			v.Longs[i] = d.order.Uint32(raw[4*i:])
		}
	case TypeRational:
		v.Rationals = make([]Rational, count)
		for i := range v.Rationals {
			v.Rationals[i] = Rational{
				Num: d.order.Uint32(raw[8*i:]),
				Den: d.order.Uint32(raw[8*i+4:]),
			}
		}
	}
	return v
}
