// Package imgexif extracts Exif metadata from JPEG, TIFF, WebP and PNG
// images and from Fujifilm RAF raw containers, without decoding any
// pixel data.
//
// The decoders operate on whole in-memory buffers rather than streams:
// every offset in the supported containers is relative to the start of
// the file, so random access is the natural model. The package never
// retains or mutates the input buffer.
package imgexif

import "fmt"

// A Region identifies a byte range inside a larger buffer. It never
// owns the bytes it points at.
type Region struct {
	Offset uint32
	Length uint32
}

// Slice returns the bytes the region identifies within data, or a
// *BoundsError if the region overruns the buffer.
func (r Region) Slice(data []byte) ([]byte, error) {
	if uint64(r.Offset)+uint64(r.Length) > uint64(len(data)) {
		return nil, &BoundsError{Offset: int64(r.Offset), Need: int64(r.Length), Size: len(data)}
	}
	return data[r.Offset : r.Offset+r.Length], nil
}

func (r Region) String() string {
	return fmt.Sprintf("[%d:%d]", r.Offset, uint64(r.Offset)+uint64(r.Length))
}

type format struct {
	name, magic string
	decode      func([]byte) (*Metadata, error)
}

var formats []format

// RegisterFormat registers an image format for use by Decode.
// Name is the name of the format, like "jpeg" or "raf".
// Magic is the magic prefix that identifies the format's encoding; it
// can contain "?" wildcards that each match any one byte.
func RegisterFormat(name, magic string, decode func([]byte) (*Metadata, error)) {
	formats = append(formats, format{name, magic, decode})
}

// match reports whether magic matches b. Magic may contain "?" wildcards.
func match(magic string, b []byte) bool {
	if len(b) < len(magic) {
		return false
	}
	for i := 0; i < len(magic); i++ {
		if magic[i] != b[i] && magic[i] != '?' {
			return false
		}
	}
	return true
}

// sniff determines the format of the buffer's data.
func sniff(data []byte) format {
	for _, f := range formats {
		if match(f.magic, data) {
			return f
		}
	}
	return format{}
}

// Decode determines the format of the image in data from its magic
// prefix and extracts the Exif metadata embedded in it. The string
// returned is the format name used during format registration.
//
// Decode returns ErrFormat if the buffer matches no registered format
// and ErrNoExif if the image carries no Exif block at all.
func Decode(data []byte) (*Metadata, string, error) {
	f := sniff(data)
	if f.decode == nil {
		return nil, "", ErrFormat
	}
	m, err := f.decode(data)
	if err != nil {
		return nil, f.name, err
	}
	return m, f.name, nil
}
