package imgexif

import (
	"errors"
	"fmt"
)

// ErrFormat is returned by Decode when the buffer matches no registered
// image format.
var ErrFormat = errors.New("imgexif: unknown image format")

// ErrNoExif is returned when a well-formed image simply carries no Exif
// block. Not every image has metadata, so callers usually treat this as
// an empty result rather than a failure.
var ErrNoExif = errors.New("imgexif: no Exif data found")

// FormatError reports that the input is not a valid encoding of the
// container being decoded.
type FormatError string

func (e FormatError) Error() string { return "imgexif: invalid format: " + string(e) }

// UnsupportedError reports that the input uses a valid but unimplemented
// feature. It only ever appears among Metadata warnings; decoding
// continues past the offending field.
type UnsupportedError string

func (e UnsupportedError) Error() string { return "imgexif: unsupported: " + string(e) }

// A BoundsError reports a read that would run past the end of the
// buffer. Need counts the bytes required at Offset.
type BoundsError struct {
	Offset int64
	Need   int64
	Size   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("imgexif: %d bytes at offset %d exceed buffer of %d bytes",
		e.Need, e.Offset, e.Size)
}
