package imgexif

import (
	"encoding/binary"
	"strings"
)

// A Fujifilm RAF container starts with a fixed-layout header. Nothing
// in it is self-describing; the offsets below are the format.
//
//	  0  magic "FUJIFILMCCD-RAW " (16 bytes)
//	 16  format version (4 ASCII bytes)
//	 20  camera number ID (8 ASCII bytes)
//	 28  camera model (32 bytes, NUL padded)
//	 60  reserved (24 bytes)
//	 84  JPEG preview (offset, length)
//	 92  CFA header (offset, length)
//	100  CFA data (offset, length)
//
// The region pairs are big-endian 32-bit integers regardless of the
// byte order later found inside the embedded JPEG's TIFF block.
const (
	rafMagic     = "FUJIFILMCCD-RAW "
	rafHeaderLen = 108

	rafJpegRegion      = 84
	rafCFAHeaderRegion = 92
	rafCFADataRegion   = 100
)

// A RAFHeader is the decoded fixed header of a RAF container. The
// regions are recorded as declared; they are validated against the
// actual buffer only when sliced, so one malformed region does not keep
// the others from being extracted.
type RAFHeader struct {
	Magic         string
	FormatVersion string
	CameraID      string
	CameraModel   string
	Jpeg          Region
	CFAHeader     Region
	CFAData       Region
}

// DecodeRAFHeader reads the fixed-layout header of the RAF container
// in data.
func DecodeRAFHeader(data []byte) (*RAFHeader, error) {
	if len(data) < rafHeaderLen {
		return nil, FormatError("truncated RAF header")
	}
	if string(data[0:8]) != rafMagic[0:8] {
		return nil, FormatError("not a RAF container")
	}
	return &RAFHeader{
		Magic:         string(data[0:16]),
		FormatVersion: string(data[16:20]),
		CameraID:      string(data[20:28]),
		CameraModel: strings.TrimRightFunc(string(data[28:60]), func(r rune) bool {
			return r < 0x20
		}),
		Jpeg:      rafRegion(data, rafJpegRegion),
		CFAHeader: rafRegion(data, rafCFAHeaderRegion),
		CFAData:   rafRegion(data, rafCFADataRegion),
	}, nil
}

func rafRegion(data []byte, off int) Region {
	return Region{
		Offset: binary.BigEndian.Uint32(data[off:]),
		Length: binary.BigEndian.Uint32(data[off+4:]),
	}
}

// DecodeRAF extracts the embedded JPEG preview of the RAF container in
// data and decodes the Exif metadata inside it.
func DecodeRAF(data []byte) (*Metadata, error) {
	h, err := DecodeRAFHeader(data)
	if err != nil {
		return nil, err
	}
	jpeg, err := h.Jpeg.Slice(data)
	if err != nil {
		return nil, err
	}
	return DecodeJPEG(jpeg)
}
