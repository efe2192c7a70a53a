package imgexif

import "encoding/binary"

// The Exif block of a JPEG file lives in an APP1 marker segment:
// 0xFF 0xE1, a big-endian segment length that counts itself and the
// payload but not the marker bytes, then the literal "Exif\0\0"
// signature in front of the TIFF structure.
const exifHeader = "Exif\x00\x00"

// FindExif scans jpeg for the APP1/Exif marker segment and returns the
// region of the TIFF structure inside it. The scan is byte-wise rather
// than segment-by-segment to tolerate minor stream irregularities, and
// it skips APP1 segments that carry other payloads (XMP uses the same
// marker). The second return value is false if no Exif segment exists.
func FindExif(jpeg []byte) (Region, bool) {
	for i := 0; i+10 <= len(jpeg); i++ {
		if jpeg[i] != 0xff || jpeg[i+1] != 0xe1 {
			continue
		}
		if string(jpeg[i+4:i+10]) != exifHeader {
			continue
		}
		// The length field covers itself plus the signature, so the
		// TIFF structure is the remaining length-8 bytes.
		n := int(binary.BigEndian.Uint16(jpeg[i+2:])) - 8
		if n < 0 {
			continue
		}
		start := i + 10
		if start+n > len(jpeg) {
			// A declared length past the end of the stream is clamped;
			// the TIFF decoder bounds-checks every read anyway.
			n = len(jpeg) - start
		}
		return Region{Offset: uint32(start), Length: uint32(n)}, true
	}
	return Region{}, false
}

// DecodeJPEG extracts and decodes the Exif metadata of the JPEG image
// in data. It returns ErrNoExif if the image has no APP1/Exif segment.
func DecodeJPEG(data []byte) (*Metadata, error) {
	region, ok := FindExif(data)
	if !ok {
		return nil, ErrNoExif
	}
	return DecodeTIFF(data[region.Offset : region.Offset+region.Length])
}
