package imgexif

import "encoding/binary"

const pngHeader = "\x89PNG\r\n\x1a\n"

// decodepng walks the chunks of a PNG stream to the eXIf chunk, which
// holds a bare TIFF structure. Chunk CRCs are not verified; this is a
// metadata reader, not an integrity checker.
func decodepng(data []byte) (*Metadata, error) {
	if len(data) < len(pngHeader) || string(data[:len(pngHeader)]) != pngHeader {
		return nil, FormatError("png: missing signature")
	}
	pos := len(pngHeader)
	for pos+8 <= len(data) {
		n := int64(binary.BigEndian.Uint32(data[pos:]))
		typ := string(data[pos+4 : pos+8])
		body := int64(pos) + 8
		if body+n > int64(len(data)) {
			return nil, FormatError("png: truncated chunk")
		}
		switch typ {
		case "eXIf":
			return DecodeTIFF(data[body : body+n])
		case "IEND":
			return nil, ErrNoExif
		}
		pos = int(body + n + 4) // skip the CRC
	}
	return nil, ErrNoExif
}
