// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgexif

import (
	"bytes"
	"io"

	"golang.org/x/image/riff"
)

var (
	fccWEBP = riff.FourCC{'W', 'E', 'B', 'P'}
	fccEXIF = riff.FourCC{'E', 'X', 'I', 'F'}
)

// decodewebp walks the RIFF chunks of a WebP stream to the EXIF chunk
// and decodes the TIFF structure it carries. Some writers prefix the
// chunk payload with the JPEG-style "Exif\0\0" signature; that prefix
// is tolerated and stripped.
func decodewebp(data []byte) (*Metadata, error) {
	formType, r, err := riff.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, FormatError("webp: " + err.Error())
	}
	if formType != fccWEBP {
		return nil, FormatError("webp: not a WEBP form")
	}
	for {
		chunkID, _, chunkData, err := r.Next()
		if err == io.EOF {
			return nil, ErrNoExif
		}
		if err != nil {
			return nil, FormatError("webp: " + err.Error())
		}
		if chunkID != fccEXIF {
			continue
		}
		buf, err := io.ReadAll(chunkData)
		if err != nil {
			return nil, FormatError("webp: " + err.Error())
		}
		if bytes.HasPrefix(buf, []byte(exifHeader)) {
			buf = buf[len(exifHeader):]
		}
		return DecodeTIFF(buf)
	}
}
