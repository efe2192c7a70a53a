// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgexif

import "fmt"

// An Exif block is a TIFF structure: a header selecting the byte order,
// followed by a chain of Image File Directories (IFDs). Each IFD holds
// 12-byte entries of
//
//   - a tag, which describes the signification of the entry,
//   - the data type and the number of values,
//   - the values themselves, or a pointer to them if they need more
//     than 4 bytes.
//
// and ends with the offset of the next IFD in the chain (0 terminates).
// All pointers are relative to the start of the TIFF header.

const (
	leHeader = "II\x2A\x00" // Header for little-endian files.
	beHeader = "MM\x00\x2A" // Header for big-endian files.

	ifdLen = 12 // Length of an IFD entry in bytes.

	// A malformed next-IFD offset can form a cycle, which the format
	// itself does not rule out.
	maxIfdDepth = 32
)

// Data types (p. 14-16 of the TIFF spec).
const (
	dtByte     = 1
	dtASCII    = 2
	dtShort    = 3
	dtLong     = 4
	dtRational = 5
)

// The length of one instance of each data type in bytes.
var lengths = [...]uint32{0, 1, 1, 2, 4, 8}

// ExifOffset points at the Exif-private sub-IFD; it is enumerated one
// level deep but never recursed into further.
const tExifOffset = 0x8769

var exifTagNames = map[uint16]string{
	0x0100: "ImageWidth",
	0x0101: "ImageHeight",
	0x010f: "Make",
	0x0110: "Model",
	0x0112: "Orientation",
	0x011a: "XResolution",
	0x011b: "YResolution",
	0x0128: "ResolutionUnit",
	0x0131: "Software",
	0x0132: "DateTime",
	0x013b: "Artist",
	0x013e: "WhitePoint",
	0x013f: "PrimaryChromaticities",
	0x0211: "YCbCrCoefficients",
	0x0213: "YCbCrPositioning",
	0x8298: "Copyright",
	0x8769: "ExifOffset",
	0x829a: "ExposureTime",
	0x829d: "FNumber",
	0x8827: "ISOSpeedRatings",
	0x9003: "DateTimeOriginal",
	0x9004: "DateTimeDigitized",
	0x9201: "ShutterSpeedValue",
	0x9202: "ApertureValue",
	0x9204: "ExposureBiasValue",
	0x9206: "SubjectDistance",
	0x9207: "MeteringMode",
	0x9209: "Flash",
	0x9214: "SubjectArea",
	0x927c: "MakerNote",
	0x9286: "UserComment",
	0xa001: "ColorSpace",
	0xa002: "ExifImageWidth",
	0xa003: "ExifImageHeight",
	0xa005: "InteroperabilityOffset",
	0xa20e: "FocalPlaneXResolution",
	0xa20f: "FocalPlaneYResolution",
	0xa210: "FocalPlaneResolutionUnit",
	0xa217: "SensingMethod",
	0xa300: "FileSource",
	0xa301: "SceneType",
	0xa430: "CameraOwnerName",
	0xa431: "SerialNumber",
	0xa432: "LensInfo",
	0xa433: "LensMake",
	0xa434: "LensModel",
	0xa435: "LensSerialNumber",
	0xc4a5: "PrintIM",
}

// tagName resolves a numeric tag code to its canonical name.
func tagName(code uint16) string {
	if name, ok := exifTagNames[code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown tag 0x%04X", code)
}
