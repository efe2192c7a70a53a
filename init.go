package imgexif

func init() {
	RegisterFormat("jpeg", "\xff\xd8", DecodeJPEG)
	RegisterFormat("raf", "FUJIFILM", DecodeRAF)
	RegisterFormat("tiff", leHeader, DecodeTIFF)
	RegisterFormat("tiff", beHeader, DecodeTIFF)
	RegisterFormat("webp", "RIFF????WEBP", decodewebp)
	RegisterFormat("png", pngHeader, decodepng)
}
