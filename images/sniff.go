package images

import (
	"bytes"
	"image"
	"image/color"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// sniff derives format and colorspace from raw image bytes. Unrecognized or
// truncated data yields empty strings, never an error.
func sniff(data []byte) (format, colorspace string) {
	if len(data) == 0 {
		return "", ""
	}

	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", ""
	}

	return name, colorspaceName(cfg.ColorModel)
}

func colorspaceName(m color.Model) string {
	switch m {
	case color.GrayModel, color.Gray16Model:
		return "gray"
	case color.CMYKModel:
		return "cmyk"
	default:
		return "rgb"
	}
}
