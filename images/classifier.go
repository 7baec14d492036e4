// Package images derives a coarse role for embedded images from their
// geometric features, and fills in format metadata from raw bytes when the
// backend does not report it.
package images

import "github.com/tsawler/pagelens/model"

// Role thresholds, in page units squared (area) and width/height (aspect).
const (
	logoMaxArea   = 10000.0
	logoMinAspect = 0.8
	logoMaxAspect = 1.2

	iconMaxArea = 2000.0

	bannerMinAspect = 3.0

	chartMinArea = 10000.0
	chartMaxArea = 200000.0

	photoMinArea = 100000.0
)

// ClassifyRole assigns a role from area and aspect ratio. It is a pure
// function: identical inputs always produce the identical role.
//
// The rules are evaluated in order with the first match winning. The logo
// rule deliberately precedes the icon rule even though its area bound
// subsumes it, so a very small near-square image classifies as a logo, not
// an icon. This ordering is intended behavior and must be preserved.
func ClassifyRole(area, aspectRatio float64) model.ImageRole {
	switch {
	case area < logoMaxArea && aspectRatio > logoMinAspect && aspectRatio < logoMaxAspect:
		return model.RoleLogo
	case area < iconMaxArea:
		return model.RoleIcon
	case aspectRatio > bannerMinAspect:
		return model.RoleBanner
	case area > chartMinArea && area < chartMaxArea:
		return model.RoleChart
	case area > photoMinArea:
		return model.RolePhoto
	default:
		return model.RoleFigure
	}
}

// Describe builds the full image description for one embedded image
// occurrence: geometric features, format metadata (sniffed from the raw
// bytes when the backend left it empty), and the assigned role.
func Describe(obj model.ImageObject) model.Image {
	img := model.Image{
		Rect:        obj.Rect,
		Area:        obj.Rect.Area(),
		AspectRatio: obj.Rect.AspectRatio(),
		Format:      obj.Format,
		Colorspace:  obj.Colorspace,
		SizeBytes:   len(obj.Data),
	}

	if img.Format == "" || img.Colorspace == "" {
		format, colorspace := sniff(obj.Data)
		if img.Format == "" {
			img.Format = format
		}
		if img.Colorspace == "" {
			img.Colorspace = colorspace
		}
	}

	img.Role = ClassifyRole(img.Area, img.AspectRatio)
	return img
}
