package model

// ImageRole is the coarse role assigned to an embedded image from its
// geometric features.
type ImageRole int

const (
	// RoleFigure is the fallback role when no other rule matches.
	RoleFigure ImageRole = iota
	RoleLogo
	RoleIcon
	RoleBanner
	RoleChart
	RolePhoto
)

// String returns the string representation of the image role.
func (r ImageRole) String() string {
	switch r {
	case RoleLogo:
		return "logo"
	case RoleIcon:
		return "icon"
	case RoleBanner:
		return "banner"
	case RoleChart:
		return "chart"
	case RolePhoto:
		return "photo"
	default:
		return "figure"
	}
}

// Image describes one embedded image occurrence on a page with its derived
// geometric features and assigned role.
type Image struct {
	Rect        Rect
	Area        float64
	AspectRatio float64
	Format      string
	Colorspace  string
	SizeBytes   int
	Role        ImageRole
}
