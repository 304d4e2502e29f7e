// Package grid computes the responsive minimum card width for a card grid
// container and keeps it published as the --card-min custom property as the
// container resizes.
package grid

// Container width breakpoints, in pixels.
const (
	// NarrowWidth is the upper edge of the narrow (single-ish column) range.
	NarrowWidth = 640

	// MediumWidth is the threshold for the medium step.
	MediumWidth = 960

	// WideWidth is the threshold for the wide step.
	WideWidth = 1280
)

// Minimum card widths per step, in pixels.
const (
	// CardMinNarrow is used below NarrowWidth.
	CardMinNarrow = 180

	// CardMinMedium is used from NarrowWidth up to MediumWidth.
	CardMinMedium = 220

	// CardMinWide is used from MediumWidth up to WideWidth.
	CardMinWide = 260

	// CardMinFull is used at WideWidth and beyond.
	CardMinFull = 300
)

// VarName is the custom property the policy writes on the container.
const VarName = "--card-min"

// MinCardWidth returns the minimum card width for a container of the given
// content width, stepping at the package breakpoints.
func MinCardWidth(containerWidth int) int {
	switch {
	case containerWidth >= WideWidth:
		return CardMinFull
	case containerWidth >= MediumWidth:
		return CardMinWide
	case containerWidth >= NarrowWidth:
		return CardMinMedium
	default:
		return CardMinNarrow
	}
}

// Columns returns how many cards of the step's minimum width fit side by
// side in the container, separated by gap. Never less than one.
func Columns(containerWidth, gap int) int {
	minWidth := MinCardWidth(containerWidth)
	n := (containerWidth + gap) / (minWidth + gap)
	if n < 1 {
		return 1
	}
	return n
}
