package carousel

import "fmt"

// Tier is a viewport width class
type Tier int

const (
	TierNarrow Tier = iota
	TierMedium
	TierWide
)

// Breakpoint is the minimum viewport width, in CSS pixels, of a tier
type Breakpoint struct {
	Tier     Tier
	MinWidth int
}

// Breakpoints lists every tier from narrowest to widest
var Breakpoints = []Breakpoint{
	{Tier: TierNarrow, MinWidth: 0},
	{Tier: TierMedium, MinWidth: 768},
	{Tier: TierWide, MinWidth: 1024},
}

// TierFor returns the tier of a viewport width
func TierFor(width int) Tier {
	tier := TierNarrow
	for _, bp := range Breakpoints {
		if width >= bp.MinWidth {
			tier = bp.Tier
		}
	}
	return tier
}

func (t Tier) String() string {
	switch t {
	case TierNarrow:
		return "narrow"
	case TierMedium:
		return "medium"
	case TierWide:
		return "wide"
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// MediaQuery returns the CSS media query matching exactly this tier
func (t Tier) MediaQuery() string {
	switch t {
	case TierNarrow:
		return fmt.Sprintf("(max-width: %dpx)", Breakpoints[TierMedium].MinWidth-1)
	case TierMedium:
		return fmt.Sprintf("(min-width: %dpx) and (max-width: %dpx)", Breakpoints[TierMedium].MinWidth, Breakpoints[TierWide].MinWidth-1)
	default:
		return fmt.Sprintf("(min-width: %dpx)", Breakpoints[TierWide].MinWidth)
	}
}

// Prefix returns the responsive class prefix of the tier
func (t Tier) Prefix() string {
	switch t {
	case TierMedium:
		return "md:"
	case TierWide:
		return "lg:"
	}
	return ""
}
