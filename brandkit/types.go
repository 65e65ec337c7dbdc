package brandkit

// Colors holds the palette arrays of a brand kit. Neutral entries run from
// lightest to darkest.
type Colors struct {
	Primary   []string `json:"primary,omitempty" yaml:"primary,omitempty"`
	Secondary []string `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	Accent    []string `json:"accent,omitempty" yaml:"accent,omitempty"`
	Neutral   []string `json:"neutral,omitempty" yaml:"neutral,omitempty"`
}

// FontStyle describes one typography role.
type FontStyle struct {
	FontFamily string `json:"fontFamily" yaml:"fontFamily"`
	Weights    []int  `json:"weights,omitempty" yaml:"weights,omitempty"`
	LineHeight string `json:"lineHeight,omitempty" yaml:"lineHeight,omitempty"`
}

// FirstWeight returns the first declared weight.
func (f FontStyle) FirstWeight() (int, bool) {
	if len(f.Weights) == 0 {
		return 0, false
	}
	return f.Weights[0], true
}

// Typography holds the heading and body font roles.
type Typography struct {
	Heading FontStyle `json:"heading" yaml:"heading"`
	Body    FontStyle `json:"body" yaml:"body"`
}

// Spacing holds the spacing scale, smallest step first.
type Spacing struct {
	Scale []string `json:"scale,omitempty" yaml:"scale,omitempty"`
}

// BrandKit is a read-only design-system description applied to templates.
type BrandKit struct {
	ID         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Colors     Colors     `json:"colors" yaml:"colors"`
	Typography Typography `json:"typography" yaml:"typography"`
	Spacing    Spacing    `json:"spacing" yaml:"spacing"`
}

// FirstNeutral is the lightest neutral, used for color backgrounds.
func (b BrandKit) FirstNeutral() (string, bool) {
	return first(b.Colors.Neutral)
}

// DarkestNeutral is the last neutral entry, used for text.
func (b BrandKit) DarkestNeutral() (string, bool) {
	if len(b.Colors.Neutral) == 0 {
		return "", false
	}
	return b.Colors.Neutral[len(b.Colors.Neutral)-1], true
}

// PrimaryAccent is the first primary color, used for links.
func (b BrandKit) PrimaryAccent() (string, bool) {
	return first(b.Colors.Primary)
}

// SpacingStep returns the zero-based step of the spacing scale.
func (b BrandKit) SpacingStep(index int) (string, bool) {
	if index < 0 || index >= len(b.Spacing.Scale) {
		return "", false
	}
	return b.Spacing.Scale[index], true
}

// Clone returns a copy that shares no slices with b.
func (b BrandKit) Clone() BrandKit {
	out := b
	out.Colors = Colors{
		Primary:   append([]string(nil), b.Colors.Primary...),
		Secondary: append([]string(nil), b.Colors.Secondary...),
		Accent:    append([]string(nil), b.Colors.Accent...),
		Neutral:   append([]string(nil), b.Colors.Neutral...),
	}
	out.Typography.Heading.Weights = append([]int(nil), b.Typography.Heading.Weights...)
	out.Typography.Body.Weights = append([]int(nil), b.Typography.Body.Weights...)
	out.Spacing.Scale = append([]string(nil), b.Spacing.Scale...)
	return out
}

func first(values []string) (string, bool) {
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}
