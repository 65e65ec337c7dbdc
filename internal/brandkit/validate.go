package brandkit

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/turningtides/go-pagebuilder/internal/identity"
)

var notBlank = validation.By(func(value any) error {
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return validation.NewError("pagebuilder.brandkit.blank", "must not be blank")
	}
	return nil
})

// Validate checks the fields the brand-kit applier reads.
func Validate(kit BrandKit) error {
	return validation.Errors{
		"name":                          validation.Validate(kit.Name, validation.Required),
		"colors.primary":                validation.Validate(kit.Colors.Primary, validation.Each(notBlank)),
		"colors.neutral":                validation.Validate(kit.Colors.Neutral, validation.Required, validation.Each(notBlank)),
		"typography.heading.fontFamily": validation.Validate(kit.Typography.Heading.FontFamily, validation.Required),
		"typography.heading.weights":    validation.Validate(kit.Typography.Heading.Weights, validation.Each(validation.Required, validation.Min(1), validation.Max(1000))),
		"typography.body.fontFamily":    validation.Validate(kit.Typography.Body.FontFamily, validation.Required),
		"typography.body.weights":       validation.Validate(kit.Typography.Body.Weights, validation.Each(validation.Required, validation.Min(1), validation.Max(1000))),
		"spacing.scale":                 validation.Validate(kit.Spacing.Scale, validation.Each(notBlank)),
	}.Filter()
}

// Normalize trims identifiers and derives an id from the name when absent.
func Normalize(kit BrandKit) BrandKit {
	out := kit.Clone()
	out.Name = strings.TrimSpace(out.Name)
	out.ID = strings.TrimSpace(out.ID)
	if out.ID == "" {
		out.ID = identity.BrandKitID(out.Name)
	}
	return out
}
