package brandkit

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

var ErrNoBrandTokens = errors.New("brandkit: no brand tokens found")

// Token keys read by FromTokens. Palette and spacing keys take a numeric
// suffix giving the position in the array, e.g. color-neutral-0.
const (
	tokenColorPrefix      = "color-"
	tokenSpacingPrefix    = "spacing-"
	tokenHeadingFamily    = "font-heading-family"
	tokenHeadingWeight    = "font-heading-weight"
	tokenHeadingLine      = "font-heading-line-height"
	tokenBodyFamily       = "font-body-family"
	tokenBodyWeight       = "font-body-weight"
	tokenBodyLineHeight   = "font-body-line-height"
	weightListSeparator   = ","
	tokenSegmentSeparator = "-"
)

type indexed struct {
	index int
	value string
}

// FromTokens builds a brand kit from flat design tokens such as those
// exposed by a theme selection. Keys are matched case-insensitively and
// "." or "_" separators are treated as "-".
func FromTokens(name string, tokens map[string]string) (BrandKit, error) {
	palettes := map[string][]indexed{}
	var spacing []indexed
	kit := BrandKit{Name: strings.TrimSpace(name)}
	found := false

	for rawKey, rawValue := range tokens {
		key := normalizeTokenKey(rawKey)
		value := strings.TrimSpace(rawValue)
		if value == "" {
			continue
		}
		switch {
		case key == tokenHeadingFamily:
			kit.Typography.Heading.FontFamily = value
		case key == tokenHeadingWeight:
			kit.Typography.Heading.Weights = parseWeights(value)
		case key == tokenHeadingLine:
			kit.Typography.Heading.LineHeight = value
		case key == tokenBodyFamily:
			kit.Typography.Body.FontFamily = value
		case key == tokenBodyWeight:
			kit.Typography.Body.Weights = parseWeights(value)
		case key == tokenBodyLineHeight:
			kit.Typography.Body.LineHeight = value
		case strings.HasPrefix(key, tokenSpacingPrefix):
			idx, ok := suffixIndex(strings.TrimPrefix(key, tokenSpacingPrefix))
			if !ok {
				continue
			}
			spacing = append(spacing, indexed{index: idx, value: value})
		case strings.HasPrefix(key, tokenColorPrefix):
			rest := strings.TrimPrefix(key, tokenColorPrefix)
			palette, suffix, ok := strings.Cut(rest, tokenSegmentSeparator)
			if !ok {
				continue
			}
			idx, ok := suffixIndex(suffix)
			if !ok {
				continue
			}
			palettes[palette] = append(palettes[palette], indexed{index: idx, value: value})
		default:
			continue
		}
		found = true
	}

	if !found {
		return BrandKit{}, ErrNoBrandTokens
	}

	kit.Colors = Colors{
		Primary:   ordered(palettes["primary"]),
		Secondary: ordered(palettes["secondary"]),
		Accent:    ordered(palettes["accent"]),
		Neutral:   ordered(palettes["neutral"]),
	}
	kit.Spacing.Scale = ordered(spacing)
	return Normalize(kit), nil
}

func normalizeTokenKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.TrimPrefix(key, "--")
	return strings.NewReplacer(".", tokenSegmentSeparator, "_", tokenSegmentSeparator).Replace(key)
}

func suffixIndex(value string) (int, bool) {
	idx, err := strconv.Atoi(value)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

func parseWeights(value string) []int {
	parts := strings.Split(value, weightListSeparator)
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		weight, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		out = append(out, weight)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func ordered(values []indexed) []string {
	if len(values) == 0 {
		return nil
	}
	sort.Slice(values, func(i, j int) bool { return values[i].index < values[j].index })
	out := make([]string, len(values))
	for i, item := range values {
		out[i] = item.value
	}
	return out
}
