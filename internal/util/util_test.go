package util

import "testing"

func TestFirstNonEmptyTreatsBlankAsUnset(t *testing.T) {
	if got := FirstNonEmpty("", "  ", "prop", "default"); got != "prop" {
		t.Fatalf("expected prop, got %q", got)
	}
	if got := FirstNonEmpty("", ""); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}

func TestCloneAnyMapIsDeep(t *testing.T) {
	src := map[string]any{
		"background": map[string]any{"type": "color", "color": "#fff"},
		"stops":      []any{"a", map[string]any{"b": 1}},
	}
	cloned := CloneAnyMap(src)

	cloned["background"].(map[string]any)["color"] = "#000"
	cloned["stops"].([]any)[1].(map[string]any)["b"] = 2

	if src["background"].(map[string]any)["color"] != "#fff" {
		t.Fatalf("expected nested map to be copied")
	}
	if src["stops"].([]any)[1].(map[string]any)["b"] != 1 {
		t.Fatalf("expected nested slice to be copied")
	}
	if CloneAnyMap(nil) != nil {
		t.Fatalf("expected nil for nil input")
	}
}
