package templates

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/turningtides/go-pagebuilder/internal/blocks"
)

var fixedNow = time.Date(2024, 3, 14, 15, 9, 26, 0, time.UTC)

func sequentialUUIDs(prefix int) IDGenerator {
	var mu sync.Mutex
	counter := 0
	return func() uuid.UUID {
		mu.Lock()
		defer mu.Unlock()
		counter++
		return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-%04d-%012d", prefix, counter))
	}
}

func heroRegistry() *blocks.Registry {
	return blocks.MustNewRegistry(
		blocks.BlockConfig{
			Type: "HERO",
			Name: "Hero",
			DefaultSettings: blocks.DefaultSettings{
				Layout:     blocks.Category{"height": "80vh"},
				Style:      blocks.Category{"color": "black"},
				Responsive: blocks.Category{"stack": true},
				Animation:  blocks.Category{"type": "none"},
				Content:    blocks.Category{"ctaLabel": "Learn more"},
			},
			Variants: []blocks.Variant{
				{ID: "inverted", StyleOverrides: blocks.Category{"color": "white"}},
			},
			PreviewData: blocks.PreviewData{
				Title:    "Preview hero",
				Content:  "Preview content",
				Metadata: map[string]any{"source": "preview"},
			},
		},
		blocks.BlockConfig{
			Type: "FOOTER",
			Name: "Footer",
			DefaultSettings: blocks.DefaultSettings{
				Style: blocks.Category{
					"background": map[string]any{"type": "color", "color": "#000"},
					"textColor":  "#ccc",
					"linkColor":  "#fff",
					"padding":    "1rem",
					"margin":     "0",
				},
			},
		},
	)
}

func newTestComposer(registry *blocks.Registry) *Composer {
	return NewComposer(registry,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(sequentialUUIDs(1)),
		WithSectionIDGenerator(sequentialUUIDs(2)),
	)
}

func strPtr(s string) *string {
	return &s
}
