package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/turningtides/go-pagebuilder/internal/logging"
	"github.com/turningtides/go-pagebuilder/internal/templates"
	"github.com/turningtides/go-pagebuilder/internal/util"
	"github.com/turningtides/go-pagebuilder/pkg/interfaces"
)

// Field suffixes read for each block, e.g. "hero.title".
const (
	fieldTitle    = "title"
	fieldSubtitle = "subtitle"
	fieldContent  = "content"
)

// Fields is a flat content map supplied for one page and language.
type Fields map[string]string

// Get resolves key with the context > prop > default chain. Absent keys and
// blank values fall through to the next source.
func (f Fields) Get(key, prop, def string) string {
	return util.FirstNonEmpty(f[key], prop, def)
}

// Resolver overlays provider content onto block requests.
type Resolver struct {
	provider interfaces.ContentProvider
	logger   interfaces.Logger
}

// NewResolver builds a resolver. A nil logger discards output.
func NewResolver(provider interfaces.ContentProvider, logger interfaces.Logger) *Resolver {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Resolver{provider: provider, logger: logger}
}

// Fields loads the content map for a page and language.
func (r *Resolver) Fields(ctx context.Context, pageID, languageID string) (Fields, error) {
	if r == nil || r.provider == nil {
		return Fields{}, nil
	}
	fields, err := r.provider.Fields(ctx, pageID, languageID)
	if err != nil {
		return nil, fmt.Errorf("content: fetch fields for page %s (%s): %w", pageID, languageID, err)
	}
	r.logger.Debug("content.fields_loaded", "page_id", pageID, "language", languageID, "fields", len(fields))
	return Fields(fields), nil
}

// ResolveRequests returns copies of requests whose content is overlaid with
// the provider fields of pageID. Fields are keyed by the lowercased block
// type, e.g. "hero.title"; a key prefixed with the request index
// ("1.hero.title") targets a single block.
func (r *Resolver) ResolveRequests(ctx context.Context, pageID, languageID string, requests []templates.BlockRequest) ([]templates.BlockRequest, error) {
	fields, err := r.Fields(ctx, pageID, languageID)
	if err != nil {
		return nil, err
	}
	out := make([]templates.BlockRequest, len(requests))
	for i, request := range requests {
		request.Content = BlockContent(fields, blockPrefixes(i, request.BlockType), request.Content)
		out[i] = request
	}
	return out, nil
}

// BlockContent merges the fields found under prefixes (first prefix wins)
// over prop. It returns prop unchanged when no field applies.
func BlockContent(fields Fields, prefixes []string, prop *templates.BlockContent) *templates.BlockContent {
	var base templates.BlockContent
	if prop != nil {
		base = *prop
	}
	// Prefixes are folded from least to most specific so that the first
	// prefix holding a value wins over later ones and over prop.
	resolve := func(suffix, fallback string) string {
		value := fallback
		for i := len(prefixes) - 1; i >= 0; i-- {
			value = fields.Get(prefixes[i]+"."+suffix, value, "")
		}
		return value
	}

	title := resolve(fieldTitle, base.Title)
	subtitle := resolve(fieldSubtitle, base.Subtitle)
	text := resolve(fieldContent, base.Text)
	if title == base.Title && subtitle == base.Subtitle && text == base.Text {
		return prop
	}

	base.Title = title
	base.Subtitle = subtitle
	base.Text = text
	return &base
}

func blockPrefixes(index int, blockType string) []string {
	key := strings.ToLower(strings.TrimSpace(blockType))
	return []string{fmt.Sprintf("%d.%s", index, key), key}
}
