package content

import (
	"context"
	"maps"
	"sync"

	"github.com/turningtides/go-pagebuilder/pkg/interfaces"
)

// MemoryProvider is an in-memory ContentProvider keyed by page and language.
type MemoryProvider struct {
	mu     sync.RWMutex
	fields map[string]map[string]map[string]string
}

var _ interfaces.ContentProvider = (*MemoryProvider)(nil)

// NewMemoryProvider constructs an empty provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{fields: make(map[string]map[string]map[string]string)}
}

// Set stores the fields for a page and language, replacing previous values.
func (p *MemoryProvider) Set(pageID, languageID string, fields map[string]string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	byLanguage, ok := p.fields[pageID]
	if !ok {
		byLanguage = make(map[string]map[string]string)
		p.fields[pageID] = byLanguage
	}
	byLanguage[languageID] = maps.Clone(fields)
}

// Fields returns a copy of the stored fields. Unknown pages yield an empty map.
func (p *MemoryProvider) Fields(_ context.Context, pageID, languageID string) (map[string]string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	fields := p.fields[pageID][languageID]
	if fields == nil {
		return map[string]string{}, nil
	}
	return maps.Clone(fields), nil
}
