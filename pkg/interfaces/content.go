package interfaces

import "context"

// ContentProvider supplies the flat content overrides authored for a page in
// a given language. Keys are free-form (e.g. "hero.title"); an absent key and
// an empty string value are both treated as "not set" by consumers.
type ContentProvider interface {
	Fields(ctx context.Context, pageID, languageID string) (map[string]string, error)
}
