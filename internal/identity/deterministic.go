package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must prefix keys by entity type to avoid cross-entity collisions.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// BlockConfigUUID is the stable identifier of a registered block type.
// Block types are case sensitive, so the key is not lowercased.
func BlockConfigUUID(blockType string) uuid.UUID {
	return UUID("pagebuilder:block_config:" + strings.TrimSpace(blockType))
}

// BrandKitID derives a brand-kit identifier from its name when the source
// (e.g. a theme manifest) does not carry one.
func BrandKitID(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	id := UUID("pagebuilder:brandkit:" + strings.ToLower(name))
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}
