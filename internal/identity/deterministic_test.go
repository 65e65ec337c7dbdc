package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestBlockConfigUUIDIsStable(t *testing.T) {
	first := BlockConfigUUID("HERO")
	second := BlockConfigUUID(" HERO ")
	if first == uuid.Nil || first != second {
		t.Fatalf("expected stable non-nil id, got %s and %s", first, second)
	}
	if first == BlockConfigUUID("FOOTER") {
		t.Fatalf("expected distinct ids per block type")
	}
}

func TestBrandKitIDIgnoresCase(t *testing.T) {
	if BrandKitID("Turning Tides") != BrandKitID("turning tides") {
		t.Fatalf("expected case-insensitive brand-kit ids")
	}
	if BrandKitID("  ") != "" {
		t.Fatalf("expected empty id for blank name")
	}
}
