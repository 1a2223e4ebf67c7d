package card

import (
	"testing"
	"time"
)

func rawTile(id, title string, extras map[string]string) RawCard {
	return RawCard{
		ID:             id,
		Classification: "tile",
		CreatedAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Dismissible:    true,
		Extras:         extras,
		Kind:           KindClassic,
		Title:          title,
		Description:    "Tile detail",
		ImageURL:       "https://cdn.example.com/tile.png",
	}
}

func TestNormalizer_FilterByWantedTypes(t *testing.T) {
	normalizer := NewNormalizer()

	raw := []RawCard{
		rawTile("t1", "First tile", nil),
		{ID: "a1", Classification: "ad", Kind: KindBanner, ImageURL: "https://cdn.example.com/ad.png"},
		rawTile("t2", "Second tile", nil),
		{ID: "c1", Classification: "coupon", Kind: KindCaptioned, Title: "Coupon", ImageURL: "https://cdn.example.com/c.png"},
	}

	variants := normalizer.Run(raw, NewTypeSet(ClassTile))

	if len(variants) != 2 {
		t.Fatalf("Expected 2 variants, got %d", len(variants))
	}
	for i, v := range variants {
		if _, ok := v.(Tile); !ok {
			t.Errorf("Variant %d should be a Tile, got %T", i, v)
		}
	}
	if variants[0].VariantID() != "t1" || variants[1].VariantID() != "t2" {
		t.Errorf("Expected input order preserved, got %s, %s", variants[0].VariantID(), variants[1].VariantID())
	}
}

func TestNormalizer_UnknownClassificationSkipped(t *testing.T) {
	normalizer := NewNormalizer()

	raw := []RawCard{
		{ID: "x1", Classification: "mystery", Kind: KindBanner, ImageURL: "https://cdn.example.com/x.png"},
		{ID: "x2", Classification: "", Kind: KindBanner, ImageURL: "https://cdn.example.com/x.png"},
	}

	variants := normalizer.Run(raw, NewTypeSet(ClassAd, ClassCoupon, ClassTile, ClassFullPageMessage, ClassWebViewMessage))

	if len(variants) != 0 {
		t.Errorf("Expected no variants for unknown classifications, got %d", len(variants))
	}
}

func TestNormalizer_FailedConstructionDropped(t *testing.T) {
	normalizer := NewNormalizer()

	// Middle card has no title, required for tiles. Its failure must
	// not abort normalization of the surrounding cards.
	raw := []RawCard{
		rawTile("t1", "First", nil),
		rawTile("t2", "", nil),
		rawTile("t3", "Third", nil),
	}

	variants := normalizer.Run(raw, NewTypeSet(ClassTile))

	if len(variants) != 2 {
		t.Fatalf("Expected 2 variants, got %d", len(variants))
	}
	if variants[0].VariantID() != "t1" || variants[1].VariantID() != "t3" {
		t.Errorf("Expected t1 and t3, got %s and %s", variants[0].VariantID(), variants[1].VariantID())
	}
}

func TestNormalizer_BannerMetadata(t *testing.T) {
	normalizer := NewNormalizer()

	// Banner subtype populates image only; title and description are
	// never read even if the vendor sent them.
	raw := []RawCard{{
		ID:             "a1",
		Classification: "ad",
		Kind:           KindBanner,
		ImageURL:       "https://cdn.example.com/ad.png",
		Title:          "should be ignored",
	}}

	variants := normalizer.Run(raw, NewTypeSet(ClassAd))

	if len(variants) != 1 {
		t.Fatalf("Expected 1 variant, got %d", len(variants))
	}
	ad, ok := variants[0].(Ad)
	if !ok {
		t.Fatalf("Expected an Ad, got %T", variants[0])
	}
	if ad.ImageURL != "https://cdn.example.com/ad.png" {
		t.Errorf("Unexpected image URL: %s", ad.ImageURL)
	}
	if ad.Data == nil {
		t.Fatal("Expected ad to carry card data")
	}
	if ad.Data.ID != "a1" || ad.Data.ClassType != ClassAd {
		t.Errorf("Unexpected card data: %+v", ad.Data)
	}
}

func TestNormalizer_TileFieldsFromExtras(t *testing.T) {
	normalizer := NewNormalizer()

	raw := []RawCard{rawTile("t1", "Espresso machine", map[string]string{
		"price": "299.00",
		"tags":  "kitchen, featured",
	})}

	variants := normalizer.Run(raw, NewTypeSet(ClassTile))

	if len(variants) != 1 {
		t.Fatalf("Expected 1 variant, got %d", len(variants))
	}
	tile := variants[0].(Tile)
	if tile.Price != "299.00" {
		t.Errorf("Expected price from extras, got %q", tile.Price)
	}
	if len(tile.Tags) != 2 || tile.Tags[0] != "kitchen" || tile.Tags[1] != "featured" {
		t.Errorf("Unexpected tags: %v", tile.Tags)
	}
	if tile.Detail != "Tile detail" {
		t.Errorf("Expected detail from description, got %q", tile.Detail)
	}
	if !tile.Data.Dismissible {
		t.Error("Expected dismissible flag carried into card data")
	}
}

func TestNormalizer_WebViewMessageRequiresURL(t *testing.T) {
	normalizer := NewNormalizer()

	raw := []RawCard{
		{ID: "w1", Classification: "message_web_view", Kind: KindBanner, Extras: map[string]string{"url": "https://example.com/page"}},
		{ID: "w2", Classification: "message_web_view", Kind: KindBanner},
	}

	variants := normalizer.Run(raw, NewTypeSet(ClassWebViewMessage))

	if len(variants) != 1 {
		t.Fatalf("Expected 1 variant, got %d", len(variants))
	}
	msg := variants[0].(WebViewMessage)
	if msg.ID != "w1" || msg.URL != "https://example.com/page" {
		t.Errorf("Unexpected message: %+v", msg)
	}
}

func TestNormalizer_FullPageMessageRequiresAllFields(t *testing.T) {
	normalizer := NewNormalizer()

	raw := []RawCard{
		{ID: "m1", Classification: "message_full_page", Kind: KindCaptioned,
			Title: "Welcome", Description: "Body", ImageURL: "https://cdn.example.com/m.png"},
		{ID: "m2", Classification: "message_full_page", Kind: KindCaptioned,
			Title: "No image", Description: "Body"},
		{ID: "m3", Classification: "message_full_page", Kind: KindBanner,
			Title: "Banner never has a title read", Description: "Body", ImageURL: "https://cdn.example.com/m.png"},
	}

	variants := normalizer.Run(raw, NewTypeSet(ClassFullPageMessage))

	if len(variants) != 1 {
		t.Fatalf("Expected 1 variant, got %d", len(variants))
	}
	if variants[0].VariantID() != "m1" {
		t.Errorf("Expected m1, got %s", variants[0].VariantID())
	}
}

func TestNormalizer_EmptyBatch(t *testing.T) {
	normalizer := NewNormalizer()

	variants := normalizer.Run(nil, NewTypeSet(ClassTile))
	if len(variants) != 0 {
		t.Errorf("Expected no variants for empty batch, got %d", len(variants))
	}
}
