package card

import "log/slog"

// constructor builds a concrete domain variant from extracted metadata.
// Returns false when required fields are missing; the card is then
// dropped without affecting the rest of the batch.
type constructor func(Metadata) (Variant, bool)

// Normalizer converts vendor-supplied raw card records into typed
// domain variants, filtered by the class types the caller wants.
type Normalizer struct {
	constructors map[ClassType]constructor
}

func NewNormalizer() *Normalizer {
	return &Normalizer{
		constructors: map[ClassType]constructor{
			ClassAd:              newAd,
			ClassCoupon:          newCoupon,
			ClassTile:            newTile,
			ClassFullPageMessage: newFullPageMessage,
			ClassWebViewMessage:  newWebViewMessage,
		},
	}
}

// Run normalizes a batch. Output preserves input order among the
// successfully constructed variants; cards whose derived class type is
// not in wanted are skipped before any metadata work happens.
func (n *Normalizer) Run(raw []RawCard, wanted TypeSet) []Variant {
	variants := make([]Variant, 0, len(raw))

	for _, rc := range raw {
		classType := ParseClassType(rc.Classification)
		if !wanted.Has(classType) {
			continue
		}

		construct, ok := n.constructors[classType]
		if !ok {
			continue
		}

		variant, ok := construct(n.buildMetadata(rc))
		if !ok {
			slog.Debug("Card dropped, insufficient metadata", "card", rc.ID, "class_type", classType)
			continue
		}

		variants = append(variants, variant)
	}

	return variants
}

// buildMetadata extracts the type-specific display fields for the
// card's vendor subtype, then the fields every card carries.
func (n *Normalizer) buildMetadata(rc RawCard) Metadata {
	meta := Metadata{}

	switch rc.Kind {
	case KindBanner:
		meta[MetaImage] = rc.ImageURL
	case KindCaptioned, KindClassic:
		meta[MetaTitle] = rc.Title
		meta[MetaDescription] = rc.Description
		meta[MetaImage] = rc.ImageURL
	}

	meta[MetaID] = rc.ID
	meta[MetaCreatedAt] = rc.CreatedAt
	meta[MetaDismissible] = rc.Dismissible
	meta[MetaExtras] = rc.Extras
	meta[MetaTags] = SplitTags(rc.Extras["tags"])

	return meta
}

func cardData(meta Metadata, classType ClassType) *CardData {
	return &CardData{
		ID:          meta.str(MetaID),
		ClassType:   classType,
		CreatedAt:   meta.timestamp(MetaCreatedAt),
		Dismissible: meta.flag(MetaDismissible),
	}
}

func newAd(meta Metadata) (Variant, bool) {
	if meta.str(MetaImage) == "" {
		return nil, false
	}
	return Ad{
		ID:       meta.str(MetaID),
		Data:     cardData(meta, ClassAd),
		ImageURL: meta.str(MetaImage),
	}, true
}

func newCoupon(meta Metadata) (Variant, bool) {
	if meta.str(MetaTitle) == "" || meta.str(MetaImage) == "" {
		return nil, false
	}
	return Coupon{
		ID:          meta.str(MetaID),
		Data:        cardData(meta, ClassCoupon),
		Title:       meta.str(MetaTitle),
		Description: meta.str(MetaDescription),
		ImageURL:    meta.str(MetaImage),
	}, true
}

func newTile(meta Metadata) (Variant, bool) {
	if meta.str(MetaTitle) == "" {
		return nil, false
	}
	tags, _ := meta[MetaTags].([]string)
	return Tile{
		ID:       meta.str(MetaID),
		Data:     cardData(meta, ClassTile),
		Title:    meta.str(MetaTitle),
		Detail:   meta.str(MetaDescription),
		Price:    meta.extra("price"),
		ImageURL: meta.str(MetaImage),
		Tags:     tags,
	}, true
}

func newFullPageMessage(meta Metadata) (Variant, bool) {
	if meta.str(MetaTitle) == "" || meta.str(MetaDescription) == "" || meta.str(MetaImage) == "" {
		return nil, false
	}
	return FullPageMessage{
		ID:          meta.str(MetaID),
		Data:        cardData(meta, ClassFullPageMessage),
		Title:       meta.str(MetaTitle),
		Description: meta.str(MetaDescription),
		ImageURL:    meta.str(MetaImage),
	}, true
}

func newWebViewMessage(meta Metadata) (Variant, bool) {
	if meta.extra("url") == "" {
		return nil, false
	}
	return WebViewMessage{
		ID:   meta.str(MetaID),
		Data: cardData(meta, ClassWebViewMessage),
		URL:  meta.extra("url"),
	}, true
}
