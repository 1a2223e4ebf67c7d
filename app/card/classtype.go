package card

import "strings"

// ClassType is the application-defined category derived from a card's
// backend-configured classification string. It decides which domain
// variant the Normalizer constructs.
type ClassType string

const (
	ClassNone            ClassType = "none"
	ClassAd              ClassType = "ad"
	ClassCoupon          ClassType = "coupon"
	ClassTile            ClassType = "tile"
	ClassFullPageMessage ClassType = "message_full_page"
	ClassWebViewMessage  ClassType = "message_web_view"
)

// ParseClassType derives a ClassType from a raw classification string.
// Matching is case-insensitive; unrecognized or empty strings map to
// ClassNone. Pure and total, never fails.
func ParseClassType(s string) ClassType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ad":
		return ClassAd
	case "coupon":
		return ClassCoupon
	case "tile":
		return ClassTile
	case "message_full_page":
		return ClassFullPageMessage
	case "message_web_view":
		return ClassWebViewMessage
	default:
		return ClassNone
	}
}

// TypeSet is the set of class types a Normalizer caller wants built.
type TypeSet map[ClassType]struct{}

func NewTypeSet(types ...ClassType) TypeSet {
	set := make(TypeSet, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}

func (s TypeSet) Has(t ClassType) bool {
	_, ok := s[t]
	return ok
}
