package card

import (
	"strings"
	"time"
)

// Kind identifies the vendor's concrete card subtype. The subtype
// decides which display fields the vendor populates.
type Kind string

const (
	KindBanner    Kind = "banner"
	KindCaptioned Kind = "captioned"
	KindClassic   Kind = "classic"
)

// RawCard is a vendor-delivered card record as received at the ingest
// boundary. Read-only to this service.
type RawCard struct {
	ID             string            `json:"id"`
	Classification string            `json:"classification"`
	CreatedAt      time.Time         `json:"created_at"`
	Dismissible    bool              `json:"dismissible"`
	Extras         map[string]string `json:"extras,omitempty"`
	Kind           Kind              `json:"kind"`
	ImageURL       string            `json:"image_url,omitempty"`
	Title          string            `json:"title,omitempty"`
	Description    string            `json:"description,omitempty"`
}

// CardData links a domain variant back to the vendor card it was built
// from. Synthetic variants (e.g. locally configured tiles) carry nil.
type CardData struct {
	ID          string    `json:"id"`
	ClassType   ClassType `json:"class_type"`
	CreatedAt   time.Time `json:"created_at"`
	Dismissible bool      `json:"dismissible"`
}

// Variant is a strongly-typed domain object produced by the Normalizer.
type Variant interface {
	VariantID() string
	Class() ClassType
	Card() *CardData
}

type Ad struct {
	ID       string    `json:"id"`
	Data     *CardData `json:"card,omitempty"`
	ImageURL string    `json:"image_url"`
}

func (a Ad) VariantID() string { return a.ID }
func (a Ad) Class() ClassType  { return ClassAd }
func (a Ad) Card() *CardData   { return a.Data }

// Equal compares identity only. Two ads with the same ID are the same
// ad regardless of display fields.
func (a Ad) Equal(other Ad) bool { return a.ID == other.ID }

type Coupon struct {
	ID          string    `json:"id"`
	Data        *CardData `json:"card,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url"`
}

func (c Coupon) VariantID() string       { return c.ID }
func (c Coupon) Class() ClassType        { return ClassCoupon }
func (c Coupon) Card() *CardData         { return c.Data }
func (c Coupon) Equal(other Coupon) bool { return c.ID == other.ID }

// Tile is a selectable home-screen item, optionally backed by a vendor
// card. Tiles without Data were defined locally.
type Tile struct {
	ID       string    `json:"id"`
	Data     *CardData `json:"card,omitempty"`
	Title    string    `json:"title"`
	Detail   string    `json:"detail,omitempty"`
	Price    string    `json:"price,omitempty"`
	ImageURL string    `json:"image_url,omitempty"`
	Tags     []string  `json:"tags,omitempty"`
}

func (t Tile) VariantID() string     { return t.ID }
func (t Tile) Class() ClassType      { return ClassTile }
func (t Tile) Card() *CardData       { return t.Data }
func (t Tile) Equal(other Tile) bool { return t.ID == other.ID }

func (t Tile) HasTag(tag string) bool {
	for _, candidate := range t.Tags {
		if candidate == tag {
			return true
		}
	}
	return false
}

type FullPageMessage struct {
	ID          string    `json:"id"`
	Data        *CardData `json:"card,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
}

func (m FullPageMessage) VariantID() string                { return m.ID }
func (m FullPageMessage) Class() ClassType                 { return ClassFullPageMessage }
func (m FullPageMessage) Card() *CardData                  { return m.Data }
func (m FullPageMessage) Equal(other FullPageMessage) bool { return m.ID == other.ID }

type WebViewMessage struct {
	ID   string    `json:"id"`
	Data *CardData `json:"card,omitempty"`
	URL  string    `json:"url"`
}

func (m WebViewMessage) VariantID() string               { return m.ID }
func (m WebViewMessage) Class() ClassType                { return ClassWebViewMessage }
func (m WebViewMessage) Card() *CardData                 { return m.Data }
func (m WebViewMessage) Equal(other WebViewMessage) bool { return m.ID == other.ID }

// SplitTags splits a comma-space-separated tag list, the token syntax
// used by both card extras and the persisted priority hint.
func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ", ")
}
