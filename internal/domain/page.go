package domain

import (
	"strings"

	apperrors "github.com/riseagainX/orm/pkg/errors"
)

// PageKind identifies a page served by the content API.
type PageKind string

// Supported page kinds. HOME is aggregated; the rest are single-row lookups.
const (
	PageHome      PageKind = "HOME"
	PageOffer     PageKind = "OFFER"
	PageGifting   PageKind = "GIFTING"
	PageDiscount  PageKind = "DISCOUNT"
	PagePromocode PageKind = "PROMOCODE"
)

// PageKinds returns every supported page kind.
func PageKinds() []PageKind {
	return []PageKind{PageHome, PageOffer, PageGifting, PageDiscount, PagePromocode}
}

// ParsePageKind upper-cases title and matches it against the supported kinds.
// Anything else yields an UNSUPPORTED_PAGE error carrying the original title.
func ParsePageKind(title string) (PageKind, error) {
	kind := PageKind(strings.ToUpper(title))
	switch kind {
	case PageHome, PageOffer, PageGifting, PageDiscount, PagePromocode:
		return kind, nil
	}
	return "", apperrors.UnsupportedPage(title)
}

// IsHome reports whether the kind needs the brand offer aggregation.
func (k PageKind) IsHome() bool {
	return k == PageHome
}

func (k PageKind) String() string {
	return string(k)
}
