package domain

// PageContent is the static record behind a page: banners, carousel images
// and SEO metadata. Only active rows are ever loaded.
type PageContent struct {
	Title          string  `json:"title"`
	Banner         *string `json:"banner"`
	MobBanner      *string `json:"mob_banner"`
	Carausel1      *string `json:"carausel1"`
	Carausel2      *string `json:"carausel2"`
	Carausel3      *string `json:"carausel3"`
	SEOTitle       *string `json:"seo_title"`
	SEOKeyword     *string `json:"seo_keyword"`
	SEODescription *string `json:"seo_description"`
	Description    *string `json:"description"`
}

// PageResult is the payload for one page request. Implemented by SimplePage
// and HomePage.
type PageResult interface {
	Kind() PageKind
}

// SimplePage carries the static content of a non-home page. PageContent is
// nil when no active row exists.
type SimplePage struct {
	PageKind    PageKind     `json:"-"`
	PageContent *PageContent `json:"pageContent"`
}

func (p *SimplePage) Kind() PageKind { return p.PageKind }

// HomePage is the HOME payload: its static content plus the brand offer
// cards. Brands is never nil so it always encodes as a JSON array.
type HomePage struct {
	PageContent *PageContent     `json:"pageContent"`
	Brands      []BrandOfferCard `json:"brands"`
}

func (p *HomePage) Kind() PageKind { return PageHome }
