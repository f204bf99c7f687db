package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/newgrounds"
)

// Search results page.
var (
	resultBlock       = cascadia.MustCompile(".audio-wrapper")
	resultAnchor      = cascadia.MustCompile(".item-audiosubmission")
	resultThumbnail   = cascadia.MustCompile(".item-icon img")
	resultArtist      = cascadia.MustCompile(".detail-title strong")
	resultDescription = cascadia.MustCompile(".detail-description")
	resultMeta        = cascadia.MustCompile(".item-details-meta")
	resultStarScore   = cascadia.MustCompile(".star-score")
	resultMetaValues  = cascadia.MustCompile("dl dd")
)

// Audio listen page.
var (
	ogImage          = cascadia.MustCompile("meta[property='og:image']")
	ogTitle          = cascadia.MustCompile("meta[property='og:title']")
	ogDescription    = cascadia.MustCompile("meta[property='og:description']")
	ogAudio          = cascadia.MustCompile("meta[property='og:audio']")
	creditsLink      = cascadia.MustCompile(".authorlinks .item-details-main h4 a")
	creditsIcon      = cascadia.MustCompile(".authorlinks .user-icon-bordered image")
	sideStats        = cascadia.MustCompile("dl.sidestats")
	favesLink        = cascadia.MustCompile("#faves_load")
	genreLink        = cascadia.MustCompile(".sidestats.flex-1 dd a")
	frontpageLink    = cascadia.MustCompile(".frontpage a")
	appearanceLabel  = cascadia.MustCompile("ul.itemlist.alternating > li > span")
	appearanceLink   = cascadia.MustCompile("ul.itemlist.alternating > li > span > a")
	relatedItems     = cascadia.MustCompile("div.pod-body.audio-view > ul > li")
	relatedLink      = cascadia.MustCompile("a.item-link")
	relatedTitle     = cascadia.MustCompile("a.item-link > h4 > span")
	relatedArtist    = cascadia.MustCompile("a.item-link > h4 span strong")
	licensingTerms   = cascadia.MustCompile("div#creative_commons .pod-body.creative-commons")
	ratingHeading    = cascadia.MustCompile("div[itemprop='itemReviewed'] > h2")
	downloadLink     = cascadia.MustCompile("a.icon-download")
	shareLink        = cascadia.MustCompile("a.icon-share")
	authorComments   = cascadia.MustCompile("div#author_comments")
	reviewsContainer = cascadia.MustCompile("div > div .pod-body.review")
)

// Ensure Extractor implements newgrounds.StaticExtractor at compile time.
var _ newgrounds.StaticExtractor = (*Extractor)(nil)

// Extractor reads raw records out of static Newgrounds markup.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractSearchResults implements newgrounds.StaticExtractor. Result blocks
// without a submission anchor are skipped.
func (e *Extractor) ExtractSearchResults(html string) ([]*newgrounds.RawSearchResult, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	results := []*newgrounds.RawSearchResult{}
	doc.FindMatcher(resultBlock).Each(func(_ int, block *goquery.Selection) {
		anchor := block.FindMatcher(resultAnchor).First()
		if anchor.Length() == 0 {
			return
		}

		meta := anchor.FindMatcher(resultMeta)
		var values []string
		meta.FindMatcher(resultMetaValues).Each(func(_ int, dd *goquery.Selection) {
			values = append(values, strings.TrimSpace(dd.Text()))
		})

		results = append(results, &newgrounds.RawSearchResult{
			Title:            anchor.AttrOr("title", ""),
			Link:             strings.TrimSpace(anchor.AttrOr("href", "")),
			Thumbnail:        anchor.FindMatcher(resultThumbnail).AttrOr("src", ""),
			Artist:           strings.TrimSpace(anchor.FindMatcher(resultArtist).Text()),
			ShortDescription: strings.TrimSpace(anchor.FindMatcher(resultDescription).Text()),
			ScoreTitle:       meta.FindMatcher(resultStarScore).AttrOr("title", ""),
			Meta:             values,
		})
	})
	return results, nil
}

// ExtractAudio implements newgrounds.StaticExtractor. Missing elements
// leave the corresponding raw fields empty.
func (e *Extractor) ExtractAudio(html string) (*newgrounds.RawAudio, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	credits := doc.FindMatcher(creditsLink).First()
	frontpage := doc.FindMatcher(frontpageLink).First()

	raw := &newgrounds.RawAudio{
		Title:   doc.FindMatcher(ogTitle).AttrOr("content", ""),
		Caption: doc.FindMatcher(ogDescription).AttrOr("content", ""),
		Icon:    doc.FindMatcher(ogImage).AttrOr("content", ""),

		CreditsArtist: strings.TrimSpace(credits.Text()),
		CreditsURL:    credits.AttrOr("href", ""),
		CreditsIcon:   doc.FindMatcher(creditsIcon).AttrOr("href", ""),

		Fields: WalkFields(doc.FindMatcher(sideStats)),

		FavesURL:  doc.FindMatcher(favesLink).AttrOr("href", ""),
		GenreHref: doc.FindMatcher(genreLink).AttrOr("href", ""),

		HasFrontpage:  frontpage.Length() > 0,
		FrontpageText: strings.TrimSpace(frontpage.Text()),
		FrontpageHref: frontpage.AttrOr("href", ""),

		AppearanceLabel: strings.TrimSpace(doc.FindMatcher(appearanceLabel).Text()),
		AppearanceURL:   doc.FindMatcher(appearanceLink).AttrOr("href", ""),

		Related: []newgrounds.RawRelated{},

		LicensingHTML:      innerHTML(doc.FindMatcher(licensingTerms)),
		AuthorCommentsHTML: innerHTML(doc.FindMatcher(authorComments)),

		RatingClass: doc.FindMatcher(ratingHeading).AttrOr("class", ""),
		DownloadURL: doc.FindMatcher(downloadLink).AttrOr("href", ""),
		FileURL:     doc.FindMatcher(ogAudio).AttrOr("content", ""),
		ShareURL:    doc.FindMatcher(shareLink).AttrOr("href", ""),

		HasReviews: doc.FindMatcher(reviewsContainer).Length() > 0,
	}

	doc.FindMatcher(relatedItems).Each(func(_ int, li *goquery.Selection) {
		raw.Related = append(raw.Related, newgrounds.RawRelated{
			URL:    li.FindMatcher(relatedLink).AttrOr("href", ""),
			Title:  strings.TrimSpace(li.FindMatcher(relatedTitle).First().Text()),
			Artist: strings.TrimSpace(li.FindMatcher(relatedArtist).Text()),
		})
	})

	return raw, nil
}

func parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newgrounds.Errorf(newgrounds.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// innerHTML returns the inner markup of the first element in sel, or ""
// when there is none.
func innerHTML(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	h, err := sel.First().Html()
	if err != nil {
		return ""
	}
	return h
}
