package usecase

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"go-agency-backend/internal/domain"
)

// sitePages lists the static marketing pages exposed to crawlers.
var sitePages = []domain.Page{
	{Path: "/", ChangeFreq: "weekly", Priority: "1.0"},
	{Path: "/about", ChangeFreq: "monthly", Priority: "0.8"},
	{Path: "/services", ChangeFreq: "monthly", Priority: "0.9"},
	{Path: "/portfolio", ChangeFreq: "weekly", Priority: "0.8"},
	{Path: "/blog", ChangeFreq: "daily", Priority: "0.7"},
	{Path: "/careers", ChangeFreq: "weekly", Priority: "0.6"},
	{Path: "/contact", ChangeFreq: "yearly", Priority: "0.8"},
	{Path: "/privacy-policy", ChangeFreq: "yearly", Priority: "0.2"},
	{Path: "/terms-of-service", ChangeFreq: "yearly", Priority: "0.2"},
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type seoUsecase struct {
	siteURL string
	now     func() time.Time
}

// NewSEOUsecase creates the usecase serving sitemap.xml and robots.txt for
// the given public site URL.
func NewSEOUsecase(siteURL string) domain.SEOUsecase {
	return &seoUsecase{
		siteURL: strings.TrimRight(siteURL, "/"),
		now:     time.Now,
	}
}

func (uc *seoUsecase) SitemapXML() ([]byte, error) {
	lastMod := uc.now().UTC().Format("2006-01-02")

	set := urlset{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, 0, len(sitePages)),
	}
	for _, page := range sitePages {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        uc.siteURL + page.Path,
			LastMod:    lastMod,
			ChangeFreq: page.ChangeFreq,
			Priority:   page.Priority,
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

func (uc *seoUsecase) RobotsTxt() string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /v1/\n")
	b.WriteString("\n")
	b.WriteString("Sitemap: " + uc.siteURL + "/sitemap.xml\n")
	return b.String()
}
