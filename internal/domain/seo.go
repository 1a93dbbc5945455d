package domain

// Page is one static marketing page exposed in the sitemap.
type Page struct {
	Path       string
	ChangeFreq string
	Priority   string
}

// SEOUsecase builds the crawler-facing documents for the site.
type SEOUsecase interface {
	// SitemapXML renders the sitemap.xml document, including the XML header.
	SitemapXML() ([]byte, error)
	// RobotsTxt renders the robots.txt document.
	RobotsTxt() string
}
