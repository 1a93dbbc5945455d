package v1

import (
	"net/http"

	"go-agency-backend/internal/domain"
	"go-agency-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SEOHandler struct {
	seoUC domain.SEOUsecase
}

// NewSEOHandler registers the crawler-facing routes at the server root;
// crawlers expect them outside any API prefix.
func NewSEOHandler(root *gin.Engine, seoUC domain.SEOUsecase) {
	handler := &SEOHandler{seoUC: seoUC}

	root.GET("/sitemap.xml", handler.Sitemap)
	root.GET("/robots.txt", handler.Robots)
}

// Sitemap godoc
// @Summary      Sitemap
// @Description  XML sitemap of the site's static marketing pages.
// @Tags         seo
// @Produce      xml
// @Success      200  {string}  string
// @Router       /sitemap.xml [get]
func (h *SEOHandler) Sitemap(c *gin.Context) {
	body, err := h.seoUC.SitemapXML()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// Robots godoc
// @Summary      Robots
// @Description  robots.txt with the sitemap pointer.
// @Tags         seo
// @Produce      plain
// @Success      200  {string}  string
// @Router       /robots.txt [get]
func (h *SEOHandler) Robots(c *gin.Context) {
	c.String(http.StatusOK, h.seoUC.RobotsTxt())
}
