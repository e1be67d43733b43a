package collector

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go-autoapply/internal/config"
	"go-autoapply/internal/models"

	"github.com/gocolly/colly/v2"
)

// HTMLSource scrapes a listing page with configurable CSS selectors.
// Markup changes on the target site break the selectors, so everything
// is read from config rather than hardcoded.
type HTMLSource struct {
	name        string
	url         string
	allowedHost string

	cardSel     string
	titleSel    string
	companySel  string
	locationSel string
	linkSel     string
}

func NewHTMLSource(sc config.SourceConfig) *HTMLSource {
	return &HTMLSource{
		name:        sc.Name,
		url:         sc.URL,
		allowedHost: hostOf(sc.URL),
		cardSel:     sc.CardSelector,
		titleSel:    sc.TitleSelector,
		companySel:  sc.CompanySelector,
		locationSel: sc.LocationSelector,
		linkSel:     sc.LinkSelector,
	}
}

func (s *HTMLSource) Name() string {
	return s.name
}

func (s *HTMLSource) Fetch(ctx context.Context) ([]models.JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.cardSel == "" || s.titleSel == "" {
		return nil, fmt.Errorf("html source %s needs card and title selectors", s.name)
	}

	c := colly.NewCollector(
		colly.AllowedDomains(s.allowedHost),
	)
	c.SetRequestTimeout(20 * time.Second)

	var jobs []models.JobPosting
	c.OnHTML(s.cardSel, func(e *colly.HTMLElement) {
		title := strings.TrimSpace(e.ChildText(s.titleSel))
		if title == "" {
			return
		}

		link := e.ChildAttr(s.linkSel, "href")
		if link == "" {
			//the card itself may be the anchor
			link = e.Attr("href")
		}

		jobs = append(jobs, models.JobPosting{
			Title:    title,
			Company:  strings.TrimSpace(e.ChildText(s.companySel)),
			Location: strings.TrimSpace(e.ChildText(s.locationSel)),
			URL:      e.Request.AbsoluteURL(link),
			Source:   models.SourceHTML,
		})
	})

	if err := c.Visit(s.url); err != nil {
		return nil, fmt.Errorf("html scrape failed: %w", err)
	}
	return jobs, nil
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
