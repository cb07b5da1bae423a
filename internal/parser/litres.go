package parser

import (
	"context"
	"log/slog"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"book_tracker_tgbot/config"
	"book_tracker_tgbot/internal/model"
	"book_tracker_tgbot/utils"

	"github.com/gocolly/colly/v2"
)

var (
	volumeRe = regexp.MustCompile(`(\d+)\s*тыс\.?\s*знаков`)
	spacesRe = regexp.MustCompile(`\s+`)
)

type LitresParser struct {
	cfg *config.Config
}

func NewLitresParser(cfg *config.Config) *LitresParser {
	return &LitresParser{cfg: cfg}
}

func (l *LitresParser) getCollector() (*colly.Collector, error) {
	op := "LitresParser.getCollector"
	c := colly.NewCollector()

	if l.cfg.Litres.RequestTimeout > 0 {
		c.SetRequestTimeout(l.cfg.Litres.RequestTimeout)
	}

	if l.cfg.Litres.ProxyUrl != "" {
		err := c.SetProxy(l.cfg.Litres.ProxyUrl)
		if err != nil {
			slog.Error(
				"Failed to set proxy",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return nil, err
		}
	}

	return c, nil
}

// SearchBooks returns the candidates found for the query in page order.
// Failures are logged and produce an empty list.
func (l *LitresParser) SearchBooks(ctx context.Context, query string) []model.CatalogCandidate {
	op := "LitresParser.SearchBooks"
	rqID := utils.GetRequestIDFromCtx(ctx)

	books := make([]model.CatalogCandidate, 0)

	c, err := l.getCollector()
	if err != nil {
		slog.Error(
			"Failed to get collector with set proxy",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
		)
		return books
	}

	c.OnHTML(".art-item", func(e *colly.HTMLElement) {
		title := cleanText(e.ChildText(".art-item__name a"))
		if title == "" {
			return
		}

		candidate := model.CatalogCandidate{
			Title:  title,
			Author: cleanText(e.ChildText(".art-item__author a")),
		}
		if pages, ok := parseVolume(e.Text); ok {
			candidate.TotalPages = &pages
		}

		books = append(books, candidate)
	})

	c.OnRequest(func(r *colly.Request) {
		slog.Info("Visiting", slog.String("op", op), slog.String("rqID", rqID), slog.String("url", r.URL.String()))
	})

	params := url.Values{}
	params.Set("q", query)
	fullURL := l.cfg.Litres.BaseUrl + l.cfg.Litres.SearchPage + "?" + params.Encode()

	err = c.Visit(fullURL)
	if err != nil {
		slog.Error(
			"Error while visiting url",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("url", fullURL),
			slog.String("err", err.Error()),
		)
		return make([]model.CatalogCandidate, 0)
	}

	slog.Info("Books found", slog.String("op", op), slog.String("rqID", rqID), slog.Int("count", len(books)))
	return books
}

// parseVolume converts annotations like "370 тыс. знаков" into a page count.
func parseVolume(text string) (int, bool) {
	matches := volumeRe.FindStringSubmatch(strings.ReplaceAll(text, "\u00a0", " "))
	if len(matches) != 2 {
		return 0, false
	}

	thousands, err := strconv.Atoi(matches[1])
	if err != nil || thousands <= 0 {
		return 0, false
	}
	return model.PagesFromVolume(thousands), true
}

func cleanText(text string) string {
	text = strings.ReplaceAll(text, "\u00a0", " ")
	return strings.TrimSpace(spacesRe.ReplaceAllString(text, " "))
}
