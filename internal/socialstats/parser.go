package socialstats

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/adfluence/backend/internal/models"
	"go.uber.org/zap"
)

// ProfileStats is what the parser could extract from a public profile
// page. Followers is nil when the page gave nothing usable.
type ProfileStats struct {
	Platform  string    `json:"platform"`
	Handle    string    `json:"handle"`
	Followers *int      `json:"followers,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
}

type Parser struct {
	httpClient *http.Client
	log        *zap.Logger
	maxRetries int
}

func NewParser(timeoutMS, maxRetries int, log *zap.Logger) *Parser {
	return &Parser{
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutMS) * time.Millisecond,
		},
		log:        log,
		maxRetries: maxRetries,
	}
}

func profileURL(platform, handle string) (string, error) {
	handle = strings.TrimPrefix(handle, "@")
	switch platform {
	case models.PlatformInstagram:
		return fmt.Sprintf("https://www.instagram.com/%s/", handle), nil
	case models.PlatformTikTok:
		return fmt.Sprintf("https://www.tiktok.com/@%s", handle), nil
	case models.PlatformFacebook:
		return fmt.Sprintf("https://www.facebook.com/%s", handle), nil
	case models.PlatformTwitter:
		return fmt.Sprintf("https://x.com/%s", handle), nil
	case models.PlatformYouTube:
		return fmt.Sprintf("https://www.youtube.com/@%s", handle), nil
	default:
		return "", fmt.Errorf("no public profile page for platform %q", platform)
	}
}

// FetchFollowers loads the public profile page and extracts the follower
// count from its description metadata.
func (p *Parser) FetchFollowers(ctx context.Context, platform, handle string) (*ProfileStats, error) {
	url, err := profileURL(platform, handle)
	if err != nil {
		return nil, err
	}

	var doc *goquery.Document
	var lastErr error

	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")

		resp, err := p.httpClient.Do(req)
		if err != nil {
			lastErr = err
			p.log.Debug("profile fetch failed", zap.String("url", url), zap.Int("attempt", attempt), zap.Error(err))
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
			continue
		}

		doc, err = goquery.NewDocumentFromReader(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		lastErr = nil
		break
	}

	if lastErr != nil {
		return nil, lastErr
	}

	stats := &ProfileStats{
		Platform:  platform,
		Handle:    handle,
		FetchedAt: time.Now(),
	}

	if n := extractFollowers(doc); n > 0 {
		stats.Followers = &n
	}
	return stats, nil
}

// extractFollowers checks the description meta tags first (profile pages
// embed counts like "1.2M Followers" there), then the page title.
func extractFollowers(doc *goquery.Document) int {
	candidates := []string{
		doc.Find(`meta[property="og:description"]`).AttrOr("content", ""),
		doc.Find(`meta[name="description"]`).AttrOr("content", ""),
		doc.Find("title").Text(),
	}
	for _, text := range candidates {
		if n := followersFromText(text); n > 0 {
			return n
		}
	}
	return 0
}

var followersRe = regexp.MustCompile(`(?i)([0-9][0-9.,\s]*[KkMm]?)\s*(followers|subscribers)`)

func followersFromText(text string) int {
	m := followersRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	return parseCount(m[1])
}

var countRe = regexp.MustCompile(`([0-9]+(?:[.,][0-9]+)*(?: [0-9]{3})*)\s*([KkMm]?)`)

// parseCount turns a human-formatted count ("1.2K", "12,345", "1 234")
// into an integer. Unparseable input yields 0.
func parseCount(s string) int {
	m := countRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0
	}

	num := strings.ReplaceAll(m[1], " ", "")
	mult := 1.0
	switch strings.ToLower(m[2]) {
	case "k":
		mult = 1_000
	case "m":
		mult = 1_000_000
	}

	if mult == 1 {
		// bare numbers use commas as thousands separators
		num = strings.ReplaceAll(num, ",", "")
	} else {
		// suffixed numbers use , or . as decimal point
		num = strings.ReplaceAll(num, ",", ".")
	}

	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	return int(math.Round(f * mult))
}
