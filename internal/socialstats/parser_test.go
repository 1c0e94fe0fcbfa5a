package socialstats

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"1.2K", 1200},
		{"1.5M", 1500000},
		{"123", 123},
		{"12,345", 12345},
		{"1 234", 1234},
		{"100K", 100000},
		{"2.3M", 2300000},
		{"0", 0},
		{"", 0},
		{"no number", 0},
		{"42k", 42000},
		{"3.14k", 3140},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := parseCount(tt.input)
			if result != tt.expected {
				t.Errorf("parseCount(%q) = %d, want %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFollowersFromText(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"1.2M Followers, 350 Following, 42 Posts", 1200000},
		{"jane (@jane) on TikTok | 801.3K Followers", 801300},
		{"Channel with 12,345 subscribers", 12345},
		{"followers", 0},
		{"350 Following", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := followersFromText(tt.input); got != tt.expected {
				t.Errorf("followersFromText(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestExtractFollowers(t *testing.T) {
	html := `<html><head>
		<meta property="og:description" content="2.5M Followers, 120 Following">
		<title>someone</title>
	</head><body></body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to build document: %v", err)
	}

	if got := extractFollowers(doc); got != 2500000 {
		t.Errorf("extractFollowers = %d, want 2500000", got)
	}
}

func TestExtractFollowersFallsBackToTitle(t *testing.T) {
	html := `<html><head>
		<title>creator - 98.7K Followers</title>
	</head><body></body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to build document: %v", err)
	}

	if got := extractFollowers(doc); got != 98700 {
		t.Errorf("extractFollowers = %d, want 98700", got)
	}
}

func TestExtractFollowersMissing(t *testing.T) {
	html := `<html><head><title>just a page</title></head><body></body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to build document: %v", err)
	}

	if got := extractFollowers(doc); got != 0 {
		t.Errorf("extractFollowers = %d, want 0 when nothing matches", got)
	}
}

func TestProfileURL(t *testing.T) {
	tests := []struct {
		platform string
		handle   string
		expected string
	}{
		{"instagram", "jane", "https://www.instagram.com/jane/"},
		{"instagram", "@jane", "https://www.instagram.com/jane/"},
		{"tiktok", "jane", "https://www.tiktok.com/@jane"},
		{"youtube", "jane", "https://www.youtube.com/@jane"},
		{"twitter", "jane", "https://x.com/jane"},
		{"facebook", "jane", "https://www.facebook.com/jane"},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			got, err := profileURL(tt.platform, tt.handle)
			if err != nil {
				t.Fatalf("profileURL failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("profileURL = %q, want %q", got, tt.expected)
			}
		})
	}

	if _, err := profileURL("whatsapp", "jane"); err == nil {
		t.Error("whatsapp has no public profile page, expected error")
	}
}
