package httpapi

import (
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	baseWidth  = 640
	baseHeight = 360
)

// OEmbed is the rich-type descriptor returned for the game URL.
type OEmbed struct {
	Version         string `json:"version"`
	Type            string `json:"type"`
	ProviderName    string `json:"provider_name"`
	ProviderURL     string `json:"provider_url"`
	Title           string `json:"title"`
	AuthorName      string `json:"author_name"`
	AuthorURL       string `json:"author_url"`
	HTML            string `json:"html"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	ThumbnailURL    string `json:"thumbnail_url"`
	ThumbnailWidth  int    `json:"thumbnail_width"`
	ThumbnailHeight int    `json:"thumbnail_height"`
}

// Dimensions applies the maxwidth then maxheight constraints to the 640x360
// frame, keeping the aspect ratio. Only values that shrink the frame count.
func Dimensions(maxWidth, maxHeight int) (width, height int) {
	width, height = baseWidth, baseHeight
	if maxWidth > 0 && maxWidth < width {
		width = maxWidth
		height = int(math.Round(float64(maxWidth) / baseWidth * baseHeight))
	}
	if maxHeight > 0 && maxHeight < height {
		height = maxHeight
		width = int(math.Round(float64(maxHeight) / baseHeight * baseWidth))
	}
	return width, height
}

func buildOEmbed(embedURL, providerURL string, width, height int) OEmbed {
	return OEmbed{
		Version:      "1.0",
		Type:         "rich",
		ProviderName: "Currency Converter Game",
		ProviderURL:  providerURL,
		Title:        "Interactive Currency Converter Game",
		AuthorName:   "Currency Converter",
		AuthorURL:    providerURL,
		HTML: fmt.Sprintf(
			`<iframe src="%s" width="%d" height="%d" frameborder="0" allow="autoplay; fullscreen; gamepad; keyboard-map" allowfullscreen></iframe>`,
			embedURL, width, height,
		),
		Width:           width,
		Height:          height,
		ThumbnailURL:    "https://via.placeholder.com/640x360/667eea/ffffff?text=Currency+Quiz+Game",
		ThumbnailWidth:  baseWidth,
		ThumbnailHeight: baseHeight,
	}
}

// origin returns scheme://host of raw, or raw when it does not parse.
func origin(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return raw
	}
	return u.Scheme + "://" + u.Host
}

// leadingInt parses the leading decimal digits of s ("300px" is 300).
// Anything without a leading number is 0.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func (s *Server) handleOEmbed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	setCORS(w.Header(), "GET")

	if q.Get("url") != s.cfg.GameURL {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "URL not found"})
		return
	}

	width, height := Dimensions(leadingInt(q.Get("maxwidth")), leadingInt(q.Get("maxheight")))
	writeJSON(w, http.StatusOK, buildOEmbed(s.cfg.EmbedURL, origin(s.cfg.GameURL), width, height))
}

func (s *Server) handleOEmbedOptions(w http.ResponseWriter, _ *http.Request) {
	setCORS(w.Header(), "GET, OPTIONS")
	w.WriteHeader(http.StatusOK)
}

func setCORS(h http.Header, methods string) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", methods)
	h.Set("Access-Control-Allow-Headers", "Content-Type")
}
