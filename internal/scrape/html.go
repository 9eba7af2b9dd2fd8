package scrape

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// MaxHTMLSize limits page input to 10MB to prevent memory exhaustion.
const MaxHTMLSize = 10 * 1024 * 1024

// DetectCharset detects the charset of raw page bytes, defaulting to utf-8.
func DetectCharset(data []byte) string {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

// LoadDocument parses raw page bytes with automatic charset detection.
func LoadDocument(data []byte) (*goquery.Document, error) {
	if len(data) > MaxHTMLSize {
		data = data[:MaxHTMLSize]
	}

	detected := DetectCharset(data)

	reader := bytes.NewReader(data)
	utf8Reader, err := charset.NewReader(reader, detected)
	if err != nil {
		// Fallback to direct parsing
		return goquery.NewDocumentFromReader(bytes.NewReader(data))
	}

	return goquery.NewDocumentFromReader(utf8Reader)
}

// NormalizeWhitespace collapses whitespace runs into single spaces.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
