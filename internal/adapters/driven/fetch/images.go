package fetch

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/scrawl-cli/internal/logger"
)

// imageSectionHeader delimits OCR-recovered image text from the
// page's own paragraphs inside a record's content.
const imageSectionHeader = "--- Text Extracted from Images ---"

// minImageDimension filters decorative images. Only images whose
// width and height both exceed this are worth OCR.
const minImageDimension = 100

// maxImagesPerPage bounds the OCR work done for one page.
const maxImagesPerPage = 10

// decorativeNames in an image URL mark icons and branding assets.
var decorativeNames = []string{"icon", "logo", "sprite", "avatar", "badge"}

// imageText downloads the page's content images and returns their OCR
// text, one block per image, each prefixed with the alt text.
func (f *Fetcher) imageText(ctx context.Context, pageURL, html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}

	var blocks []string
	doc.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, ok := s.Attr("src")
		if !ok || !isContentImage(s, src) {
			return true
		}

		imgURL := resolveLink(base, src)
		if imgURL == "" {
			return true
		}

		data, err := f.download(ctx, imgURL)
		if err != nil {
			logger.Debug("Image download failed for %s: %v", imgURL, err)
			return ctx.Err() == nil
		}

		if !decodedLargeEnough(data) {
			logger.Debug("Skipping small image %s", imgURL)
			return true
		}

		text, err := f.ocr.Recognize(ctx, data, f.ocrLangs)
		if err != nil {
			logger.Debug("Image OCR failed for %s: %v", imgURL, err)
			return ctx.Err() == nil
		}

		if text = strings.TrimSpace(text); text != "" {
			if alt := strings.TrimSpace(s.AttrOr("alt", "")); alt != "" {
				text = "[Image: " + alt + "]\n" + text
			}
			blocks = append(blocks, text)
		}
		return len(blocks) < maxImagesPerPage
	})

	return strings.Join(blocks, "\n\n")
}

// decodedLargeEnough decodes the image header and reports whether
// both dimensions exceed the minimum. Undecodable data passes through
// to OCR, which produces its own error.
func decodedLargeEnough(data []byte) bool {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return true
	}
	return cfg.Width > minImageDimension && cfg.Height > minImageDimension
}

// isContentImage filters out icons, logos and images too small to
// carry readable text by their declared attributes. It runs before
// the download; the decoded dimensions are checked after.
func isContentImage(s *goquery.Selection, src string) bool {
	srcLower := strings.ToLower(src)
	for _, name := range decorativeNames {
		if strings.Contains(srcLower, name) {
			return false
		}
	}

	for _, attr := range []string{"width", "height"} {
		if raw, ok := s.Attr(attr); ok {
			if n, err := strconv.Atoi(strings.TrimSuffix(raw, "px")); err == nil && n <= minImageDimension {
				return false
			}
		}
	}
	return true
}

// download fetches one image.
func (f *Fetcher) download(ctx context.Context, imgURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imgURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download image: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
