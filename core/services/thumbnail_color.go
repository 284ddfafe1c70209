// ABOUTME: Thumbnail color extraction service for video thumbnail accent colors
// ABOUTME: Uses K-means clustering to find the most prominent color in a thumbnail

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"strings"
	"time"

	"activity-viewer-api/core/domain"
	"activity-viewer-api/core/interfaces"

	"github.com/EdlinOrg/prominentcolor"
)

const (
	defaultColorValue = 128
	colorKeyPrefix    = "thumbnailColor:"
	colorCacheTTL     = 24 * time.Hour
)

// ThumbnailColorService extracts the prominent color of video thumbnails so
// the UI can theme entries. Results are cached; failures fall back to a
// neutral gray rather than erroring.
type ThumbnailColorService struct {
	deps interfaces.Dependencies
}

// NewThumbnailColorService creates a new thumbnail color service.
func NewThumbnailColorService(deps interfaces.Dependencies) *ThumbnailColorService {
	return &ThumbnailColorService{deps: deps}
}

// ExtractColor extracts the prominent color from an image URL.
func (s *ThumbnailColorService) ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	if imageURL == "" {
		return s.defaultColor(), nil
	}

	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, colorKeyPrefix+imageURL); err == nil && data != nil {
			var color domain.RGBColor
			if err := json.Unmarshal(data, &color); err == nil {
				return &color, nil
			}
		}
	}

	color, err := s.extractColorFromURL(ctx, imageURL)
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Debug("Failed to extract color from thumbnail", map[string]interface{}{
				"url":   imageURL,
				"error": err.Error(),
			})
		}
		color = s.defaultColor()
	}

	if s.deps.Cache != nil {
		if data, err := json.Marshal(color); err == nil {
			_ = s.deps.Cache.Set(ctx, colorKeyPrefix+imageURL, data, colorCacheTTL)
		}
	}

	return color, nil
}

// extractColorFromURL downloads and extracts color from the image.
func (s *ThumbnailColorService) extractColorFromURL(ctx context.Context, imageURL string) (color *domain.RGBColor, err error) {
	// prominentcolor can panic on malformed images
	defer func() {
		if rec := recover(); rec != nil {
			color = s.defaultColor()
			err = fmt.Errorf("panic recovered: %v", rec)
		}
	}()

	parsedURL, parseErr := url.Parse(imageURL)
	if parseErr != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid image URL: %s", imageURL)
	}

	// SVG can't be decoded as a raster image
	if strings.HasSuffix(strings.ToLower(parsedURL.Path), ".svg") {
		return nil, fmt.Errorf("SVG images are not supported")
	}

	if s.deps.HTTPClient == nil {
		return nil, fmt.Errorf("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, imageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("image returned status %d", resp.StatusCode())
	}

	img, _, err := image.Decode(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	colors, err := prominentcolor.Kmeans(img)
	if err != nil || len(colors) == 0 {
		return nil, fmt.Errorf("color extraction failed: %w", err)
	}

	return &domain.RGBColor{
		R: uint8(colors[0].Color.R),
		G: uint8(colors[0].Color.G),
		B: uint8(colors[0].Color.B),
	}, nil
}

// defaultColor returns a neutral gray used when extraction is not possible.
func (s *ThumbnailColorService) defaultColor() *domain.RGBColor {
	return &domain.RGBColor{R: defaultColorValue, G: defaultColorValue, B: defaultColorValue}
}
