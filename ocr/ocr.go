//go:build ocr

// Package ocr digitalizes scanned classical editions: it wraps the
// Tesseract OCR engine via gosseract, preconfigured for vertical
// traditional Chinese, and cleans the recognized text so it can feed a
// stream.Builder directly.
//
// Tesseract must be installed on the system, together with the
// chi_tra and chi_tra_vert trained data. On macOS:
//
//	brew install tesseract tesseract-lang
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-chi-tra tesseract-ocr-chi-tra-vert
//
// OCR support is compiled in only with the "ocr" build tag; without it a
// stub returns ErrOCRNotEnabled.
package ocr

import (
	"fmt"
	"image"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client with Tesseract defaults. The client
// should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// NewVertical creates an OCR client configured for a scanned page of
// vertical traditional Chinese: the chi_tra_vert+chi_tra language pair
// and single-block vertical-text page segmentation.
func NewVertical() (*Client, error) {
	c, err := New()
	if err != nil {
		return nil, err
	}
	if err := c.SetLanguage("chi_tra_vert+chi_tra"); err != nil {
		c.Close()
		return nil, fmt.Errorf("setting vertical language: %w", err)
	}
	if err := c.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK_VERT_TEXT); err != nil {
		c.Close()
		return nil, fmt.Errorf("setting page segmentation: %w", err)
	}
	return c, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// RecognizePage preprocesses a scanned page image (see Prepare) and
// returns the recognized text cleaned for layout: whitespace removed,
// NFC-normalized, modern punctuation stripped.
func (c *Client) RecognizePage(img image.Image) (string, error) {
	data, err := Prepare(img)
	if err != nil {
		return "", fmt.Errorf("preparing page image: %w", err)
	}
	raw, err := c.RecognizeImage(data)
	if err != nil {
		return "", err
	}
	return Clean(raw), nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string
// (e.g. "chi_tra_vert+chi_tra"). Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode.
// This affects how Tesseract analyzes the page layout.
// See gosseract.PageSegMode constants for available modes.
func (c *Client) SetPageSegMode(mode gosseract.PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}
