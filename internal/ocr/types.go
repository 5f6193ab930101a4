package ocr

import "docmark/internal/intake"

// Request carries one validated upload to the OCR upstream.
// Constructed immediately before the call and never shared.
type Request struct {
	Data     []byte
	Filename string
	Kind     intake.Kind
}

// Result is the combined markdown for the whole document. Immutable
// once returned.
type Result struct {
	Markdown string
	Pages    int
}

// Response mirrors the Mistral OCR API response.
type Response struct {
	Pages     []Page `json:"pages"`
	Model     string `json:"model"`
	UsageInfo struct {
		PagesProcessed int  `json:"pages_processed"`
		DocSizeBytes   *int `json:"doc_size_bytes"`
	} `json:"usage_info"`
}

type Page struct {
	Index      int     `json:"index"`
	Markdown   string  `json:"markdown"`
	Images     []Image `json:"images"`
	Dimensions struct {
		DPI    int `json:"dpi"`
		Height int `json:"height"`
		Width  int `json:"width"`
	} `json:"dimensions"`
}

type Image struct {
	ID           string `json:"id"`
	TopLeftX     int    `json:"top_left_x"`
	TopLeftY     int    `json:"top_left_y"`
	BottomRightX int    `json:"bottom_right_x"`
	BottomRightY int    `json:"bottom_right_y"`
	ImageBase64  string `json:"image_base64"`
}

type uploadResponse struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	Filename  string `json:"filename"`
	Purpose   string `json:"purpose"`
	CreatedAt int64  `json:"created_at"`
}

type signedURLResponse struct {
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at,omitempty"`
}

type ocrRequest struct {
	Model              string      `json:"model"`
	Document           ocrDocument `json:"document"`
	IncludeImageBase64 bool        `json:"include_image_base64"`
}

type ocrDocument struct {
	Type        string `json:"type"`
	DocumentURL string `json:"document_url,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}
