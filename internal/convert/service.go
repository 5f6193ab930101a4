package convert

import (
	"context"
	"log"

	"docmark/internal/intake"
	"docmark/internal/ocr"
	"docmark/internal/render"

	"github.com/google/uuid"
)

// OCRClient is the upstream the service forwards validated uploads to.
type OCRClient interface {
	Process(ctx context.Context, req ocr.Request) (*ocr.Result, error)
}

// Conversion is one finished upload -> markdown round trip. Markdown is
// the OCR output verbatim; HTML is the rendered preview of the same text.
type Conversion struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	Markdown     string `json:"markdown"`
	HTML         string `json:"html"`
	DownloadName string `json:"download_name"`
	Pages        int    `json:"pages"`
}

type Service struct {
	ocr      OCRClient
	renderer *render.Renderer
}

func NewService(client OCRClient, renderer *render.Renderer) *Service {
	return &Service{ocr: client, renderer: renderer}
}

// Convert runs one upload through the OCR upstream. One blocking call,
// no retries; the caller owns the file and the result.
func (s *Service) Convert(ctx context.Context, file *intake.UploadedFile) (*Conversion, error) {
	id := uuid.New().String()

	log.Printf("CONVERT_START id=%s file=%s bytes=%d", id, file.Filename, len(file.Data))

	result, err := s.ocr.Process(ctx, ocr.Request{
		Data:     file.Data,
		Filename: file.Filename,
		Kind:     file.Kind(),
	})
	if err != nil {
		log.Printf("CONVERT_FAILED id=%s err=%v", id, err)
		return nil, err
	}

	html, err := s.renderer.HTML(result.Markdown)
	if err != nil {
		log.Printf("CONVERT_FAILED id=%s err=%v", id, err)
		return nil, err
	}

	log.Printf("CONVERT_DONE id=%s pages=%d text_length=%d", id, result.Pages, len(result.Markdown))

	return &Conversion{
		ID:           id,
		Filename:     file.Filename,
		Markdown:     result.Markdown,
		HTML:         html,
		DownloadName: file.MarkdownName(),
		Pages:        result.Pages,
	}, nil
}
