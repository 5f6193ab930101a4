package intake

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupportedFileType = errors.New("file type not allowed")
	ErrFileTooLarge        = errors.New("file exceeds the upload size limit")
	ErrEmptyFile           = errors.New("file is empty")
)

var allowedExt = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tiff": true,
	".bmp":  true,
}

// Kind tells the OCR upstream whether the payload is a document or an image.
type Kind string

const (
	KindDocument Kind = "document"
	KindImage    Kind = "image"
)

// UploadedFile is the validated upload. It lives for one conversion only.
type UploadedFile struct {
	Data     []byte
	Filename string
	Ext      string
}

func ValidateFileExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return fmt.Errorf("%w: file extension missing", ErrUnsupportedFileType)
	}

	if !allowedExt[ext] {
		return fmt.Errorf("%w: %s", ErrUnsupportedFileType, ext)
	}

	return nil
}

// FromMultipart validates the extension first, then reads at most maxBytes.
// Nothing is read on a rejected extension.
func FromMultipart(file multipart.File, filename string, maxBytes int64) (*UploadedFile, error) {
	if err := ValidateFileExtension(filename); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	if int64(len(data)) > maxBytes {
		return nil, ErrFileTooLarge
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	return &UploadedFile{
		Data:     data,
		Filename: filepath.Base(filename),
		Ext:      strings.ToLower(filepath.Ext(filename)),
	}, nil
}

func (f *UploadedFile) Kind() Kind {
	if f.Ext == ".pdf" {
		return KindDocument
	}
	return KindImage
}

// MarkdownName maps the source filename to the download name,
// e.g. report.pdf -> report.md.
func (f *UploadedFile) MarkdownName() string {
	base := strings.TrimSuffix(f.Filename, filepath.Ext(f.Filename))
	if base == "" {
		base = "converted"
	}
	return base + ".md"
}
