// Package ingress validates and buffers a single uploaded image from a
// multipart request. Nothing is written to disk.
package ingress

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"designermonk/internal/domain/apperror"
	"designermonk/internal/domain/entity"
)

type Config struct {
	FieldName     string   `yaml:"field_name"`
	MaxBytes      int64    `yaml:"max_bytes"`
	MaxFieldBytes int64    `yaml:"max_field_bytes"`
	AllowedTypes  []string `yaml:"allowed_types"`
	SniffContent  bool     `yaml:"sniff_content"`
}

// Result is the outcome of a successful filter pass. Blob is nil when the
// request carried no file.
type Result struct {
	Values url.Values
	Blob   *entity.UploadedBlob
}

type Filter struct {
	cfg     Config
	allowed map[string]bool
}

func NewFilter(cfg Config) *Filter {
	allowed := make(map[string]bool, len(cfg.AllowedTypes))
	for _, t := range cfg.AllowedTypes {
		allowed[strings.ToLower(t)] = true
	}

	if cfg.MaxFieldBytes <= 0 {
		cfg.MaxFieldBytes = 1 << 20
	}

	return &Filter{
		cfg:     cfg,
		allowed: allowed,
	}
}

// Filter consumes the multipart stream. Checks run in the order file count,
// field name, declared type, size, sniffed type; the first violation stops
// the read.
func (f *Filter) Filter(reader *multipart.Reader) (*Result, error) {
	result := &Result{Values: url.Values{}}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperror.New(apperror.MalformedRequest, "malformed multipart body", err)
		}

		if part.FileName() == "" {
			err = f.readField(part, result.Values)
		} else {
			err = f.readFile(part, result)
		}
		_ = part.Close()

		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (f *Filter) readField(part *multipart.Part, values url.Values) error {
	value, err := io.ReadAll(io.LimitReader(part, f.cfg.MaxFieldBytes+1))
	if err != nil {
		return apperror.New(apperror.MalformedRequest, "malformed multipart body", err)
	}

	if int64(len(value)) > f.cfg.MaxFieldBytes {
		return apperror.New(apperror.InvalidField,
			fmt.Sprintf("field %q is too long", part.FormName()), nil)
	}

	values.Add(part.FormName(), string(value))

	return nil
}

func (f *Filter) readFile(part *multipart.Part, result *Result) error {
	if result.Blob != nil {
		return apperror.New(apperror.TooManyFiles, "Too many files. Only 1 file allowed", nil)
	}

	if part.FormName() != f.cfg.FieldName {
		return apperror.New(apperror.UnexpectedField,
			fmt.Sprintf("Unexpected field name. Use %q field", f.cfg.FieldName), nil)
	}

	declared := normalizeType(part.Header.Get("Content-Type"))
	if err := f.checkType(declared); err != nil {
		return err
	}

	data, err := io.ReadAll(io.LimitReader(part, f.cfg.MaxBytes+1))
	if err != nil {
		return apperror.New(apperror.MalformedRequest, "failed to read uploaded file", err)
	}

	if int64(len(data)) > f.cfg.MaxBytes {
		return apperror.New(apperror.FileTooLarge,
			fmt.Sprintf("File too large. Maximum size is %s", humanSize(f.cfg.MaxBytes)), nil)
	}

	detected := ""
	if f.cfg.SniffContent {
		detected, err = f.sniff(data)
		if err != nil {
			return err
		}
	}

	result.Blob = &entity.UploadedBlob{
		FieldName:    part.FormName(),
		Filename:     part.FileName(),
		ContentType:  declared,
		DetectedType: detected,
		Size:         int64(len(data)),
		Data:         data,
	}

	return nil
}

func (f *Filter) checkType(declared string) error {
	if !strings.HasPrefix(declared, "image/") {
		return apperror.New(apperror.UnsupportedFormat, "Only image files are allowed", nil)
	}

	if !f.allowed[declared] {
		return apperror.New(apperror.UnsupportedFormat, "Only JPG, PNG, and WebP images are allowed", nil)
	}

	return nil
}

func (f *Filter) sniff(data []byte) (string, error) {
	detected := mimetype.Detect(data)
	for t := range f.allowed {
		if detected.Is(t) {
			return detected.String(), nil
		}
	}

	return "", apperror.New(apperror.UnsupportedFormat,
		fmt.Sprintf("file content is %s, not a supported image", detected.String()), nil)
}

func normalizeType(contentType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
}

func humanSize(n int64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
	)

	switch {
	case n >= mb && n%mb == 0:
		return fmt.Sprintf("%dMB", n/mb)
	case n >= mb:
		return fmt.Sprintf("%.1fMB", float64(n)/mb)
	case n >= kb && n%kb == 0:
		return fmt.Sprintf("%dKB", n/kb)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
