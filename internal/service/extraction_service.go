package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"path"

	"github.com/google/uuid"

	"rentintel/internal/config"
	"rentintel/internal/domain"
	"rentintel/internal/extract"
	"rentintel/internal/port"
)

// ExtractionService turns raw payment evidence into reviewed-ready
// extraction results. It is total on the inference path: any provider
// failure degrades to the zero-confidence default result so the user can
// always fall back to manual entry.
type ExtractionService interface {
	ExtractText(ctx context.Context, text string) domain.ExtractionResult
	ExtractImage(ctx context.Context, contentType string, size int64, body io.Reader) (domain.ExtractionResult, error)
}

type extractionService struct {
	extractor port.EvidenceExtractor
	storage   port.ObjectStorage
	s3cfg     *config.S3Config
}

// NewExtractionService creates a new ExtractionService. storage may be nil;
// evidence archival is then skipped.
func NewExtractionService(extractor port.EvidenceExtractor, storage port.ObjectStorage, s3cfg *config.S3Config) ExtractionService {
	return &extractionService{extractor: extractor, storage: storage, s3cfg: s3cfg}
}

func (s *extractionService) ExtractText(ctx context.Context, text string) domain.ExtractionResult {
	out, err := s.extractor.Extract(ctx, port.ExtractInput{Text: text})
	if err != nil {
		log.Printf("service.ExtractText: extraction failed: %v", err)
		return extract.FailureResult()
	}
	return extract.Normalize(&out.Raw)
}

func (s *extractionService) ExtractImage(ctx context.Context, contentType string, size int64, body io.Reader) (domain.ExtractionResult, error) {
	if _, ok := domain.AllowedEvidenceContentTypes[contentType]; !ok {
		return domain.ExtractionResult{}, domain.ErrUnsupportedFileType
	}
	maxBytes := s.s3cfg.MaxFileSizeMB * 1024 * 1024
	if maxBytes > 0 && size > maxBytes {
		return domain.ExtractionResult{}, domain.ErrFileTooLarge
	}

	var reader io.Reader = body
	if maxBytes > 0 {
		reader = io.LimitReader(body, maxBytes+1)
	}
	fileBytes, err := io.ReadAll(reader)
	if err != nil {
		return domain.ExtractionResult{}, fmt.Errorf("service.ExtractImage: reading upload: %w", err)
	}
	if maxBytes > 0 && int64(len(fileBytes)) > maxBytes {
		return domain.ExtractionResult{}, domain.ErrFileTooLarge
	}

	key := s.archiveEvidence(ctx, contentType, fileBytes)

	out, err := s.extractor.Extract(ctx, port.ExtractInput{
		FileBytes:   fileBytes,
		ContentType: contentType,
	})
	if err != nil {
		log.Printf("service.ExtractImage: extraction failed: %v", err)
		s.discardEvidence(ctx, key)
		return extract.FailureResult(), nil
	}
	return extract.Normalize(&out.Raw), nil
}

// archiveEvidence keeps the original image for audit and returns its
// object key, or "" when archival is disabled or fails. Archival is best
// effort: a storage failure must not block the extraction flow.
func (s *extractionService) archiveEvidence(ctx context.Context, contentType string, fileBytes []byte) string {
	if s.storage == nil || s.s3cfg.Bucket == "" {
		return ""
	}
	ext := domain.AllowedEvidenceContentTypes[contentType]
	key := path.Join("evidence", fmt.Sprintf("%s.%s", uuid.New(), ext))
	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(fileBytes),
		ContentType: contentType,
	})
	if err != nil {
		log.Printf("service.archiveEvidence: upload failed: %v", err)
		return ""
	}
	return key
}

// discardEvidence removes an archived object once extraction fails: no
// draft will ever reference it, so keeping it just grows the bucket.
func (s *extractionService) discardEvidence(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.storage.Delete(ctx, s.s3cfg.Bucket, key); err != nil {
		log.Printf("service.discardEvidence: delete failed: %v", err)
	}
}
