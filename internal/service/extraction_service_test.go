package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rentintel/internal/config"
	"rentintel/internal/domain"
	"rentintel/internal/port"
	"rentintel/internal/service"
	"rentintel/mocks"
)

func s3Config(bucket string) *config.S3Config {
	return &config.S3Config{Bucket: bucket, MaxFileSizeMB: 5}
}

func TestExtractText_Success(t *testing.T) {
	extractor := new(mocks.MockEvidenceExtractor)
	extractor.On("Extract", mock.Anything, port.ExtractInput{Text: "rent sms"}).Return(&port.ExtractOutput{
		Raw: port.RawExtraction{
			Amount:          120000.0,
			Currency:        "RWF",
			TenantName:      "Keza",
			PaymentMethod:   "momo",
			DocumentType:    "sms",
			ConfidenceScore: 90.0,
			Summary:         "Rent received",
		},
	}, nil)

	svc := service.NewExtractionService(extractor, nil, s3Config(""))
	result := svc.ExtractText(context.Background(), "rent sms")

	require.NotNil(t, result.Amount)
	assert.Equal(t, 120000.0, *result.Amount)
	assert.Equal(t, domain.PaymentMethodMoMo, result.PaymentMethod)
	assert.False(t, result.Failed())
}

func TestExtractText_FailureDegradesToDefault(t *testing.T) {
	extractor := new(mocks.MockEvidenceExtractor)
	extractor.On("Extract", mock.Anything, mock.Anything).Return(nil, errors.New("all extractors failed"))

	svc := service.NewExtractionService(extractor, nil, s3Config(""))
	result := svc.ExtractText(context.Background(), "rent sms")

	assert.True(t, result.Failed())
	assert.Equal(t, "Failed to extract data. Please try again.", result.Summary)
}

func TestExtractImage_RejectsUnsupportedType(t *testing.T) {
	extractor := new(mocks.MockEvidenceExtractor)

	svc := service.NewExtractionService(extractor, nil, s3Config(""))
	_, err := svc.ExtractImage(context.Background(), "application/pdf", 100, bytes.NewReader([]byte("%PDF")))

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	extractor.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestExtractImage_RejectsOversizedFile(t *testing.T) {
	extractor := new(mocks.MockEvidenceExtractor)

	svc := service.NewExtractionService(extractor, nil, s3Config(""))
	_, err := svc.ExtractImage(context.Background(), "image/jpeg", 6*1024*1024, bytes.NewReader(nil))

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestExtractImage_NoSizeLimitReadsFullBody(t *testing.T) {
	extractor := new(mocks.MockEvidenceExtractor)
	payload := bytes.Repeat([]byte{0xAB}, 1024)

	var got []byte
	extractor.On("Extract", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		got = args.Get(1).(port.ExtractInput).FileBytes
	}).Return(&port.ExtractOutput{
		Raw: port.RawExtraction{Amount: 80000.0, ConfidenceScore: 70.0},
	}, nil)

	svc := service.NewExtractionService(extractor, nil, &config.S3Config{MaxFileSizeMB: 0})
	_, err := svc.ExtractImage(context.Background(), "image/png", int64(len(payload)), bytes.NewReader(payload))

	require.NoError(t, err)
	assert.Len(t, got, len(payload))
}

func TestExtractImage_ArchivesEvidence(t *testing.T) {
	extractor := new(mocks.MockEvidenceExtractor)
	storage := new(mocks.MockObjectStorage)

	extractor.On("Extract", mock.Anything, mock.Anything).Return(&port.ExtractOutput{
		Raw: port.RawExtraction{Amount: 80000.0, ConfidenceScore: 70.0},
	}, nil)
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "evidence-bucket" && in.ContentType == "image/jpeg"
	})).Return(&port.UploadOutput{Location: "s3://evidence-bucket/key"}, nil)

	svc := service.NewExtractionService(extractor, storage, s3Config("evidence-bucket"))
	result, err := svc.ExtractImage(context.Background(), "image/jpeg", 3, bytes.NewReader([]byte{0xFF, 0xD8, 0xFF}))

	require.NoError(t, err)
	require.NotNil(t, result.Amount)
	storage.AssertExpectations(t)
}

func TestExtractImage_StorageFailureDoesNotBlock(t *testing.T) {
	extractor := new(mocks.MockEvidenceExtractor)
	storage := new(mocks.MockObjectStorage)

	extractor.On("Extract", mock.Anything, mock.Anything).Return(&port.ExtractOutput{
		Raw: port.RawExtraction{Amount: 80000.0, ConfidenceScore: 70.0},
	}, nil)
	storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("s3 unavailable"))

	svc := service.NewExtractionService(extractor, storage, s3Config("evidence-bucket"))
	result, err := svc.ExtractImage(context.Background(), "image/png", 4, bytes.NewReader([]byte{0x89, 0x50, 0x4E, 0x47}))

	require.NoError(t, err)
	require.NotNil(t, result.Amount)
	assert.Equal(t, 80000.0, *result.Amount)
}

func TestExtractImage_ExtractionFailureDiscardsArchivedEvidence(t *testing.T) {
	extractor := new(mocks.MockEvidenceExtractor)
	storage := new(mocks.MockObjectStorage)

	var archivedKey string
	storage.On("Upload", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		archivedKey = args.Get(1).(port.UploadInput).Key
	}).Return(&port.UploadOutput{}, nil)
	storage.On("Delete", mock.Anything, "evidence-bucket", mock.MatchedBy(func(key string) bool {
		return key == archivedKey
	})).Return(nil)
	extractor.On("Extract", mock.Anything, mock.Anything).Return(nil, errors.New("provider down"))

	svc := service.NewExtractionService(extractor, storage, s3Config("evidence-bucket"))
	result, err := svc.ExtractImage(context.Background(), "image/jpeg", 3, bytes.NewReader([]byte{0xFF, 0xD8, 0xFF}))

	require.NoError(t, err)
	assert.True(t, result.Failed())
	storage.AssertExpectations(t)
}

func TestExtractImage_SuccessKeepsArchivedEvidence(t *testing.T) {
	extractor := new(mocks.MockEvidenceExtractor)
	storage := new(mocks.MockObjectStorage)

	storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil)
	extractor.On("Extract", mock.Anything, mock.Anything).Return(&port.ExtractOutput{
		Raw: port.RawExtraction{Amount: 80000.0, ConfidenceScore: 70.0},
	}, nil)

	svc := service.NewExtractionService(extractor, storage, s3Config("evidence-bucket"))
	_, err := svc.ExtractImage(context.Background(), "image/jpeg", 3, bytes.NewReader([]byte{0xFF, 0xD8, 0xFF}))

	require.NoError(t, err)
	storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestExtractImage_ExtractionFailureIsNotAnError(t *testing.T) {
	extractor := new(mocks.MockEvidenceExtractor)
	extractor.On("Extract", mock.Anything, mock.Anything).Return(nil, errors.New("provider down"))

	svc := service.NewExtractionService(extractor, nil, s3Config(""))
	result, err := svc.ExtractImage(context.Background(), "image/jpeg", 3, bytes.NewReader([]byte{0xFF, 0xD8, 0xFF}))

	require.NoError(t, err)
	assert.True(t, result.Failed())
}
