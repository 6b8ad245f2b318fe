package extract_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rentintel/internal/extract"
	"rentintel/internal/port"
	"rentintel/mocks"
)

func TestFallbackExtractor_PrimarySucceeds(t *testing.T) {
	primary := new(mocks.MockEvidenceExtractor)
	secondary := new(mocks.MockEvidenceExtractor)

	out := &port.ExtractOutput{ModelUsed: "gemini-2.5-flash"}
	primary.On("Extract", mock.Anything, mock.Anything).Return(out, nil)

	fb := extract.NewFallbackExtractor(
		[]port.EvidenceExtractor{primary, secondary},
		[]string{"gemini", "claude"},
	)

	result, err := fb.Extract(context.Background(), port.ExtractInput{Text: "rent sms"})

	require.NoError(t, err)
	assert.Equal(t, out, result)
	secondary.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestFallbackExtractor_FallsBackOnError(t *testing.T) {
	primary := new(mocks.MockEvidenceExtractor)
	secondary := new(mocks.MockEvidenceExtractor)

	out := &port.ExtractOutput{ModelUsed: "claude-sonnet"}
	primary.On("Extract", mock.Anything, mock.Anything).Return(nil, errors.New("upstream 500"))
	secondary.On("Extract", mock.Anything, mock.Anything).Return(out, nil)

	fb := extract.NewFallbackExtractor(
		[]port.EvidenceExtractor{primary, secondary},
		[]string{"gemini", "claude"},
	)

	result, err := fb.Extract(context.Background(), port.ExtractInput{Text: "rent sms"})

	require.NoError(t, err)
	assert.Equal(t, out, result)
}

func TestFallbackExtractor_AllFail(t *testing.T) {
	primary := new(mocks.MockEvidenceExtractor)
	secondary := new(mocks.MockEvidenceExtractor)

	primary.On("Extract", mock.Anything, mock.Anything).Return(nil, errors.New("upstream 500"))
	secondary.On("Extract", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	fb := extract.NewFallbackExtractor(
		[]port.EvidenceExtractor{primary, secondary},
		[]string{"gemini", "claude"},
	)

	result, err := fb.Extract(context.Background(), port.ExtractInput{Text: "rent sms"})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all extractors failed")
}

func TestFallbackExtractor_OpensCircuitOnRateLimit(t *testing.T) {
	primary := new(mocks.MockEvidenceExtractor)
	secondary := new(mocks.MockEvidenceExtractor)

	out := &port.ExtractOutput{ModelUsed: "claude-sonnet"}
	primary.On("Extract", mock.Anything, mock.Anything).
		Return(nil, extract.NewRateLimitError("gemini", errors.New("429"), 60))
	secondary.On("Extract", mock.Anything, mock.Anything).Return(out, nil)

	fb := extract.NewFallbackExtractor(
		[]port.EvidenceExtractor{primary, secondary},
		[]string{"gemini", "claude"},
	)

	// First call trips the primary's circuit.
	result, err := fb.Extract(context.Background(), port.ExtractInput{Text: "rent sms"})
	require.NoError(t, err)
	assert.Equal(t, out, result)

	// Second call skips the primary entirely.
	result, err = fb.Extract(context.Background(), port.ExtractInput{Text: "rent sms"})
	require.NoError(t, err)
	assert.Equal(t, out, result)
	primary.AssertNumberOfCalls(t, "Extract", 1)
	secondary.AssertNumberOfCalls(t, "Extract", 2)
}

func TestFallbackExtractor_AllCircuitsOpen(t *testing.T) {
	primary := new(mocks.MockEvidenceExtractor)

	primary.On("Extract", mock.Anything, mock.Anything).
		Return(nil, extract.NewRateLimitError("gemini", errors.New("429"), 60))

	fb := extract.NewFallbackExtractor(
		[]port.EvidenceExtractor{primary},
		[]string{"gemini"},
	)

	_, err := fb.Extract(context.Background(), port.ExtractInput{Text: "rent sms"})
	require.Error(t, err)

	_, err = fb.Extract(context.Background(), port.ExtractInput{Text: "rent sms"})
	require.Error(t, err)

	var rlErr *extract.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "all", rlErr.Provider)
	primary.AssertNumberOfCalls(t, "Extract", 1)
}

func TestRateLimitError_Defaults(t *testing.T) {
	err := extract.NewRateLimitError("gemini", errors.New("429"), 0)
	assert.Equal(t, 60, int(err.RetryAfter.Seconds()))
	assert.Contains(t, err.Error(), "gemini")
}

func TestParseRetryAfterHeader(t *testing.T) {
	assert.Equal(t, 30, extract.ParseRetryAfterHeader("30"))
	assert.Equal(t, 0, extract.ParseRetryAfterHeader(""))
	assert.Equal(t, 0, extract.ParseRetryAfterHeader("Wed, 21 Oct 2025 07:28:00 GMT"))
}
