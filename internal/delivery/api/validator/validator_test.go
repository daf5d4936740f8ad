package validator

import (
	"testing"

	domainerrors "spinrate/internal/domain/errors"
	"spinrate/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Rating int     `json:"rating" validate:"min=1,max=5"`
	Text   *string `json:"review_text,omitempty" validate:"omitempty,max=10"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sampleRequest{Rating: 3}))

	long := "this text is too long"
	err := v.Validate(&sampleRequest{Rating: 9, Text: &long})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("rating"))
	assert.True(t, verr.Has("review_text"))
	assert.Equal(t, "must be at most 5", verr.Fields["rating"])
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, "validation failed: rating must be at most 5; review_text must be at most 10", err.Error())
}
