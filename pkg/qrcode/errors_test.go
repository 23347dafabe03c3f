package qrcode_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qrkit/pkg/payload"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
	"github.com/dmitrymomot/qrkit/pkg/render"
	"github.com/dmitrymomot/qrkit/pkg/symbol"
	"github.com/dmitrymomot/qrkit/pkg/validator"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	_, buildErr := payload.VCard{Org: "Acme"}.Build()

	tests := []struct {
		name        string
		err         error
		code        string
		message     string
		correctable bool
	}{
		{
			name:        "validation",
			err:         validator.ValidationErrors{{Field: "ssid", Message: "field is required"}},
			code:        qrcode.CodeValidation,
			message:     "invalid input",
			correctable: true,
		},
		{
			name:        "build",
			err:         buildErr,
			code:        qrcode.CodeBuild,
			message:     payload.ErrMissingName.Error(),
			correctable: true,
		},
		{
			name:        "capacity",
			err:         fmt.Errorf("encode: %w", symbol.ErrCapacityExceeded),
			code:        qrcode.CodeCapacityExceeded,
			message:     "content is too long for a QR code, please shorten it",
			correctable: true,
		},
		{
			name:    "not supported",
			err:     fmt.Errorf("%w: pdf", render.ErrNotSupported),
			code:    qrcode.CodeNotSupported,
			message: "output format is not supported yet",
		},
		{
			name:    "internal",
			err:     errors.New("disk on fire"),
			code:    qrcode.CodeInternal,
			message: qrcode.ErrInternal.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := qrcode.Classify(tt.err)
			assert.Equal(t, tt.code, f.Code)
			assert.Equal(t, tt.message, f.Message)
			assert.Equal(t, tt.correctable, f.UserCorrectable())
		})
	}

	t.Run("validation fields", func(t *testing.T) {
		t.Parallel()
		f := qrcode.Classify(validator.ValidationErrors{
			{Field: "ssid", Message: "field is required"},
			{Field: "scale", Message: "must be between 1 and 100"},
		})
		assert.Equal(t, map[string]string{
			"ssid":  "field is required",
			"scale": "must be between 1 and 100",
		}, f.Fields)
	})
}
