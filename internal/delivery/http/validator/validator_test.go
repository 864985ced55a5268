package validator

import (
	"testing"

	domainerrors "medreminder/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type actionRequest struct {
	Token  string `json:"token" validate:"required,max=16"`
	Reason string `json:"reason,omitempty" validate:"omitempty,oneof=busy later"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		req      actionRequest
		messages []string
	}{
		{name: "valid", req: actionRequest{Token: "taken"}},
		{name: "missing token", req: actionRequest{}, messages: []string{"token is required."}},
		{
			name:     "too long",
			req:      actionRequest{Token: "taken-taken-taken"},
			messages: []string{"token must be at most 16 characters long."},
		},
		{
			name:     "unknown reason",
			req:      actionRequest{Token: "dismiss", Reason: "never"},
			messages: []string{"reason must be one of: busy, later."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.messages == nil {
				assert.NoError(t, err)

				return
			}

			var validationErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.messages, validationErr.Messages())
		})
	}
}
