package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booknotesapp/booknotes-server/internal/errors"
)

type testForm struct {
	Title    string `form:"title" validate:"required"`
	Author   string `form:"author" validate:"required"`
	Rating   int    `form:"rating" validate:"min=1,max=10"`
	DateRead string `form:"date_read" validate:"required"`
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	err := v.Validate(testForm{Title: "Dune", Author: "Frank Herbert", Rating: 9, DateRead: "2024-01-01"})

	assert.NoError(t, err)
}

func TestValidate_OrderedFieldErrors(t *testing.T) {
	v := New()

	// Everything fails; the first reported field must follow struct
	// field order so the caller's short-circuit picks the right message.
	err := v.Validate(testForm{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
	assert.Equal(t, "title", FirstField(err))
}

func TestValidate_FirstFieldPerCheck(t *testing.T) {
	tests := []struct {
		name string
		form testForm
		want string
	}{
		{"missing author", testForm{Title: "Dune", Rating: 9, DateRead: "2024-01-01"}, "author"},
		{"rating too low", testForm{Title: "Dune", Author: "FH", Rating: 0, DateRead: "2024-01-01"}, "rating"},
		{"rating too high", testForm{Title: "Dune", Author: "FH", Rating: 11, DateRead: "2024-01-01"}, "rating"},
		{"missing date", testForm{Title: "Dune", Author: "FH", Rating: 9}, "date_read"},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.form)
			require.Error(t, err)
			assert.Equal(t, tt.want, FirstField(err))
		})
	}
}

func TestFirstField_NonValidationError(t *testing.T) {
	assert.Equal(t, "", FirstField(errors.Internal("boom")))
}
