package trimdecode_test

import (
	"testing"

	td "github.com/Gobd/trimdecode"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name  string
		value any
		ok    bool
	}{
		{name: "word", value: "a", ok: true},
		{name: "padded word", value: "  a ", ok: true},
		{name: "empty", value: "", ok: false},
		{name: "whitespace", value: " \t\n", ok: false},
		{name: "nil pointer", value: (*string)(nil), ok: false},
		{name: "pointer to blank", value: ptr("  "), ok: false},
		{name: "pointer to word", value: ptr("x"), ok: true},
		{name: "absent optional", value: td.OptionalString{}, ok: false},
		{name: "present optional", value: td.NewOptionalString(" x "), ok: true},
		{name: "string kind", value: td.String("  "), ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, td.NotBlank)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ve validation.Error
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "validation_not_blank", ve.Code())
			assert.Equal(t, "cannot be blank", ve.Error())
		})
	}
}

func TestNotBlank_NotAString(t *testing.T) {
	err := validation.Validate(42, td.NotBlank)
	require.Error(t, err)
	assert.NotEqual(t, "cannot be blank", err.Error())
}

func TestNotBlank_Message(t *testing.T) {
	err := validation.Validate(" ", td.NotBlank.Error("name is required"))
	assert.EqualError(t, err, "name is required")

	// The package-level rule is unchanged.
	assert.EqualError(t, validation.Validate(" ", td.NotBlank), "cannot be blank")
}

func TestTrimmed(t *testing.T) {
	assert.NoError(t, validation.Validate("", td.Trimmed))
	assert.NoError(t, validation.Validate("a b", td.Trimmed))
	assert.NoError(t, validation.Validate((*string)(nil), td.Trimmed))

	for _, v := range []string{" a", "a ", "\ta\n", " "} {
		err := validation.Validate(v, td.Trimmed)
		assert.EqualError(t, err, "must not have leading or trailing whitespace", "value %q", v)
	}
}

func TestRules_InStruct(t *testing.T) {
	type form struct {
		Title string
		Slug  string
	}
	f := form{Title: "  ", Slug: " x"}
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Title, td.NotBlank),
		validation.Field(&f.Slug, td.NotBlank, td.Trimmed),
	)
	assert.EqualError(t, err, "Slug: must not have leading or trailing whitespace; Title: cannot be blank.")
}
