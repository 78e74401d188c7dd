package transform_test

import (
	"testing"

	"github.com/Gobd/trimdecode/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestSpace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: " ", want: ""},
		{in: "\t\n\r\v\f ", want: ""},
		{in: "foo", want: "foo"},
		{in: "  foo  ", want: "foo"},
		{in: "b ar", want: "b ar"},
		{in: "hello ", want: "hello"},
		{in: "\u00a0nbsp\u00a0", want: "nbsp"},
		{in: "\u3000ideographic", want: "ideographic"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := transform.Space(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, transform.Space(got), "idempotent")
		})
	}
}

func TestOptional(t *testing.T) {
	assert.Nil(t, transform.Optional(nil))
	assert.Nil(t, transform.Optional(ptr("")))
	assert.Nil(t, transform.Optional(ptr(" \t ")))

	got := transform.Optional(ptr("  rust "))
	require.NotNil(t, got)
	assert.Equal(t, "rust", *got)

	again := transform.Optional(got)
	require.NotNil(t, again)
	assert.Equal(t, "rust", *again)
}

func TestOptional_DoesNotMutateInput(t *testing.T) {
	in := ptr(" x ")
	out := transform.Optional(in)
	assert.Equal(t, " x ", *in)
	assert.Equal(t, "x", *out)
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "keep-empty", transform.KeepEmpty.String())
	assert.Equal(t, "drop-empty", transform.DropEmpty.String())
}
