package trimdecode

import (
	"context"
	"encoding/json"
	"io"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/Gobd/trimdecode/transform"
)

// ValidationErrors is returned when a struct fails ozzo-validation: field
// names mapped to their errors.
type ValidationErrors = validation.Errors

// UnmarshalAndValidate decodes JSON from b into dst, then normalizes and
// validates it:
//
//  1. plain string fields are trimmed per their struct tags ([transform.Struct]);
//  2. [Normalizer] / [ContextNormalizer] hooks run, top level first;
//  3. dst is validated if it implements [validation.Validatable] or
//     [validation.ValidatableWithContext].
//
// Step 1 is opt-out: every exported string, *string, []string and
// map[string]string field in dst is trimmed, and a blank *string becomes
// nil. Tag fields that must keep their bytes, such as passwords or tokens,
// with trim:"-".
//
// Decode errors are returned unchanged.
func UnmarshalAndValidate(b []byte, dst any) error {
	return UnmarshalAndValidateCtx(context.Background(), b, dst)
}

// UnmarshalAndValidateCtx is like UnmarshalAndValidate but passes ctx to
// ContextNormalizer and ValidatableWithContext.
func UnmarshalAndValidateCtx(ctx context.Context, b []byte, dst any) error {
	if err := json.Unmarshal(b, dst); err != nil {
		return err
	}
	return normalizeAndValidate(ctx, dst)
}

// DecodeAndValidate reads one JSON value from r into dst using a streaming
// decoder, then normalizes and validates like [UnmarshalAndValidate]. Use it
// for an [io.Reader] such as an HTTP request body.
func DecodeAndValidate(r io.Reader, dst any) error {
	return DecodeAndValidateContext(context.Background(), r, dst)
}

// DecodeAndValidateContext is like DecodeAndValidate but passes ctx to
// ContextNormalizer and ValidatableWithContext.
func DecodeAndValidateContext(ctx context.Context, r io.Reader, dst any) error {
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return err
	}
	return normalizeAndValidate(ctx, dst)
}

// UnmarshalYAMLAndValidate is [UnmarshalAndValidate] for YAML documents.
func UnmarshalYAMLAndValidate(b []byte, dst any) error {
	return UnmarshalYAMLAndValidateCtx(context.Background(), b, dst)
}

// UnmarshalYAMLAndValidateCtx is like UnmarshalYAMLAndValidate but passes ctx
// to ContextNormalizer and ValidatableWithContext.
func UnmarshalYAMLAndValidateCtx(ctx context.Context, b []byte, dst any) error {
	if err := yaml.Unmarshal(b, dst); err != nil {
		return err
	}
	return normalizeAndValidate(ctx, dst)
}

// Normalize applies trim tags and Normalizer hooks to v without decoding.
func Normalize(ctx context.Context, v any) {
	transform.Struct(v)
	normalizeRecursive(ctx, v)
}

func normalizeAndValidate(ctx context.Context, dst any) error {
	Normalize(ctx, dst)
	switch v := dst.(type) {
	case validation.ValidatableWithContext:
		return v.ValidateWithContext(ctx)
	case validation.Validatable:
		return v.Validate()
	}
	return nil
}
