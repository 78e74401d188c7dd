package transform_test

import (
	"testing"

	"github.com/Gobd/trimdecode/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nickname string

type address struct {
	Street string
	City   *string
}

type profile struct {
	Name      string
	Nick      nickname
	Bio       *string
	Country   *string `default:"US"`
	Role      string  `default:"member"`
	Raw       string  `trim:"-"`
	Tags      []string
	Labels    []string `trim:"omitempty"`
	Attrs     map[string]string
	Headers   map[string]string `trim:"omitempty"`
	Home      address
	Work      *address
	Previous  []address
	Others    []*address
	ByName    map[string]address
	Anything  any
	unexposed string
}

func TestStruct(t *testing.T) {
	shared := " shared "
	p := profile{
		Name:      "  Ada ",
		Nick:      " ada\t",
		Bio:       ptr("   "),
		Country:   nil,
		Role:      "  ",
		Raw:       "  raw  ",
		Tags:      []string{" a", "  ", "b "},
		Labels:    []string{" a", "  ", "b "},
		Attrs:     map[string]string{"k": " v ", "e": " "},
		Headers:   map[string]string{"k": " v ", "e": " "},
		Home:      address{Street: " Main St ", City: &shared},
		Work:      &address{Street: "\tDock "},
		Previous:  []address{{Street: " Old "}},
		Others:    []*address{{Street: " Other "}, nil},
		ByName:    map[string]address{"x": {Street: " X "}},
		Anything:  " untouched ",
		unexposed: " hidden ",
	}

	transform.Struct(&p)

	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, nickname("ada"), p.Nick)
	assert.Nil(t, p.Bio)
	require.NotNil(t, p.Country)
	assert.Equal(t, "US", *p.Country)
	assert.Equal(t, "member", p.Role)
	assert.Equal(t, "  raw  ", p.Raw)
	assert.Equal(t, []string{"a", "", "b"}, p.Tags)
	assert.Equal(t, []string{"a", "b"}, p.Labels)
	assert.Equal(t, map[string]string{"k": "v", "e": ""}, p.Attrs)
	assert.Equal(t, map[string]string{"k": "v"}, p.Headers)
	assert.Equal(t, "Main St", p.Home.Street)
	require.NotNil(t, p.Home.City)
	assert.Equal(t, "shared", *p.Home.City)
	assert.Equal(t, " shared ", shared, "pointee must not be mutated")
	assert.Equal(t, "Dock", p.Work.Street)
	assert.Equal(t, "Old", p.Previous[0].Street)
	assert.Equal(t, "Other", p.Others[0].Street)
	assert.Nil(t, p.Others[1])
	assert.Equal(t, "X", p.ByName["x"].Street)
	assert.Equal(t, " untouched ", p.Anything)
	assert.Equal(t, " hidden ", p.unexposed)
}

func TestStruct_DefaultOnlyWhenBlank(t *testing.T) {
	p := profile{Country: ptr(" CA "), Role: " admin "}
	transform.Struct(&p)
	assert.Equal(t, "CA", *p.Country)
	assert.Equal(t, "admin", p.Role)
}

func TestStruct_BlankOptionalTakesDefault(t *testing.T) {
	p := profile{Country: ptr("  ")}
	transform.Struct(&p)
	require.NotNil(t, p.Country)
	assert.Equal(t, "US", *p.Country)
}

func TestStruct_Idempotent(t *testing.T) {
	p := profile{Name: " a ", Tags: []string{" x ", " "}, Labels: []string{" ", "y "}}
	transform.Struct(&p)
	first := p
	transform.Struct(&p)
	assert.Equal(t, first, p)
}

func TestStruct_NonStruct(t *testing.T) {
	assert.NotPanics(t, func() {
		transform.Struct(nil)
		transform.Struct((*profile)(nil))
		s := " x "
		transform.Struct(&s)
		assert.Equal(t, " x ", s)
	})
}

type optionalName struct {
	v *string
}

func (o *optionalName) SetDefault(def string) {
	if o.v == nil {
		o.v = &def
	}
}

func TestStruct_Defaulter(t *testing.T) {
	var form struct {
		Tagged   optionalName `default:"anon"`
		Untagged optionalName
		Present  optionalName `default:"anon"`
	}
	form.Present.v = ptr("kept")

	transform.Struct(&form)

	require.NotNil(t, form.Tagged.v)
	assert.Equal(t, "anon", *form.Tagged.v)
	assert.Nil(t, form.Untagged.v)
	assert.Equal(t, "kept", *form.Present.v)
}
