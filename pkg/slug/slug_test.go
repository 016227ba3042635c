package slug_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boutique-api/pkg/slug"
)

func TestMake_QuitaTildesYEspacios(t *testing.T) {
	cases := map[string]string{
		"Blusa Niña Lino":        "blusa-nina-lino",
		"  Pantalón   Cargo  ":   "pantalon-cargo",
		"Polo #1 (Edición 2025)": "polo-1-edicion-2025",
		"ÁÉÍÓÚ":                  "aeiou",
		"---":                    "",
	}
	for in, want := range cases {
		assert.Equal(t, want, slug.Make(in), "entrada %q", in)
	}
}

func TestUnique_AgregaSufijo(t *testing.T) {
	taken := map[string]bool{"vestido": true, "vestido-2": true}
	got, err := slug.Unique("vestido", func(s string) (bool, error) { return taken[s], nil })
	require.NoError(t, err)
	assert.Equal(t, "vestido-3", got)
}

func TestUnique_PropagaError(t *testing.T) {
	_, err := slug.Unique("x", func(string) (bool, error) { return false, errors.New("db caída") })
	assert.Error(t, err)
}
