//go:build unit

package contact_test

import (
	"testing"

	"sdi-showcase/internal/domain/contact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		errIs error
	}{
		{in: "ana@example.com", want: "ana@example.com"},
		{in: "  ana.perez+ventas@inmo.com.ar ", want: "ana.perez+ventas@inmo.com.ar"},
		{in: "", errIs: contact.ErrEmptyEmail},
		{in: "ana", errIs: contact.ErrInvalidEmail},
		{in: "ana@example", errIs: contact.ErrInvalidEmail},
		{in: "ana @example.com", errIs: contact.ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			e, err := contact.NewEmail(tt.in)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Value())
		})
	}
}

func TestNewName(t *testing.T) {
	n, err := contact.NewName("  Ana Pérez ")
	require.NoError(t, err)
	assert.Equal(t, "Ana Pérez", n.String())

	_, err = contact.NewName("\t")
	assert.ErrorIs(t, err, contact.ErrEmptyName)
}
