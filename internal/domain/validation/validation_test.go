package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-clientes/internal/domain"
	"github.com/tu-usuario/crm-clientes/internal/domain/validation"
)

func TestRequired(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  bool
	}{
		{"con contenido", "Ana", true},
		{"con espacios alrededor", "  Ana  ", true},
		{"vacío", "", false},
		{"solo espacios", "   ", false},
		{"solo tabulación", "\t", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validation.Required(tc.value))
		})
	}
}

func TestValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"ana.gomez+facturas@empresa.es", true},
		{"usuario@sub.dominio.org", true},
		{"a@b", false}, // sin extensión de al menos 2 letras
		{"a@b.c", false},
		{"sin-arroba.com", false},
		{"", false},
		{"ana gomez@empresa.es", false},
	}
	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, tc.want, validation.ValidEmail(tc.email),
				"email %q", tc.email)
		})
	}
}

func TestParseAmount_Valido(t *testing.T) {
	amount, err := validation.ParseAmount("12.50")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("12.50")),
		"el monto debe conservarse exacto")

	amount, err = validation.ParseAmount("  200 ")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(200)))
}

func TestParseAmount_Invalido(t *testing.T) {
	for _, raw := range []string{"abc", "-5", "0", "", "12,50"} {
		_, err := validation.ParseAmount(raw)
		require.Error(t, err, "monto %q debe rechazarse", raw)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	}
}
