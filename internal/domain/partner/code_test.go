package partner_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upl-snipe/partner-api/internal/domain/entity"
	"github.com/upl-snipe/partner-api/internal/domain/partner"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests NextCode — secuencia de códigos por prefijo
// ──────────────────────────────────────────────────────────────────────────────

func TestNextCode_Secuencia(t *testing.T) {
	tests := []struct {
		name        string
		partnerType string
		lastCode    string
		want        string
	}{
		{"primer franchise partner", entity.PartnerTypeFranchise, "", "FR0001"},
		{"primer channel partner", entity.PartnerTypeChannel, "", "CH0001"},
		{"siguiente franchise", entity.PartnerTypeFranchise, "FR0001", "FR0002"},
		{"siguiente channel", entity.PartnerTypeChannel, "CH0041", "CH0042"},
		{"cero-padding hasta 4 dígitos", entity.PartnerTypeFranchise, "FR0009", "FR0010"},
		{"cruza el límite de 4 dígitos", entity.PartnerTypeFranchise, "FR9999", "FR10000"},
		{"sigue creciendo en 5 dígitos", entity.PartnerTypeFranchise, "FR10000", "FR10001"},
		{"tipo desconocido cae en FR", "", "", "FR0001"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := partner.NextCode(tc.partnerType, tc.lastCode)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNextCode_CodigoPrevioInvalido(t *testing.T) {
	// Código con prefijo ajeno: no debe continuar la secuencia del otro tipo.
	_, err := partner.NextCode(entity.PartnerTypeChannel, "FR0005")
	assert.Error(t, err, "un código FR no puede alimentar la secuencia CH")

	_, err = partner.NextCode(entity.PartnerTypeFranchise, "garbage")
	assert.Error(t, err)
}

func TestCodePrefix(t *testing.T) {
	assert.Equal(t, "FR", partner.CodePrefix(entity.PartnerTypeFranchise))
	assert.Equal(t, "CH", partner.CodePrefix(entity.PartnerTypeChannel))
	assert.Equal(t, "FR", partner.CodePrefix(""), "sin tipo declarado se asume franchise")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests TempPassword — credencial temporal
// ──────────────────────────────────────────────────────────────────────────────

func TestTempPassword_LongitudYAlfabeto(t *testing.T) {
	const alphabet = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKMNPQRSTUVWXYZ23456789"

	pwd, err := partner.TempPassword()
	require.NoError(t, err)
	assert.Len(t, pwd, partner.TempPasswordLength)
	for _, r := range pwd {
		assert.True(t, strings.ContainsRune(alphabet, r),
			"la credencial no debe contener caracteres ambiguos: %q", r)
	}
}

func TestTempPassword_NoSeRepite(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		pwd, err := partner.TempPassword()
		require.NoError(t, err)
		assert.False(t, seen[pwd], "dos credenciales iguales en 50 intentos")
		seen[pwd] = true
	}
}
