// Package partner contiene la lógica pura de generación de códigos de franquicia
// y credenciales temporales. Sin I/O: el caller lee el último código dentro de su
// transacción y la unicidad la garantiza el constraint UNIQUE del store.
package partner

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/upl-snipe/partner-api/internal/domain/entity"
)

// Prefijos de código por tipo de socio.
const (
	PrefixFranchise = "FR"
	PrefixChannel   = "CH"
)

const codeSeqDigits = 4

var codePattern = regexp.MustCompile(`^(FR|CH)(\d+)$`)

// CodePrefix devuelve el prefijo del código para un tipo de socio.
// Cualquier valor distinto de channel_partner produce "FR", igual que el portal original.
func CodePrefix(partnerType string) string {
	if partnerType == entity.PartnerTypeChannel {
		return PrefixChannel
	}
	return PrefixFranchise
}

// NextCode calcula el siguiente código de franquicia para un tipo de socio dado
// el último código asignado con ese prefijo ("" si no existe ninguno).
// Formato: {FR|CH}{secuencia con cero-padding a 4 dígitos}, p. ej. FR0001, CH0042.
// La secuencia sigue creciendo más allá de 9999 sin colisionar (FR10000).
func NextCode(partnerType, lastCode string) (string, error) {
	prefix := CodePrefix(partnerType)
	seq := 1
	if lastCode != "" {
		m := codePattern.FindStringSubmatch(lastCode)
		if m == nil || m[1] != prefix {
			return "", fmt.Errorf("código previo %q no corresponde al prefijo %s", lastCode, prefix)
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return "", fmt.Errorf("código previo %q: %w", lastCode, err)
		}
		seq = n + 1
	}
	return fmt.Sprintf("%s%0*d", prefix, codeSeqDigits, seq), nil
}
