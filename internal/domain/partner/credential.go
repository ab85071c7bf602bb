package partner

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Alfabeto sin caracteres ambiguos (0/O, 1/l/I): la credencial se dicta por
// teléfono o se entrega en mano al socio.
const tempPasswordAlphabet = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKMNPQRSTUVWXYZ23456789"

// TempPasswordLength longitud de la credencial temporal.
const TempPasswordLength = 12

// TempPassword genera la credencial temporal de un socio recién aprovisionado.
// Siempre es un secreto aleatorio, nunca derivado del email ni de otros datos
// de la solicitud. Se muestra una única vez al aprobador; después solo existe
// su hash bcrypt.
func TempPassword() (string, error) {
	buf := make([]byte, TempPasswordLength)
	alphabetLen := big.NewInt(int64(len(tempPasswordAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("generar credencial temporal: %w", err)
		}
		buf[i] = tempPasswordAlphabet[n.Int64()]
	}
	return string(buf), nil
}
