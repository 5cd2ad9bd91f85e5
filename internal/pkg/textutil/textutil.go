package textutil

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CodeAlphabet são os caracteres dos códigos de ativação, recuperação e cupom.
const CodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomCode gera um código de n caracteres maiúsculos/dígitos com crypto/rand.
func RandomCode(n int) (string, error) {
	max := big.NewInt(int64(len(CodeAlphabet)))
	code := make([]byte, n)

	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("falha ao gerar caractere aleatório: %w", err)
		}
		code[i] = CodeAlphabet[idx.Int64()]
	}

	return string(code), nil
}

// StripAccents decompõe o texto (NFD), remove as marcas diacríticas e
// descarta o que não for ASCII. "Peluquería Ñandú" -> "Peluqueria Nandu".
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), runes.Remove(runes.Predicate(nonASCII)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return strings.TrimSpace(out)
}

func nonASCII(r rune) bool {
	return r > unicode.MaxASCII
}
