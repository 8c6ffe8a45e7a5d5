package crypto

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSha512HalfLength(t *testing.T) {
	h := Sha512Half([]byte("hello"))
	require.Len(t, h, 32)
}

func TestSha512HalfConcatenation(t *testing.T) {
	// Hashing split input must equal hashing the concatenated input.
	whole := Sha512Half([]byte("foobar"))
	split := Sha512Half([]byte("foo"), []byte("bar"))
	require.Equal(t, whole, split)
}

func TestSha512HalfKnownVector(t *testing.T) {
	// First half of SHA-512("abc"), per FIPS 180-4 example values.
	h := Sha512Half([]byte("abc"))
	expected := strings.ToLower("DDAF35A193617ABACC417349AE20413112E6FA4E89A97EA20A9EEEE64B55D39A")
	require.Equal(t, expected, hex.EncodeToString(h[:]))
}
