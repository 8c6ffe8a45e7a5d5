package addresscodec

import (
	"crypto/sha256"
	"fmt"

	"github.com/decred/dcrd/crypto/ripemd160"
)

// AccountIDFromPublicKey derives the 20-byte account ID from a compressed
// 33-byte public key: RIPEMD-160 over SHA-256 of the key.
func AccountIDFromPublicKey(pubKey []byte) ([]byte, error) {
	if len(pubKey) != 33 {
		return nil, fmt.Errorf("%w: public key must be 33 bytes", ErrInvalidAddress)
	}
	sha := sha256.Sum256(pubKey)
	h := ripemd160.New()
	h.Write(sha[:])
	return h.Sum(nil), nil
}

// ClassicAddressFromPublicKey derives the classic address directly from a
// compressed public key.
func ClassicAddressFromPublicKey(pubKey []byte) (string, error) {
	accountID, err := AccountIDFromPublicKey(pubKey)
	if err != nil {
		return "", err
	}
	return EncodeAccountIDToClassicAddress(accountID)
}
