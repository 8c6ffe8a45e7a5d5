package addresscodec

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidAddress is returned when an address fails base58 decoding,
// length validation or checksum verification.
var ErrInvalidAddress = errors.New("invalid address")

// xrplAlphabet is the base58 dictionary used by the XRP Ledger. It differs
// from the Bitcoin alphabet: 'r' maps to zero.
const xrplAlphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

// Type prefix for classic addresses (AccountID payload).
const classicAddressPrefix = 0x00

const (
	accountIDLength = 20
	checksumLength  = 4
)

var alphabetIndex = func() [256]int8 {
	var idx [256]int8
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(xrplAlphabet); i++ {
		idx[xrplAlphabet[i]] = int8(i)
	}
	return idx
}()

var base58Radix = big.NewInt(58)

// encodeBase58 encodes raw bytes with the XRPL alphabet.
func encodeBase58(input []byte) string {
	n := new(big.Int).SetBytes(input)
	mod := new(big.Int)

	var out []byte
	for n.Sign() > 0 {
		n.DivMod(n, base58Radix, mod)
		out = append(out, xrplAlphabet[mod.Int64()])
	}
	for _, b := range input {
		if b != 0 {
			break
		}
		out = append(out, xrplAlphabet[0])
	}

	// Digits were produced least significant first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// decodeBase58 decodes a string in the XRPL alphabet to raw bytes.
func decodeBase58(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidAddress)
	}
	n := new(big.Int)
	for i := 0; i < len(s); i++ {
		v := alphabetIndex[s[i]]
		if v < 0 {
			return nil, fmt.Errorf("%w: character %q not in alphabet", ErrInvalidAddress, s[i])
		}
		n.Mul(n, base58Radix)
		n.Add(n, big.NewInt(int64(v)))
	}

	leading := 0
	for leading < len(s) && s[leading] == xrplAlphabet[0] {
		leading++
	}
	return append(make([]byte, leading), n.Bytes()...), nil
}

// checksum computes the 4-byte double-SHA256 checksum over the payload.
func checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:checksumLength]
}

// encodeChecked appends a checksum to the payload and base58-encodes it.
func encodeChecked(payload []byte) string {
	return encodeBase58(append(payload, checksum(payload)...))
}

// decodeChecked base58-decodes the input and verifies its checksum,
// returning the payload without the checksum.
func decodeChecked(s string) ([]byte, error) {
	raw, err := decodeBase58(s)
	if err != nil {
		return nil, err
	}
	if len(raw) < checksumLength+1 {
		return nil, fmt.Errorf("%w: too short", ErrInvalidAddress)
	}
	payload := raw[:len(raw)-checksumLength]
	if !bytes.Equal(checksum(payload), raw[len(raw)-checksumLength:]) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrInvalidAddress)
	}
	return payload, nil
}

// EncodeAccountIDToClassicAddress encodes a 20-byte account ID as an
// r-prefixed classic address.
func EncodeAccountIDToClassicAddress(accountID []byte) (string, error) {
	if len(accountID) != accountIDLength {
		return "", fmt.Errorf("%w: account ID must be %d bytes", ErrInvalidAddress, accountIDLength)
	}
	payload := make([]byte, 0, accountIDLength+1)
	payload = append(payload, classicAddressPrefix)
	payload = append(payload, accountID...)
	return encodeChecked(payload), nil
}

// DecodeClassicAddressToAccountID decodes a classic address, verifying the
// checksum, and returns the type prefix and the 20-byte account ID.
func DecodeClassicAddressToAccountID(address string) (typePrefix, accountID []byte, err error) {
	payload, err := decodeChecked(address)
	if err != nil {
		return nil, nil, err
	}
	if len(payload) != accountIDLength+1 || payload[0] != classicAddressPrefix {
		return nil, nil, fmt.Errorf("%w: not a classic address payload", ErrInvalidAddress)
	}
	return payload[:1], payload[1:], nil
}

// IsValidClassicAddress reports whether the address decodes with a valid
// checksum and payload shape.
func IsValidClassicAddress(address string) bool {
	_, _, err := DecodeClassicAddressToAccountID(address)
	return err == nil
}
