package addresscodec

import (
	"encoding/binary"
	"fmt"
)

// X-address payloads start with a 2-byte network prefix followed by the
// 20-byte account ID, a tag-flag byte and an 8-byte little-endian tag.
var (
	xAddressMainnetPrefix = []byte{0x05, 0x44}
	xAddressTestnetPrefix = []byte{0x04, 0x93}
)

const (
	tagFlagNone   = 0x00
	tagFlag32Bit  = 0x01
	xPayloadBytes = 2 + accountIDLength + 1 + 8
)

// EncodeXAddress encodes an account ID and optional destination tag as a
// tagged X-address. Pass test=true for the testnet prefix.
func EncodeXAddress(accountID []byte, tag *uint32, test bool) (string, error) {
	if len(accountID) != accountIDLength {
		return "", fmt.Errorf("%w: account ID must be %d bytes", ErrInvalidAddress, accountIDLength)
	}
	prefix := xAddressMainnetPrefix
	if test {
		prefix = xAddressTestnetPrefix
	}

	payload := make([]byte, 0, xPayloadBytes)
	payload = append(payload, prefix...)
	payload = append(payload, accountID...)
	if tag != nil {
		payload = append(payload, tagFlag32Bit)
		var tagBytes [8]byte
		binary.LittleEndian.PutUint32(tagBytes[:4], *tag)
		payload = append(payload, tagBytes[:]...)
	} else {
		payload = append(payload, tagFlagNone)
		payload = append(payload, make([]byte, 8)...)
	}
	return encodeChecked(payload), nil
}

// DecodeXAddress decodes a tagged X-address to its account ID, embedded
// destination tag (nil when absent) and network flag.
func DecodeXAddress(address string) (accountID []byte, tag *uint32, test bool, err error) {
	payload, err := decodeChecked(address)
	if err != nil {
		return nil, nil, false, err
	}
	if len(payload) != xPayloadBytes {
		return nil, nil, false, fmt.Errorf("%w: not an X-address payload", ErrInvalidAddress)
	}

	switch {
	case payload[0] == xAddressMainnetPrefix[0] && payload[1] == xAddressMainnetPrefix[1]:
		test = false
	case payload[0] == xAddressTestnetPrefix[0] && payload[1] == xAddressTestnetPrefix[1]:
		test = true
	default:
		return nil, nil, false, fmt.Errorf("%w: unknown X-address prefix", ErrInvalidAddress)
	}

	accountID = payload[2 : 2+accountIDLength]
	flag := payload[2+accountIDLength]
	tagBytes := payload[2+accountIDLength+1:]

	switch flag {
	case tagFlagNone:
		for _, b := range tagBytes {
			if b != 0 {
				return nil, nil, false, fmt.Errorf("%w: nonzero tag with no-tag flag", ErrInvalidAddress)
			}
		}
	case tagFlag32Bit:
		t := binary.LittleEndian.Uint32(tagBytes[:4])
		for _, b := range tagBytes[4:] {
			if b != 0 {
				return nil, nil, false, fmt.Errorf("%w: tag exceeds 32 bits", ErrInvalidAddress)
			}
		}
		tag = &t
	default:
		return nil, nil, false, fmt.Errorf("%w: unsupported tag flag %d", ErrInvalidAddress, flag)
	}
	return accountID, tag, test, nil
}

// DecodeAnyAddress accepts either a classic address or an X-address and
// returns the underlying account ID and destination tag. Both encodings of
// the same account resolve to the same pair. Mainnet X-addresses start with
// 'X', testnet ones with 'T'; classic addresses always start with 'r'.
func DecodeAnyAddress(address string) (accountID []byte, tag *uint32, err error) {
	if len(address) > 0 && (address[0] == 'X' || address[0] == 'T') {
		accountID, tag, _, err = DecodeXAddress(address)
		return accountID, tag, err
	}
	_, accountID, err = DecodeClassicAddressToAccountID(address)
	return accountID, nil, err
}
