package keylet

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	addresscodec "github.com/LeJamon/goXRPLtx/internal/codec/addresscodec"
	crypto "github.com/LeJamon/goXRPLtx/internal/crypto/common"
)

// Space identifiers for keylet generation.
// These correspond to the LedgerNameSpace enum in rippled.
const (
	spaceAccount    uint16 = 'a' // Account root
	spaceRippleDir  uint16 = 'r' // Trust line
	spaceOffer      uint16 = 'o' // Offer
	spaceOwnerDir   uint16 = 'O' // Owner directory
	spaceSkip       uint16 = 's' // Skip list
	spaceEscrow     uint16 = 'u' // Escrow
	spaceTicket     uint16 = 'T' // Ticket
	spaceSignerList uint16 = 'S' // Signer list
	spaceCheck      uint16 = 'C' // Check
	spaceDepPreauth uint16 = 'p' // Deposit preauthorization
	spaceNFTokenOff uint16 = 'q' // NFToken offer
	spacePayChan    uint16 = 'x' // Payment channel
)

// Keylet is the 256-bit identifier of a ledger object.
type Keylet [32]byte

// Hex returns the identifier in the upper-case hex form used by transaction
// metadata LedgerIndex values.
func (k Keylet) Hex() string {
	return strings.ToUpper(hex.EncodeToString(k[:]))
}

// Computed indexes are pure functions of their inputs, so a small bounded
// cache is shared by all callers. 512 entries covers the working set of an
// account history screen many times over.
var indexCache, _ = lru.New[string, Keylet](512)

// indexHash computes a keylet by hashing the space and provided data.
func indexHash(space uint16, data ...[]byte) Keylet {
	spaceBytes := make([]byte, 2)
	binary.BigEndian.PutUint16(spaceBytes, space)

	inputs := make([][]byte, 0, len(data)+1)
	inputs = append(inputs, spaceBytes)
	inputs = append(inputs, data...)

	return Keylet(crypto.Sha512Half(inputs...))
}

// sequencedIndex computes (and memoizes) the keylet for the common
// space+account+sequence shape.
func sequencedIndex(space uint16, address string, sequence uint32) (Keylet, error) {
	cacheKey := strconv.Itoa(int(space)) + ":" + address + ":" + strconv.FormatUint(uint64(sequence), 10)
	if k, ok := indexCache.Get(cacheKey); ok {
		return k, nil
	}

	accountID, _, err := addresscodec.DecodeAnyAddress(address)
	if err != nil {
		return Keylet{}, err
	}
	seqBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(seqBytes, sequence)

	k := indexHash(space, accountID, seqBytes)
	indexCache.Add(cacheKey, k)
	return k, nil
}

// Account returns the keylet of an account root entry.
func Account(address string) (Keylet, error) {
	accountID, _, err := addresscodec.DecodeAnyAddress(address)
	if err != nil {
		return Keylet{}, err
	}
	return indexHash(spaceAccount, accountID), nil
}

// Offer returns the keylet of the offer created by the given account and
// transaction sequence. This is the only way to correlate an OfferCreate
// with the resting object it produced: transactions do not self-report the
// object identifiers they create.
func Offer(address string, sequence uint32) (Keylet, error) {
	return sequencedIndex(spaceOffer, address, sequence)
}

// Escrow returns the keylet of an escrow entry.
func Escrow(address string, sequence uint32) (Keylet, error) {
	return sequencedIndex(spaceEscrow, address, sequence)
}

// Check returns the keylet of a check entry.
func Check(address string, sequence uint32) (Keylet, error) {
	return sequencedIndex(spaceCheck, address, sequence)
}

// Ticket returns the keylet of a ticket entry.
func Ticket(address string, ticketSeq uint32) (Keylet, error) {
	return sequencedIndex(spaceTicket, address, ticketSeq)
}

// NFTokenOffer returns the keylet of an NFToken offer entry.
func NFTokenOffer(address string, sequence uint32) (Keylet, error) {
	return sequencedIndex(spaceNFTokenOff, address, sequence)
}

// SignerList returns the keylet of an account's signer list.
func SignerList(address string) (Keylet, error) {
	accountID, _, err := addresscodec.DecodeAnyAddress(address)
	if err != nil {
		return Keylet{}, err
	}
	// Signer lists use owner page 0 as identifier.
	pageBytes := make([]byte, 4)
	return indexHash(spaceSignerList, accountID, pageBytes), nil
}

// PayChannel returns the keylet of a payment channel between two accounts.
func PayChannel(srcAddress, dstAddress string, sequence uint32) (Keylet, error) {
	src, _, err := addresscodec.DecodeAnyAddress(srcAddress)
	if err != nil {
		return Keylet{}, err
	}
	dst, _, err := addresscodec.DecodeAnyAddress(dstAddress)
	if err != nil {
		return Keylet{}, err
	}
	seqBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(seqBytes, sequence)
	return indexHash(spacePayChan, src, dst, seqBytes), nil
}

// Line returns the keylet of the trust line between two accounts for the
// given currency. The stored entry is keyed on the canonical low/high
// ordering of the two parties, so argument order does not matter.
func Line(address1, address2, currency string) (Keylet, error) {
	a1, _, err := addresscodec.DecodeAnyAddress(address1)
	if err != nil {
		return Keylet{}, err
	}
	a2, _, err := addresscodec.DecodeAnyAddress(address2)
	if err != nil {
		return Keylet{}, err
	}

	low, high := a1, a2
	for i := range low {
		if low[i] != high[i] {
			if low[i] > high[i] {
				low, high = high, low
			}
			break
		}
	}

	currencyBytes := currencyToBytes(currency)
	return indexHash(spaceRippleDir, low, high, currencyBytes[:]), nil
}

// currencyToBytes converts a currency code to its 20-byte representation.
// Standard 3-character codes land at bytes 12..14; 40-character hex codes
// decode directly.
func currencyToBytes(currency string) [20]byte {
	var result [20]byte
	switch len(currency) {
	case 3:
		result[12] = currency[0]
		result[13] = currency[1]
		result[14] = currency[2]
	case 40:
		if raw, err := hex.DecodeString(currency); err == nil {
			copy(result[:], raw)
		}
	}
	return result
}
