package tx

import (
	"bytes"
	"sync"
	"time"

	addresscodec "github.com/LeJamon/goXRPLtx/internal/codec/addresscodec"
	"github.com/LeJamon/goXRPLtx/internal/ledger/amount"
	"github.com/LeJamon/goXRPLtx/internal/ledger/fields"
	"github.com/LeJamon/goXRPLtx/internal/ledger/keylet"
	"github.com/LeJamon/goXRPLtx/internal/ledger/meta"
)

// Category separates the three provenances a record can have.
type Category int

const (
	// CategoryGenuine is a record of a known kind that passed schema
	// validation.
	CategoryGenuine Category = iota

	// CategoryFallback is a record whose TransactionType has no registered
	// schema. Raw access works; typed accessors report missing fields.
	CategoryFallback

	// CategoryPseudo is an off-ledger signing artifact with no
	// TransactionType at all.
	CategoryPseudo
)

func (c Category) String() string {
	switch c {
	case CategoryGenuine:
		return "genuine"
	case CategoryFallback:
		return "fallback"
	default:
		return "pseudo"
	}
}

// Party is one side of a transaction: an address plus an optional tag. When
// the source document carried a packed address form, Tag holds the embedded
// tag.
type Party struct {
	Address string
	Tag     *uint32
}

// Record is an immutable decoded transaction. All reads after construction
// are pure; concurrent use needs no external synchronization.
type Record struct {
	kind     Kind
	category Category
	raw      map[string]any
	typed    map[string]any
	meta     *meta.Meta

	mu          sync.Mutex
	offerStatus map[string]meta.OfferStatus
}

// Kind returns the record's type discriminant. Fallback records keep the
// unrecognized name verbatim.
func (r *Record) Kind() Kind { return r.kind }

// Category returns the record's provenance class.
func (r *Record) Category() Category { return r.category }

// Meta returns the parsed execution metadata, or nil when the record was
// decoded without it.
func (r *Record) Meta() *meta.Meta { return r.meta }

// Raw returns the raw field value as it appeared in the source document.
// Callers must not mutate the result.
func (r *Record) Raw(name string) (any, bool) {
	v, ok := r.raw[name]
	return v, ok
}

// Has reports whether the record carries the field.
func (r *Record) Has(name string) bool {
	_, ok := r.raw[name]
	return ok
}

func (r *Record) missing(name string) *MissingFieldError {
	return &MissingFieldError{Kind: string(r.kind), Field: name}
}

// Missing builds the error for a field the record does not carry, for
// callers that resolve fields outside the Require accessors.
func (r *Record) Missing(name string) error {
	return r.missing(name)
}

// Amount returns a typed monetary field.
func (r *Record) Amount(name string) (amount.Amount, bool) {
	v, ok := r.typed[name].(amount.Amount)
	return v, ok
}

// RequireAmount is Amount with a MissingFieldError on absence.
func (r *Record) RequireAmount(name string) (amount.Amount, error) {
	v, ok := r.Amount(name)
	if !ok {
		return amount.Amount{}, r.missing(name)
	}
	return v, nil
}

// UInt32 returns a typed 32-bit field.
func (r *Record) UInt32(name string) (uint32, bool) {
	v, ok := r.typed[name].(uint32)
	return v, ok
}

// RequireUInt32 is UInt32 with a MissingFieldError on absence.
func (r *Record) RequireUInt32(name string) (uint32, error) {
	v, ok := r.UInt32(name)
	if !ok {
		return 0, r.missing(name)
	}
	return v, nil
}

// Hash256 returns a typed 256-bit identifier field as uppercase hex.
func (r *Record) Hash256(name string) (string, bool) {
	v, ok := r.typed[name].(string)
	return v, ok
}

// RequireHash256 is Hash256 with a MissingFieldError on absence.
func (r *Record) RequireHash256(name string) (string, error) {
	v, ok := r.Hash256(name)
	if !ok {
		return "", r.missing(name)
	}
	return v, nil
}

// Blob returns a hex-encoded opaque field.
func (r *Record) Blob(name string) (string, bool) {
	v, ok := r.typed[name].(string)
	return v, ok
}

// Array returns an array-typed field, e.g. Memos or SignerEntries.
func (r *Record) Array(name string) ([]any, bool) {
	v, ok := r.typed[name].([]any)
	return v, ok
}

// Time returns a codec-decoded calendar-time field.
func (r *Record) Time(name string) (time.Time, bool) {
	v, ok := r.typed[name].(time.Time)
	return v, ok
}

// Flags returns the Flags bitfield, zero when absent.
func (r *Record) Flags() uint32 {
	v, _ := r.UInt32("Flags")
	return v
}

// HasFlag reports whether the given flag bit is set.
func (r *Record) HasFlag(mask uint32) bool {
	return r.Flags()&mask != 0
}

// Fee returns the declared fee as a native amount.
func (r *Record) Fee() (amount.Amount, bool) {
	return r.Amount("Fee")
}

// party resolves an address field plus its companion tag field into a
// Party. A tag embedded in a packed address wins over the side-channel tag
// field.
func (r *Record) party(addrField, tagField string) (Party, bool) {
	addr, ok := r.typed[addrField].(string)
	if !ok {
		return Party{}, false
	}
	p := Party{Address: addr}
	if _, embedded, err := addresscodec.DecodeAnyAddress(addr); err == nil && embedded != nil {
		p.Tag = embedded
	} else if tag, ok := r.UInt32(tagField); ok {
		t := tag
		p.Tag = &t
	}
	return p, true
}

// AccountField resolves any account-typed field into a Party, e.g. an
// escrow's Owner or a preauthorization target.
func (r *Record) AccountField(name string) (Party, bool) {
	return r.party(name, "")
}

// Account returns the sending party. Genuine records always have one.
func (r *Record) Account() (Party, bool) {
	return r.party("Account", "SourceTag")
}

// Destination returns the receiving party for kinds that declare one.
func (r *Record) Destination() (Party, bool) {
	return r.party("Destination", "DestinationTag")
}

// BalanceChanges reports the account's realized movements from the attached
// metadata. Without metadata the result is empty.
func (r *Record) BalanceChanges(account string) meta.Changes {
	if r.meta == nil {
		return meta.Changes{}
	}
	return r.meta.BalanceChanges(account)
}

// Indirection point for the status resolution, swappable in tests.
var resolveOfferStatus = func(m *meta.Meta, owner, index string) meta.OfferStatus {
	return m.OfferStatus(owner, index)
}

// OfferStatus classifies what happened to the offer this record placed, as
// seen by owner. Offers are identified by the keylet of the owner and the
// creating transaction's sequence. Results are memoized per owner; repeated
// calls never rerun the metadata diff.
func (r *Record) OfferStatus(owner string) meta.OfferStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.offerStatus[owner]; ok {
		return s
	}

	s := r.computeOfferStatus(owner)
	if r.offerStatus == nil {
		r.offerStatus = make(map[string]meta.OfferStatus)
	}
	r.offerStatus[owner] = s
	return s
}

func (r *Record) computeOfferStatus(owner string) meta.OfferStatus {
	if r.meta == nil {
		return meta.StatusUnknown
	}

	acct, ok := r.Account()
	if !ok {
		return meta.StatusUnknown
	}

	// Compare underlying account IDs, not spellings: the same account may
	// arrive as a classic address in the transaction and an X-address in
	// the query, or vice versa.
	ownerID, _, err := addresscodec.DecodeAnyAddress(owner)
	if err != nil {
		return meta.StatusUnknown
	}
	acctID, _, err := addresscodec.DecodeAnyAddress(acct.Address)
	if err != nil {
		return meta.StatusUnknown
	}
	if !bytes.Equal(ownerID, acctID) {
		// A third party only ever observes an offer through its own
		// fills against it.
		return meta.StatusPartiallyFilled
	}

	seq, ok := r.UInt32("Sequence")
	if !ok {
		return meta.StatusUnknown
	}
	k, err := keylet.Offer(owner, seq)
	if err != nil {
		return meta.StatusUnknown
	}

	// Metadata spells accounts in classic form; resolve with the classic
	// spelling so balance matching works whatever form the caller used.
	classic, err := addresscodec.EncodeAccountIDToClassicAddress(ownerID)
	if err != nil {
		return meta.StatusUnknown
	}
	return resolveOfferStatus(r.meta, classic, k.Hex())
}

// WireValue renders a typed field back to its wire-level JSON shape: drop
// strings for native amounts, objects for issued amounts, numbers for
// 32-bit fields. It inverts the decoding applied at construction.
func (r *Record) WireValue(name string) (any, bool) {
	v, ok := r.typed[name]
	if !ok {
		return nil, false
	}

	if cfg, found := r.fieldConfig(name); found && cfg.Codec != nil {
		enc, err := cfg.Codec.Encode(v)
		if err != nil {
			return nil, false
		}
		v = enc
	}

	switch t := v.(type) {
	case amount.Amount:
		if t.IsNative() {
			drops, err := t.Drops()
			if err != nil {
				return nil, false
			}
			return formatDrops(drops), true
		}
		return map[string]any{
			"value":    t.String(),
			"currency": t.Currency,
			"issuer":   t.Issuer,
		}, true
	case uint32:
		return float64(t), true
	default:
		return v, true
	}
}

func (r *Record) fieldConfig(name string) (fields.Config, bool) {
	for _, d := range commonFields {
		if d.Name == name {
			return d.Config, true
		}
	}
	for _, d := range schemas[r.kind] {
		if d.Name == name {
			return d.Config, true
		}
	}
	return fields.Config{}, false
}
