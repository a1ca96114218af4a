package tonlib

import (
	"crypto/sha256"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Well-known record categories defined by the naming protocol. Queries issued
// by this client always use CategorySite; the uint16 codes identify the other
// record classes a registry entry may carry.
const (
	CategoryCodeNextResolver uint16 = 0xba93
	CategoryCodeContractAddr uint16 = 0x9fd3
	CategoryCodeAdnlSite     uint16 = 0xad01
	CategoryCodeStorageSite  uint16 = 0x7473
)

// CategorySite is the record category requested on every lookup: the SHA-256
// hash of the literal string "site".
func CategorySite() [32]byte {
	return sha256.Sum256([]byte("site"))
}

// Entry is one naming-registry record. It is a closed union: the concrete
// types are NextResolver, PeerAddress, StorageAddress and Unknown.
type Entry interface {
	isEntry()
}

// NextResolver points the chain at another registry contract that owns the
// still-unresolved remainder of the name.
type NextResolver struct {
	Resolver  string // contract address of the next registry
	Remainder string // unresolved suffix, as reported by the registry
}

// PeerAddress is a terminal record carrying a serialized ADNL peer identifier.
type PeerAddress struct {
	Raw string
}

// StorageAddress is a terminal record carrying a storage bag identifier.
type StorageAddress struct {
	BagID [32]byte
}

// Unknown is any record kind this client does not resolve.
type Unknown struct {
	Type string
}

func (NextResolver) isEntry()   {}
func (PeerAddress) isEntry()    {}
func (StorageAddress) isEntry() {}
func (Unknown) isEntry()        {}

// Wire type tags used by the tonlib gateway.
const (
	wireTypeNextResolver   = "dns.entryDataNextResolver"
	wireTypeAdnlAddress    = "dns.entryDataAdnlAddress"
	wireTypeStorageAddress = "dns.entryDataStorageAddress"
)

// wireEntry is the raw JSON shape of a registry record as returned by the
// gateway; toEntry converts it into the typed union.
type wireEntry struct {
	Type        string        `json:"@type"`
	Resolver    string        `json:"resolver,omitempty"`
	Remainder   string        `json:"remainder,omitempty"`
	AdnlAddress string        `json:"adnl_address,omitempty"`
	BagID       hexutil.Bytes `json:"bag_id,omitempty"`
}

func (w wireEntry) toEntry() Entry {
	switch w.Type {
	case wireTypeNextResolver:
		return NextResolver{Resolver: w.Resolver, Remainder: w.Remainder}
	case wireTypeAdnlAddress:
		return PeerAddress{Raw: w.AdnlAddress}
	case wireTypeStorageAddress:
		var bag [32]byte
		copy(bag[:], w.BagID)
		return StorageAddress{BagID: bag}
	default:
		return Unknown{Type: w.Type}
	}
}

// dnsResolved is the gateway's dns_resolve result payload.
type dnsResolved struct {
	Entries []wireEntry `json:"entries"`
}

// DecodeEntries parses a raw dns_resolve result into typed entries.
func DecodeEntries(raw json.RawMessage) ([]Entry, error) {
	var resolved dnsResolved
	if err := json.Unmarshal(raw, &resolved); err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(resolved.Entries))
	for _, w := range resolved.Entries {
		entries = append(entries, w.toEntry())
	}
	return entries, nil
}
