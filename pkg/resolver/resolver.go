package resolver

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/benbjohnson/clock"

	"ton-dns-resolver/pkg/adnl"
	"ton-dns-resolver/pkg/storage"
	"ton-dns-resolver/pkg/tonlib"
)

const (
	// maxHops bounds chain length; a registry that keeps pointing onward
	// (or at itself) fails the call instead of looping.
	maxHops = 4

	// queryTTLHint is the ttl hint passed on every registry lookup.
	queryTTLHint = 16

	suffixAdnl = ".adnl"
	suffixBag  = ".bag"
)

// Resolver turns domain names into terminal endpoint strings by following
// naming-registry records hop by hop, starting at the root registry, with a
// two-tier TTL cache in front.
type Resolver struct {
	client   tonlib.Client
	cache    *resolutionCache
	clock    clock.Clock
	category [32]byte
	synced   atomic.Bool
}

// NewResolver creates a Resolver backed by the given lookup client. store
// may be nil to run with the in-memory cache tier only.
func NewResolver(client tonlib.Client, store storage.Store) *Resolver {
	return newResolver(client, store, clock.New())
}

func newResolver(client tonlib.Client, store storage.Store, clk clock.Clock) *Resolver {
	return &Resolver{
		client:   client,
		cache:    newResolutionCache(store, clk),
		clock:    clk,
		category: tonlib.CategorySite(),
	}
}

// Resolve resolves name to a terminal address, either `<id>.adnl` for a peer
// endpoint or `<hex>.bag` for a storage bag. Every call yields exactly one
// outcome: a fresh or stale-but-valid cache hit returns immediately (a stale
// hit additionally kicks off a detached refresh), anything else runs a full
// chain resolution and returns its result.
func (r *Resolver) Resolve(ctx context.Context, name string) (string, error) {
	if entry, tier := r.cache.lookup(name); tier != cacheMiss {
		if tier == cacheStale {
			go r.refresh(name)
		}
		return entry.Address, nil
	}
	return r.resolveChain(ctx, name)
}

// refresh re-runs the chain for a soft-expired name. Its outcome is dropped
// by construction: the caller that triggered it was already answered from
// cache, so success only lands in the cache and failure only lands in the
// log.
func (r *Resolver) refresh(name string) {
	if _, err := r.resolveChain(context.Background(), name); err != nil {
		log.Printf("Background refresh of %s failed: %v", name, err)
	}
}

// resolveChain drives the hop loop from the root registry to a terminal
// record. The remainder and next registry address come from each response;
// the server-reported remainder is trusted as-is.
func (r *Resolver) resolveChain(ctx context.Context, fullName string) (string, error) {
	remainder := fullName
	registryAddress := "" // root registry
	for hop := 0; ; hop++ {
		if hop >= maxHops {
			return "", ErrDepthExceeded
		}

		entries, err := r.client.Query(ctx, registryAddress, remainder, r.category, queryTTLHint)
		if err != nil {
			if tonlib.IsUnregistered(err) {
				return "", ErrNoRecords
			}
			return "", fmt.Errorf("lookup at hop %d: %w", hop, err)
		}
		if len(entries) == 0 {
			return "", ErrNoRecords
		}

		// First entry wins; further entries are protocol-legal but unused.
		switch e := entries[0].(type) {
		case tonlib.NextResolver:
			registryAddress = e.Resolver
			remainder = e.Remainder

		case tonlib.PeerAddress:
			id, err := adnl.Parse(e.Raw)
			if err != nil {
				return "", fmt.Errorf("%w: %v", ErrMalformedAddress, err)
			}
			address := id.Serialize() + suffixAdnl
			r.cache.save(fullName, address)
			return address, nil

		case tonlib.StorageAddress:
			address := hex.EncodeToString(e.BagID[:]) + suffixBag
			r.cache.save(fullName, address)
			return address, nil

		default:
			return "", ErrUnsupportedRecord
		}
	}
}
