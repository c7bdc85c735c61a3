// Package fingerprint hashes a fixed set of kernel results so two builds or two
// platforms can be compared for bit-exact agreement.
package fingerprint

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Digest is the sha256 of the ordered shard digests
type Digest [sha256.Size]byte

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Options tunes a Compute run. The zero value is valid
type Options struct {
	// Workers bounds concurrent shards; zero means GOMAXPROCS
	Workers int
	// Logger receives one line per finished shard; nil disables logging
	Logger *log.Logger
}

// ShardNames lists probe shards in digest order
func ShardNames() []string {
	names := make([]string, len(shards))
	for i, s := range shards {
		names[i] = s.name
	}
	return names
}

// Compute runs every probe shard and folds the results into one digest
// The result does not depend on Workers
func Compute(ctx context.Context, opts Options) (Digest, error) {
	sums, err := ComputeShards(ctx, opts)
	if err != nil {
		return Digest{}, err
	}
	return Combine(sums), nil
}

// Combine folds shard digests, in order, into the run digest
func Combine(sums []Digest) Digest {
	h := sha256.New()
	for i := range sums {
		h.Write(sums[i][:])
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// ComputeShards returns the per-shard digests in ShardNames order
func ComputeShards(ctx context.Context, opts Options) ([]Digest, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	sums := make([]Digest, len(shards))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range shards {
		s := shards[i]
		g.Go(func() error {
			w := &writer{h: sha256.New()}
			if err := s.run(gctx, w); err != nil {
				return fmt.Errorf("shard %s: %w", s.name, err)
			}
			copy(sums[i][:], w.h.Sum(nil))
			if opts.Logger != nil {
				opts.Logger.Printf("fingerprint: shard %s: %d values", s.name, w.count)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A shard may finish before noticing cancellation; the run is still incomplete
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return sums, nil
}
