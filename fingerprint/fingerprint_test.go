package fingerprint

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeIsStable(t *testing.T) {
	first, err := Compute(context.Background(), Options{})
	require.NoError(t, err)

	second, err := Compute(context.Background(), Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, Digest{}, first)
}

// Any change to a table entry or to the arithmetic moves these values.
// Update them only together with a deliberate kernel change
const goldenDigest = "3884de3ffd0ee21eda4b4ec9568d149c2dda40e7dc61e3581dff6726d47ee53c"

var goldenShards = map[string]string{
	"mul":       "035035dc6a85a6cfee37636ae7e8a957ed52b4024ccab239f79241abc16f6a15",
	"div":       "004a1ac1e1e6d916b82399787b015545767fbc6fb952be9730b761ea31de8972",
	"trig":      "b41693bbbe85eab761ac7b332dcdb3796db70194e501fe3ad9c42abe91c33a16",
	"slope":     "52737428cd284707fdb66cd78f8f8a7d3b5ec916c5e56b458dce7f36d6b7b12f",
	"length":    "58e668b254dce31d1ca647c3167053f2311e88de5e5019db3d0a4dd7467b46eb",
	"side":      "e30a52621d475da468fe21ed21254adcf8f6d591b3bf5ec38beb491ce1926491",
	"intercept": "daac6bf74cc1cf384a70af40dd1388719b49f5a0580323571e4b9dd6a51faba9",
}

func TestComputeMatchesGolden(t *testing.T) {
	sums, err := ComputeShards(context.Background(), Options{Workers: 2})
	require.NoError(t, err)

	names := ShardNames()
	require.Len(t, names, len(goldenShards))
	for i, name := range names {
		assert.Equal(t, goldenShards[name], sums[i].String(), "shard %s", name)
	}

	d, err := Compute(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, goldenDigest, d.String())
}

func TestComputeIgnoresWorkerCount(t *testing.T) {
	want, err := Compute(context.Background(), Options{Workers: 1})
	require.NoError(t, err)

	for _, workers := range []int{2, 3, len(shards), 64} {
		got, err := Compute(context.Background(), Options{Workers: workers})
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

func TestShardsAreDistinct(t *testing.T) {
	sums, err := ComputeShards(context.Background(), Options{Workers: 2})
	require.NoError(t, err)
	require.Len(t, sums, len(ShardNames()))

	seen := make(map[Digest]string)
	for i, s := range sums {
		name := ShardNames()[i]
		if other, ok := seen[s]; ok {
			t.Fatalf("shards %s and %s hash equal", other, name)
		}
		seen[s] = name
	}
}

func TestComputeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d, err := Compute(ctx, Options{Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Digest{}, d)
}

func TestComputeLogsShards(t *testing.T) {
	var buf bytes.Buffer
	_, err := Compute(context.Background(), Options{Workers: 1, Logger: log.New(&buf, "", 0)})
	require.NoError(t, err)

	out := buf.String()
	for _, name := range ShardNames() {
		assert.Contains(t, out, "shard "+name+":")
	}
	assert.Equal(t, len(shards), strings.Count(out, "\n"))
}

func TestDigestString(t *testing.T) {
	var d Digest
	d[0] = 0xab
	d[31] = 0x01
	s := d.String()
	assert.Len(t, s, 64)
	assert.True(t, strings.HasPrefix(s, "ab00"))
	assert.True(t, strings.HasSuffix(s, "01"))
}

func TestCombineMatchesCompute(t *testing.T) {
	sums, err := ComputeShards(context.Background(), Options{Workers: 3})
	require.NoError(t, err)

	d, err := Compute(context.Background(), Options{Workers: 1})
	require.NoError(t, err)
	assert.Equal(t, d, Combine(sums))

	// shard order is part of the digest
	sums[0], sums[1] = sums[1], sums[0]
	assert.NotEqual(t, d, Combine(sums))
}
