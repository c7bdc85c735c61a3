// kernel-digest prints the fixed-point kernel fingerprint. Two builds that print
// the same digest produce identical simulation results.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/fixedcore/fingerprint"
)

func main() {
	workers := flag.Int("workers", 0, "concurrent probe shards (0 = GOMAXPROCS)")
	verbose := flag.Bool("v", false, "log per-shard progress and digests to stderr")
	expect := flag.String("expect", "", "exit non-zero unless the digest equals this hex value")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := fingerprint.Options{Workers: *workers}
	if *verbose {
		opts.Logger = log.New(os.Stderr, "", log.Ltime|log.Lmicroseconds)
	}

	sums, err := fingerprint.ComputeShards(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kernel-digest: %v\n", err)
		os.Exit(1)
	}
	if *verbose {
		for i, name := range fingerprint.ShardNames() {
			fmt.Fprintf(os.Stderr, "%-10s %s\n", name, sums[i])
		}
	}

	d := fingerprint.Combine(sums)
	fmt.Println(d)

	if *expect != "" && *expect != d.String() {
		fmt.Fprintf(os.Stderr, "kernel-digest: mismatch, expected %s\n", *expect)
		os.Exit(2)
	}
}
