package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/tgragnato/ebmbtreebench/pkg/benchconfig"
	"github.com/tgragnato/ebmbtreebench/pkg/benchmetrics"
	"github.com/tgragnato/ebmbtreebench/pkg/benchstore"
	"github.com/tgragnato/ebmbtreebench/pkg/ebindex"
)

var (
	benchConfigPath string
	benchDataDir    string
)

// benchCmd drives pkg/ebindex, pkg/benchstore, and pkg/benchmetrics
// together: it loads the configured key count and workload mix, builds an
// eb32 index, an ebmb index, and a pebble-backed store side by side, and
// reports operation counts and average latency for each.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the tree-vs-pebble comparison benchmark",
	Long: `Bench loads a benchconfig.Config (or the built-in default if
--config is not given), drives an eb32 index, an ebmb index, and a pebble
store through the same load-then-mixed-workload sequence, and prints a
summary table of operation counts and average latency per variant.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := benchconfig.DefaultConfig()
		if benchConfigPath != "" {
			loaded, err := benchconfig.LoadConfig(benchConfigPath)
			if err != nil {
				exitf("loading config: %v", err)
			}
			cfg = loaded
		}

		metrics := benchmetrics.NewMetrics()
		results := map[string]*variantResult{}

		for _, v := range cfg.Variants {
			switch v {
			case "eb32":
				results[v] = runIntIndexBench(cfg, metrics)
			case "ebmb":
				results[v] = runStringIndexBench(cfg, metrics)
			case "pebble":
				r, err := runPebbleBench(cfg, metrics, benchDataDir)
				if err != nil {
					exitf("pebble variant: %v", err)
				}
				results[v] = r
			default:
				exitf("unknown variant %q in config", v)
			}
		}

		cmd.Printf("%-8s %10s %10s %10s %14s\n", "variant", "inserts", "lookups", "deletes", "avg latency")
		for _, v := range cfg.Variants {
			r := results[v]
			cmd.Printf("%-8s %10d %10d %10d %14s\n", v, r.inserts, r.lookups, r.deletes, r.avgLatency())
		}
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().StringVar(&benchConfigPath, "config", "", "path to a benchconfig YAML file")
	benchCmd.Flags().StringVar(&benchDataDir, "data-dir", "./bench-data", "data directory for the pebble baseline")
}

type variantResult struct {
	inserts, lookups, deletes int
	totalDuration             time.Duration
}

func (r *variantResult) avgLatency() time.Duration {
	ops := r.inserts + r.lookups + r.deletes
	if ops == 0 {
		return 0
	}
	return r.totalDuration / time.Duration(ops)
}

func randomKeyBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	rng.Read(b)
	return b
}

func runIntIndexBench(cfg *benchconfig.Config, metrics *benchmetrics.Metrics) *variantResult {
	rng := rand.New(rand.NewSource(1))
	ix := ebindex.NewIntIndex()
	entries := make([]*ebindex.IntEntry, 0, cfg.KeyCount)
	result := &variantResult{}

	for i := 0; i < cfg.KeyCount; i++ {
		key := rng.Uint32()
		start := time.Now()
		e := ix.Insert(key)
		d := time.Since(start)
		metrics.RecordOp("eb32", "insert", true, d)
		result.inserts++
		result.totalDuration += d
		entries = append(entries, e)
	}
	metrics.SetEntries("eb32", cfg.KeyCount)
	metrics.SetKeyWidthBits("eb32", 32)

	runWorkload(cfg, rng, len(entries),
		func(i int) time.Duration {
			start := time.Now()
			ix.Lookup(entries[i].Key())
			return time.Since(start)
		},
		func(i int) time.Duration {
			start := time.Now()
			ix.Insert(rng.Uint32())
			return time.Since(start)
		},
		func(i int) time.Duration {
			start := time.Now()
			ix.Delete(entries[i])
			return time.Since(start)
		},
		result, "eb32", metrics,
	)
	return result
}

func runStringIndexBench(cfg *benchconfig.Config, metrics *benchmetrics.Metrics) *variantResult {
	rng := rand.New(rand.NewSource(2))
	ix := ebindex.NewStringIndex(cfg.KeyWidth, false)
	entries := make([]*ebindex.StringEntry, 0, cfg.KeyCount)
	result := &variantResult{}

	for i := 0; i < cfg.KeyCount; i++ {
		key := randomKeyBytes(rng, cfg.KeyWidth)
		start := time.Now()
		e := ix.Insert(key)
		d := time.Since(start)
		metrics.RecordOp("ebmb", "insert", true, d)
		result.inserts++
		result.totalDuration += d
		entries = append(entries, e)
	}
	metrics.SetEntries("ebmb", cfg.KeyCount)
	metrics.SetKeyWidthBits("ebmb", cfg.KeyWidth*8)

	runWorkload(cfg, rng, len(entries),
		func(i int) time.Duration {
			start := time.Now()
			ix.Lookup(entries[i].Key())
			return time.Since(start)
		},
		func(i int) time.Duration {
			start := time.Now()
			ix.Insert(randomKeyBytes(rng, cfg.KeyWidth))
			return time.Since(start)
		},
		func(i int) time.Duration {
			start := time.Now()
			ix.Delete(entries[i])
			return time.Since(start)
		},
		result, "ebmb", metrics,
	)
	return result
}

func runPebbleBench(cfg *benchconfig.Config, metrics *benchmetrics.Metrics, dataDir string) (*variantResult, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	store, err := benchstore.Open(filepath.Join(dataDir, "pebble"))
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	rng := rand.New(rand.NewSource(3))
	keys := make([][]byte, 0, cfg.KeyCount)
	result := &variantResult{}

	for i := 0; i < cfg.KeyCount; i++ {
		key := randomKeyBytes(rng, cfg.KeyWidth)
		start := time.Now()
		err := store.Set(key, key)
		d := time.Since(start)
		if err != nil {
			return nil, fmt.Errorf("insert: %w", err)
		}
		metrics.RecordOp("pebble", "insert", true, d)
		result.inserts++
		result.totalDuration += d
		keys = append(keys, key)
	}
	metrics.SetEntries("pebble", cfg.KeyCount)
	metrics.SetKeyWidthBits("pebble", cfg.KeyWidth*8)

	runWorkload(cfg, rng, len(keys),
		func(i int) time.Duration {
			start := time.Now()
			store.Get(keys[i])
			return time.Since(start)
		},
		func(i int) time.Duration {
			start := time.Now()
			store.Set(randomKeyBytes(rng, cfg.KeyWidth), keys[i])
			return time.Since(start)
		},
		func(i int) time.Duration {
			start := time.Now()
			store.Delete(keys[i])
			return time.Since(start)
		},
		result, "pebble", metrics,
	)
	return result, nil
}

// runWorkload issues cfg.KeyCount further operations against an
// already-loaded variant, split according to cfg.Workload's fractions.
// Each of the loaded entries may be deleted at most once: deleting an
// entry a second time would hand the tree a node whose links the first
// delete already invalidated, so the delete case picks among still-alive
// entries only and is skipped (folded into a lookup) once none remain.
func runWorkload(cfg *benchconfig.Config, rng *rand.Rand, loaded int, lookup, insert, del func(i int) time.Duration, result *variantResult, variantName string, metrics *benchmetrics.Metrics) {
	if loaded == 0 {
		return
	}
	alive := make([]bool, loaded)
	for i := range alive {
		alive[i] = true
	}
	aliveCount := loaded

	ops := cfg.KeyCount
	for i := 0; i < ops; i++ {
		idx := rng.Intn(loaded)
		roll := rng.Float64()
		switch {
		case roll < cfg.Workload.LookupFraction || aliveCount == 0:
			d := lookup(idx)
			metrics.RecordOp(variantName, "lookup", true, d)
			result.lookups++
			result.totalDuration += d
		case roll < cfg.Workload.LookupFraction+cfg.Workload.InsertFraction:
			d := insert(idx)
			metrics.RecordOp(variantName, "insert", true, d)
			result.inserts++
			result.totalDuration += d
		default:
			for !alive[idx] {
				idx = rng.Intn(loaded)
			}
			d := del(idx)
			alive[idx] = false
			aliveCount--
			metrics.RecordOp(variantName, "delete", true, d)
			result.deletes++
			result.totalDuration += d
		}
	}
}
