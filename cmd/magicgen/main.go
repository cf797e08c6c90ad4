// Command magicgen searches for magic multipliers for every bishop and rook
// square, stores them, and optionally checks the stored set against the ray
// walker so it can be shipped as preloaded constants.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mhs294/chess-sub000/internal/attack"
	"github.com/mhs294/chess-sub000/internal/board"
	"github.com/mhs294/chess-sub000/internal/storage"
)

var (
	dbDir    = flag.String("db", "", "magic store directory (default: platform data dir)")
	seed     = flag.Uint64("seed", attack.DefaultSeed, "base seed for the candidate generator")
	attempts = flag.Int("attempts", attack.DefaultMaxAttempts, "maximum candidates per square")
	workers  = flag.Int("workers", runtime.NumCPU(), "parallel searches")
	verify   = flag.Bool("verify", false, "only verify the stored magics")
)

type result struct {
	number   uint64
	attempts int
}

func main() {
	flag.Parse()

	dir := *dbDir
	if dir == "" {
		var err error
		if dir, err = storage.DatabaseDir(); err != nil {
			log.Fatal("could not resolve data directory: ", err)
		}
	}

	store, err := storage.Open(dir)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	if *verify {
		if err := verifyStored(store); err != nil {
			store.Close()
			log.Fatal(err)
		}
		return
	}

	if err := generate(context.Background(), store); err != nil {
		store.Close()
		log.Fatal(err)
	}
}

func generate(ctx context.Context, store *storage.Storage) error {
	start := time.Now()
	var results [2][64]result

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, *workers))
	for _, f := range attack.Families {
		for sq := board.A1; sq <= board.H8; sq++ {
			f, sq := f, sq
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				rng := board.NewPRNG(attack.JobSeed(*seed, f, sq))
				m, n, err := attack.FindMagic(f, sq, rng, *attempts)
				if err != nil {
					return err
				}
				results[f][sq] = result{number: m.Number, attempts: n}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	for _, f := range attack.Families {
		set := &storage.MagicSet{Family: f.String(), Seed: *seed}
		for sq, r := range results[f] {
			set.Numbers[sq] = r.number
			set.Attempts += int64(r.attempts)
		}
		if err := store.SaveMagics(set); err != nil {
			return fmt.Errorf("save %s magics: %w", f, err)
		}
		log.Println(p.Sprintf("%-6s 64 squares, %d candidates tried", f, set.Attempts))
	}
	log.Println(p.Sprintf("done in %v", time.Since(start).Round(time.Millisecond)))
	return nil
}

func verifyStored(store *storage.Storage) error {
	var numbers [2][64]uint64
	for _, f := range attack.Families {
		set, err := store.LoadMagics(f.String())
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no %s magics stored; run magicgen without -verify first", f)
		}
		if err != nil {
			return err
		}
		numbers[f] = set.Numbers
	}

	bad := 0
	for _, f := range attack.Families {
		for sq := board.A1; sq <= board.H8; sq++ {
			if err := attack.Verify(f, sq, numbers[f][sq]); err != nil {
				fmt.Fprintln(os.Stderr, color.RedString("FAIL"), err)
				bad++
			}
		}
	}

	tables, err := attack.Build(attack.Options{Seed: *seed, MaxAttempts: *attempts, Magics: &numbers})
	if err != nil {
		return err
	}
	p := message.NewPrinter(language.English)
	fmt.Println(p.Sprintf("table entries: bishop %d, rook %d",
		tables.Len(attack.FamilyBishop), tables.Len(attack.FamilyRook)))

	if bad > 0 {
		return fmt.Errorf("%d of 128 stored magics collide", bad)
	}
	fmt.Println(color.GreenString("OK"), "all 128 stored magics verified")
	return nil
}
