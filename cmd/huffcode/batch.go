package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/chronos-tachyon/huffcode"
	"github.com/chronos-tachyon/huffcode/internal/textio"
)

var BatchCommand = &cobra.Command{
	Use:   "batch file...",
	Short: "compress files concurrently",
	Long:  "compress each file with one shared code, writing <file>.bits next to it",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := loadCoder()
		if err != nil {
			log.Fatal(err)
		}
		sc := huffcode.NewSyncCoder(c)
		if err := runBatch(cmd.Context(), cmd.OutOrStdout(), sc, args, *charset, *jobs); err != nil {
			log.Fatal(err)
		}
	},
}

var jobs *int

func init() {
	jobs = BatchCommand.Flags().IntP("jobs", "j", runtime.NumCPU(), "number of files to compress at once")
	RootCommand.AddCommand(BatchCommand)
}

func runBatch(ctx context.Context, w io.Writer, sc *huffcode.SyncCoder, paths []string, charset string, numWorkers int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			// Check if another worker already failed
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			text, err := textio.ReadFile(path, charset)
			if err != nil {
				return err
			}
			bits, err := sc.Compress(text)
			if err != nil {
				return errors.Wrapf(err, "failed to compress %q", path)
			}
			if err := os.WriteFile(path+".bits", []byte(bits), 0o644); err != nil {
				return errors.Wrapf(err, "failed to write %q", path+".bits")
			}
			log.Printf("%s: %d bits", path, len(bits))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	ratio, err := sc.CompressionRatio()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "compressed %d files, compression ratio %.4f\n", len(paths), ratio)
	return err
}
