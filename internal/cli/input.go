package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/LeJamon/goXRPLtx/internal/ledger/tx"
)

// splitDocument accepts either an envelope {"tx": {...}, "meta": {...}} or a
// bare transaction object with an optional embedded "meta"/"metaData"
// sibling, as returned by the common ledger APIs.
func splitDocument(data []byte) (txRaw, metaRaw []byte, err error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("invalid input document: %w", err)
	}

	if inner, ok := doc["tx"]; ok {
		txRaw = inner
	} else {
		txRaw = data
	}
	if m, ok := doc["meta"]; ok {
		metaRaw = m
	} else if m, ok := doc["metaData"]; ok {
		metaRaw = m
	}
	return txRaw, metaRaw, nil
}

// processFiles decodes every file concurrently, bounded by the configured
// worker count, and returns per-file outputs in input order.
func processFiles(ctx context.Context, files []string, fn func(*tx.Record, string) (any, error)) ([]any, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	results := make([]any, len(files))
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			txRaw, metaRaw, err := splitDocument(data)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			record, err := tx.Decode(txRaw, metaRaw)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			logger.Debug("decoded record",
				zap.String("file", file),
				zap.String("kind", string(record.Kind())))

			out, err := fn(record, file)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	if cfg.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
