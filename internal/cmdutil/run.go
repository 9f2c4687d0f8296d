// internal/cmdutil/run.go
package cmdutil

import (
	"context"
	"errors"
	"io"

	"clstr-core/clstr"
)

// ForEach drains src, calling fn once per cluster and honoring ctx between
// clusters. It returns the number of clusters visited and the first error
// (abort-on-first-error policy shared by all tools).
func ForEach(ctx context.Context, src clstr.Source, fn func(*clstr.Cluster) error) (int, error) {
	n := 0
	for {
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		default:
		}
		c, err := src.Next()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if err := fn(c); err != nil {
			return n, err
		}
		n++
	}
}
