package delivery

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/puzzlepost/internal/puzzle"
	"github.com/dmitrijs2005/puzzlepost/internal/supernote"
	"golang.org/x/sync/errgroup"
)

// Run delivers every spec concurrently and waits until all have settled.
// The group has no shared context, so one failure does not cancel the rest.
func (p *Pipeline) Run(ctx context.Context, token supernote.Token, folderID supernote.ID, specs []puzzle.DeliverySpec) Report {
	results := make([]Result, len(specs))

	var g errgroup.Group
	for i, spec := range specs {
		i, spec := i, spec
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					results[i] = Result{Spec: spec, Status: StatusFailed, Err: fmt.Errorf("panic: %v", r)}
					err = results[i].Err
				}
			}()

			results[i] = p.Deliver(ctx, token, folderID, spec)
			return results[i].Err
		})
	}
	_ = g.Wait()

	return Report{Results: results}
}
