//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package pexels

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"trpc.group/trpc-go/trpc-agent-devkit/media"
)

// defaultParallelism bounds concurrent searches in SearchBatch.
const defaultParallelism = 4

// SearchBatch runs every request on a worker pool of the given size (a
// default is used when parallelism < 1) and returns the outcomes in request
// order. Registration order is only guaranteed within a single request.
//
// The error is non-nil only when the pool cannot be created or a task
// cannot be submitted.
func (t *Tool) SearchBatch(
	ctx context.Context,
	registrar media.Registrar,
	reqs []SearchRequest,
	parallelism int,
) ([]Outcome, error) {
	if parallelism < 1 {
		parallelism = defaultParallelism
	}
	pool, err := ants.NewPool(parallelism)
	if err != nil {
		return nil, fmt.Errorf("failed to create search worker pool: %w", err)
	}
	defer pool.Release()

	outcomes := make([]Outcome, len(reqs))
	var wg sync.WaitGroup
	for i, req := range reqs {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			outcomes[i] = t.Search(ctx, registrar, req)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("failed to submit search %d: %w", i, err)
		}
	}
	wg.Wait()
	return outcomes, nil
}
