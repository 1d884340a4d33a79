//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package artifact

import "context"

// Service stores and retrieves artifacts.
//
// Filenames starting with "user:" live in the user namespace and are visible
// from every session of that user; other filenames are scoped to the session.
type Service interface {
	// SaveArtifact stores a new version of filename and returns its version.
	// The first version is 0.
	SaveArtifact(ctx context.Context, sessionInfo SessionInfo, filename string, artifact *Artifact) (int, error)

	// LoadArtifact returns the given version of filename, or the latest one
	// when version is nil. A missing artifact yields (nil, nil).
	LoadArtifact(ctx context.Context, sessionInfo SessionInfo, filename string, version *int) (*Artifact, error)

	// ListArtifactKeys lists the filenames visible from the session, sorted.
	ListArtifactKeys(ctx context.Context, sessionInfo SessionInfo) ([]string, error)

	// DeleteArtifact removes every version of filename. Deleting a missing
	// artifact is not an error.
	DeleteArtifact(ctx context.Context, sessionInfo SessionInfo, filename string) error

	// ListVersions lists the stored versions of filename in ascending order.
	ListVersions(ctx context.Context, sessionInfo SessionInfo, filename string) ([]int, error)
}
