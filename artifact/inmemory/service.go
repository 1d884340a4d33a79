//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides a process local artifact.Service.
package inmemory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"trpc.group/trpc-go/trpc-agent-devkit/artifact"
	iartifact "trpc.group/trpc-go/trpc-agent-devkit/internal/artifact"
)

// Service keeps every artifact version in a map guarded by a RWMutex.
type Service struct {
	mu sync.RWMutex
	// artifacts maps a storage key to its versions, oldest first.
	artifacts map[string][]*artifact.Artifact
}

var _ artifact.Service = (*Service)(nil)

// NewService creates an empty Service.
func NewService() *Service {
	return &Service{
		artifacts: make(map[string][]*artifact.Artifact),
	}
}

// SaveArtifact implements artifact.Service.
func (s *Service) SaveArtifact(_ context.Context, info artifact.SessionInfo, filename string, art *artifact.Artifact) (int, error) {
	if art == nil {
		return 0, fmt.Errorf("inmemory: nil artifact for %q", filename)
	}
	stored := *art
	stored.Data = append([]byte(nil), art.Data...)

	s.mu.Lock()
	defer s.mu.Unlock()
	path := iartifact.BuildArtifactPath(info, filename)
	s.artifacts[path] = append(s.artifacts[path], &stored)
	return len(s.artifacts[path]) - 1, nil
}

// LoadArtifact implements artifact.Service.
func (s *Service) LoadArtifact(_ context.Context, info artifact.SessionInfo, filename string, version *int) (*artifact.Artifact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	versions := s.artifacts[iartifact.BuildArtifactPath(info, filename)]
	if len(versions) == 0 {
		return nil, nil
	}
	idx := len(versions) - 1
	if version != nil {
		idx = *version
		if idx < 0 || idx >= len(versions) {
			return nil, fmt.Errorf("inmemory: version %d of %q does not exist", idx, filename)
		}
	}
	out := *versions[idx]
	return &out, nil
}

// ListArtifactKeys implements artifact.Service.
func (s *Service) ListArtifactKeys(_ context.Context, info artifact.SessionInfo) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessionPrefix := iartifact.BuildSessionPrefix(info)
	userPrefix := iartifact.BuildUserNamespacePrefix(info)
	filenames := []string{}
	for path := range s.artifacts {
		if name, ok := strings.CutPrefix(path, sessionPrefix); ok {
			filenames = append(filenames, name)
		} else if name, ok := strings.CutPrefix(path, userPrefix); ok {
			filenames = append(filenames, name)
		}
	}
	sort.Strings(filenames)
	return filenames, nil
}

// DeleteArtifact implements artifact.Service.
func (s *Service) DeleteArtifact(_ context.Context, info artifact.SessionInfo, filename string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.artifacts, iartifact.BuildArtifactPath(info, filename))
	return nil
}

// ListVersions implements artifact.Service.
func (s *Service) ListVersions(_ context.Context, info artifact.SessionInfo, filename string) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	versions := s.artifacts[iartifact.BuildArtifactPath(info, filename)]
	out := make([]int, len(versions))
	for i := range versions {
		out[i] = i
	}
	return out, nil
}
