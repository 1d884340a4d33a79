//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package cos provides an artifact.Service backed by Tencent Cloud Object Storage.
// Each artifact version is one object named {path}/{version}; URL and Name
// travel as object metadata.
package cos

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	cos "github.com/tencentyun/cos-go-sdk-v5"

	"trpc.group/trpc-go/trpc-agent-devkit/artifact"
	iartifact "trpc.group/trpc-go/trpc-agent-devkit/internal/artifact"
)

// Service stores artifacts in one COS bucket.
type Service struct {
	client client
}

var _ artifact.Service = (*Service)(nil)

// NewService creates a Service for the bucket at bucketURL, e.g.
// https://examplebucket-1250000000.cos.ap-guangzhou.myqcloud.com.
func NewService(bucketURL string, opts ...Option) (*Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	c, err := buildClient(bucketURL, o)
	if err != nil {
		return nil, err
	}
	return &Service{client: c}, nil
}

// SaveArtifact implements artifact.Service.
func (s *Service) SaveArtifact(ctx context.Context, info artifact.SessionInfo, filename string, art *artifact.Artifact) (int, error) {
	if art == nil {
		return 0, fmt.Errorf("cos: nil artifact for %q", filename)
	}
	versions, err := s.ListVersions(ctx, info, filename)
	if err != nil {
		return 0, err
	}
	version := 0
	if n := len(versions); n > 0 {
		version = versions[n-1] + 1
	}

	meta := http.Header{}
	if art.URL != "" {
		meta.Set(metaURL, art.URL)
	}
	if art.Name != "" {
		meta.Set(metaName, art.Name)
	}
	mimeType := art.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	name := iartifact.BuildObjectName(info, filename, version)
	if err := s.client.PutObject(ctx, name, bytes.NewReader(art.Data), mimeType, meta); err != nil {
		return 0, fmt.Errorf("cos: upload %s: %w", name, err)
	}
	return version, nil
}

// LoadArtifact implements artifact.Service.
func (s *Service) LoadArtifact(ctx context.Context, info artifact.SessionInfo, filename string, version *int) (*artifact.Artifact, error) {
	var target int
	if version != nil {
		target = *version
	} else {
		versions, err := s.ListVersions(ctx, info, filename)
		if err != nil {
			return nil, err
		}
		if len(versions) == 0 {
			return nil, nil
		}
		target = versions[len(versions)-1]
	}

	name := iartifact.BuildObjectName(info, filename, target)
	body, header, err := s.client.GetObject(ctx, name)
	if err != nil {
		if cos.IsNotFoundError(err) && version == nil {
			return nil, nil
		}
		return nil, fmt.Errorf("cos: download %s: %w", name, err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("cos: read %s: %w", name, err)
	}
	art := &artifact.Artifact{
		Data:     data,
		MimeType: header.Get("Content-Type"),
		URL:      header.Get(metaURL),
		Name:     header.Get(metaName),
	}
	if art.MimeType == "" {
		art.MimeType = "application/octet-stream"
	}
	if art.Name == "" {
		art.Name = filename
	}
	return art, nil
}

// ListArtifactKeys implements artifact.Service.
func (s *Service) ListArtifactKeys(ctx context.Context, info artifact.SessionInfo) ([]string, error) {
	seen := map[string]struct{}{}
	for _, prefix := range []string{
		iartifact.BuildSessionPrefix(info),
		iartifact.BuildUserNamespacePrefix(info),
	} {
		keys, err := s.client.ListKeys(ctx, prefix)
		if err != nil && !cos.IsNotFoundError(err) {
			return nil, fmt.Errorf("cos: list %s: %w", prefix, err)
		}
		for _, key := range keys {
			if filename, _, ok := iartifact.ParseObjectName(prefix, key); ok {
				seen[filename] = struct{}{}
			}
		}
	}
	filenames := make([]string, 0, len(seen))
	for filename := range seen {
		filenames = append(filenames, filename)
	}
	sort.Strings(filenames)
	return filenames, nil
}

// DeleteArtifact implements artifact.Service.
func (s *Service) DeleteArtifact(ctx context.Context, info artifact.SessionInfo, filename string) error {
	versions, err := s.ListVersions(ctx, info, filename)
	if err != nil {
		return err
	}
	for _, v := range versions {
		name := iartifact.BuildObjectName(info, filename, v)
		if err := s.client.DeleteObject(ctx, name); err != nil && !cos.IsNotFoundError(err) {
			return fmt.Errorf("cos: delete %s: %w", name, err)
		}
	}
	return nil
}

// ListVersions implements artifact.Service.
func (s *Service) ListVersions(ctx context.Context, info artifact.SessionInfo, filename string) ([]int, error) {
	prefix := iartifact.BuildObjectNamePrefix(info, filename)
	keys, err := s.client.ListKeys(ctx, prefix)
	if err != nil {
		if cos.IsNotFoundError(err) {
			return []int{}, nil
		}
		return nil, fmt.Errorf("cos: list versions of %s: %w", filename, err)
	}
	scope := strings.TrimSuffix(prefix, filename+"/")
	versions := []int{}
	for _, key := range keys {
		if name, v, ok := iartifact.ParseObjectName(scope, key); ok && name == filename {
			versions = append(versions, v)
		}
	}
	sort.Ints(versions)
	return versions, nil
}
