//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package cos

import (
	"context"
	"io"
	"net/http"

	cos "github.com/tencentyun/cos-go-sdk-v5"
)

// object metadata headers carrying the artifact fields that are not the body.
const (
	metaURL  = "x-cos-meta-url"
	metaName = "x-cos-meta-name"
)

// client is the part of the COS SDK the Service needs.
type client interface {
	ListKeys(ctx context.Context, prefix string) ([]string, error)
	PutObject(ctx context.Context, name string, content io.Reader, mimeType string, meta http.Header) error
	GetObject(ctx context.Context, name string) (body io.ReadCloser, header http.Header, err error)
	DeleteObject(ctx context.Context, name string) error
}

type sdkClient struct {
	*cos.Client
}

func newSDKClient(c *cos.Client) client {
	return &sdkClient{Client: c}
}

// ListKeys lists every key below prefix, following truncated listings.
func (c *sdkClient) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	var (
		keys   []string
		marker string
	)
	for {
		result, _, err := c.Bucket.Get(ctx, &cos.BucketGetOptions{Prefix: prefix, Marker: marker})
		if err != nil {
			return nil, err
		}
		for _, obj := range result.Contents {
			keys = append(keys, obj.Key)
		}
		if !result.IsTruncated || result.NextMarker == "" {
			return keys, nil
		}
		marker = result.NextMarker
	}
}

func (c *sdkClient) PutObject(ctx context.Context, name string, content io.Reader, mimeType string, meta http.Header) error {
	opt := &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{
			ContentType: mimeType,
		},
	}
	if len(meta) > 0 {
		opt.ObjectPutHeaderOptions.XCosMetaXXX = &meta
	}
	_, err := c.Object.Put(ctx, name, content, opt)
	return err
}

func (c *sdkClient) GetObject(ctx context.Context, name string) (io.ReadCloser, http.Header, error) {
	resp, err := c.Object.Get(ctx, name, nil)
	if err != nil {
		return nil, nil, err
	}
	return resp.Body, resp.Header, nil
}

func (c *sdkClient) DeleteObject(ctx context.Context, name string) error {
	_, err := c.Object.Delete(ctx, name)
	return err
}
