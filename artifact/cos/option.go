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
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	cos "github.com/tencentyun/cos-go-sdk-v5"
)

const defaultTimeout = 60 * time.Second

// Environment variables supplying credentials when no option is given.
const (
	EnvSecretID  = "COS_SECRETID"
	EnvSecretKey = "COS_SECRETKEY"
)

// Option configures a Service.
type Option func(*options)

type options struct {
	client     client
	httpClient *http.Client
	timeout    time.Duration
	secretID   string
	secretKey  string
}

// WithClient uses an already built COS client.
func WithClient(c *cos.Client) Option {
	return func(o *options) {
		o.client = newSDKClient(c)
	}
}

// WithHTTPClient uses httpClient for COS requests. The caller is then
// responsible for request signing.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// WithTimeout sets the request timeout (default 60s).
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithSecretID sets the secret id, overriding COS_SECRETID.
func WithSecretID(secretID string) Option {
	return func(o *options) {
		o.secretID = secretID
	}
}

// WithSecretKey sets the secret key, overriding COS_SECRETKEY.
func WithSecretKey(secretKey string) Option {
	return func(o *options) {
		o.secretKey = secretKey
	}
}

func buildClient(bucketURL string, o *options) (client, error) {
	if o.client != nil {
		return o.client, nil
	}
	u, err := url.Parse(bucketURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("cos: invalid bucket url %q", bucketURL)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &cos.AuthorizationTransport{
				SecretID:  o.secretID,
				SecretKey: o.secretKey,
			},
		}
	}
	if o.timeout > 0 {
		httpClient.Timeout = o.timeout
	}
	return newSDKClient(cos.NewClient(&cos.BaseURL{BucketURL: u}, httpClient)), nil
}

func defaultOptions() *options {
	return &options{
		timeout:   defaultTimeout,
		secretID:  os.Getenv(EnvSecretID),
		secretKey: os.Getenv(EnvSecretKey),
	}
}
