//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package artifact

import (
	"context"
	"fmt"

	"trpc.group/trpc-go/trpc-agent-devkit/internal/json"
	"trpc.group/trpc-go/trpc-agent-devkit/media"
)

// ImageMimeType is the MimeType of artifacts written by ImageRegistrar.
// Their Data holds the JSON encoded media.Image.
const ImageMimeType = "application/json"

const imagePrefix = "image_"

// ImageFilename returns the artifact filename used for an image id.
func ImageFilename(id string) string {
	return imagePrefix + id
}

// ImageRegistrar is a media.Registrar saving each image into a session.
type ImageRegistrar struct {
	svc  Service
	info SessionInfo
}

var _ media.Registrar = (*ImageRegistrar)(nil)

// NewImageRegistrar returns a registrar writing to svc under sessionInfo.
func NewImageRegistrar(svc Service, sessionInfo SessionInfo) *ImageRegistrar {
	return &ImageRegistrar{svc: svc, info: sessionInfo}
}

// RegisterImage saves img as a new version of ImageFilename(img.ID).
func (r *ImageRegistrar) RegisterImage(ctx context.Context, img media.Image) error {
	if err := img.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(img)
	if err != nil {
		return fmt.Errorf("artifact: encode image %s: %w", img.ID, err)
	}
	art := &Artifact{
		Data:     data,
		MimeType: ImageMimeType,
		URL:      img.URL,
		Name:     img.AltText,
	}
	if _, err := r.svc.SaveArtifact(ctx, r.info, ImageFilename(img.ID), art); err != nil {
		return fmt.Errorf("artifact: save image %s: %w", img.ID, err)
	}
	return nil
}

// LoadImage reads back the latest version of an image saved by ImageRegistrar.
// It returns (nil, nil) when the image is unknown.
func LoadImage(ctx context.Context, svc Service, sessionInfo SessionInfo, id string) (*media.Image, error) {
	art, err := svc.LoadArtifact(ctx, sessionInfo, ImageFilename(id), nil)
	if err != nil || art == nil {
		return nil, err
	}
	var img media.Image
	if err := json.Unmarshal(art.Data, &img); err != nil {
		return nil, fmt.Errorf("artifact: decode image %s: %w", id, err)
	}
	if img.URL == "" {
		img.URL = art.URL
	}
	return &img, nil
}
