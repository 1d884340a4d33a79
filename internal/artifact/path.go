//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package artifact holds the storage key layout shared by artifact backends.
//
// Session scoped keys look like {app}/{user}/{session}/{filename}; user
// namespaced keys ("user:" filenames) look like {app}/{user}/user/{filename}.
// Versioned object stores append /{version}.
package artifact

import (
	"strconv"
	"strings"

	"trpc.group/trpc-go/trpc-agent-devkit/artifact"
)

const userNamespace = "user:"

// FileHasUserNamespace reports whether filename lives in the user namespace.
func FileHasUserNamespace(filename string) bool {
	return strings.HasPrefix(filename, userNamespace)
}

// BuildSessionPrefix returns the key prefix of session scoped artifacts.
func BuildSessionPrefix(info artifact.SessionInfo) string {
	return info.AppName + "/" + info.UserID + "/" + info.SessionID + "/"
}

// BuildUserNamespacePrefix returns the key prefix of user namespaced artifacts.
func BuildUserNamespacePrefix(info artifact.SessionInfo) string {
	return info.AppName + "/" + info.UserID + "/user/"
}

// BuildArtifactPath returns the storage key of filename.
func BuildArtifactPath(info artifact.SessionInfo, filename string) string {
	if FileHasUserNamespace(filename) {
		return BuildUserNamespacePrefix(info) + filename
	}
	return BuildSessionPrefix(info) + filename
}

// BuildObjectNamePrefix returns the prefix shared by every version of filename.
func BuildObjectNamePrefix(info artifact.SessionInfo, filename string) string {
	return BuildArtifactPath(info, filename) + "/"
}

// BuildObjectName returns the object key of one version of filename.
func BuildObjectName(info artifact.SessionInfo, filename string, version int) string {
	return BuildObjectNamePrefix(info, filename) + strconv.Itoa(version)
}

// ParseObjectName splits an object key below prefix into filename and version.
func ParseObjectName(prefix, key string) (filename string, version int, ok bool) {
	rest, found := strings.CutPrefix(key, prefix)
	if !found {
		return "", 0, false
	}
	idx := strings.LastIndex(rest, "/")
	if idx <= 0 {
		return "", 0, false
	}
	version, err := strconv.Atoi(rest[idx+1:])
	if err != nil || version < 0 {
		return "", 0, false
	}
	return rest[:idx], version, true
}
