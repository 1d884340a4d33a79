//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package sqlite provides an artifact.Service persisted in a SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver

	"trpc.group/trpc-go/trpc-agent-devkit/artifact"
	iartifact "trpc.group/trpc-go/trpc-agent-devkit/internal/artifact"
)

const defaultTableName = "artifacts"

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Option configures a Service.
type Option func(*options)

type options struct {
	tableName string
}

// WithTableName stores artifacts in the given table (default "artifacts").
func WithTableName(name string) Option {
	return func(o *options) {
		o.tableName = name
	}
}

// Service stores artifact versions as rows keyed by (path, version).
type Service struct {
	db    *sql.DB
	table string
}

var _ artifact.Service = (*Service)(nil)

// NewService opens (and creates if needed) the database at path.
func NewService(path string, opts ...Option) (*Service, error) {
	o := &options{tableName: defaultTableName}
	for _, opt := range opts {
		opt(o)
	}
	if !tableNamePattern.MatchString(o.tableName) {
		return nil, fmt.Errorf("sqlite: invalid table name %q", o.tableName)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	// One connection serialises writers and keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	ddl := `CREATE TABLE IF NOT EXISTS ` + o.tableName + ` (
		path       TEXT    NOT NULL,
		version    INTEGER NOT NULL,
		data       BLOB,
		mime_type  TEXT    NOT NULL DEFAULT '',
		url        TEXT    NOT NULL DEFAULT '',
		name       TEXT    NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL,
		PRIMARY KEY (path, version)
	)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: create table %s: %w", o.tableName, err)
	}
	return &Service{db: db, table: o.tableName}, nil
}

// Close closes the underlying database.
func (s *Service) Close() error {
	return s.db.Close()
}

// SaveArtifact implements artifact.Service.
func (s *Service) SaveArtifact(ctx context.Context, info artifact.SessionInfo, filename string, art *artifact.Artifact) (int, error) {
	if art == nil {
		return 0, fmt.Errorf("sqlite: nil artifact for %q", filename)
	}
	path := iartifact.BuildArtifactPath(info, filename)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("sqlite: begin: %w", err)
	}
	defer tx.Rollback()

	var version int
	row := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(version) + 1, 0) FROM `+s.table+` WHERE path = ?`, path)
	if err := row.Scan(&version); err != nil {
		return 0, fmt.Errorf("sqlite: next version of %s: %w", path, err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO `+s.table+` (path, version, data, mime_type, url, name, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		path, version, art.Data, art.MimeType, art.URL, art.Name, time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("sqlite: insert %s: %w", path, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("sqlite: commit: %w", err)
	}
	return version, nil
}

// LoadArtifact implements artifact.Service.
func (s *Service) LoadArtifact(ctx context.Context, info artifact.SessionInfo, filename string, version *int) (*artifact.Artifact, error) {
	path := iartifact.BuildArtifactPath(info, filename)

	var row *sql.Row
	if version == nil {
		row = s.db.QueryRowContext(ctx,
			`SELECT data, mime_type, url, name FROM `+s.table+` WHERE path = ? ORDER BY version DESC LIMIT 1`, path)
	} else {
		row = s.db.QueryRowContext(ctx,
			`SELECT data, mime_type, url, name FROM `+s.table+` WHERE path = ? AND version = ?`, path, *version)
	}

	art := &artifact.Artifact{}
	err := row.Scan(&art.Data, &art.MimeType, &art.URL, &art.Name)
	switch {
	case errors.Is(err, sql.ErrNoRows) && version == nil:
		return nil, nil
	case errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("sqlite: version %d of %q does not exist", *version, filename)
	case err != nil:
		return nil, fmt.Errorf("sqlite: load %s: %w", path, err)
	}
	return art, nil
}

// ListArtifactKeys implements artifact.Service.
func (s *Service) ListArtifactKeys(ctx context.Context, info artifact.SessionInfo) ([]string, error) {
	filenames := []string{}
	for _, prefix := range []string{
		iartifact.BuildSessionPrefix(info),
		iartifact.BuildUserNamespacePrefix(info),
	} {
		names, err := s.listPrefix(ctx, prefix)
		if err != nil {
			return nil, err
		}
		filenames = append(filenames, names...)
	}
	sort.Strings(filenames)
	return filenames, nil
}

// listPrefix returns the filenames stored under prefix. The comparison is on
// bytes since substr counts characters on TEXT values.
func (s *Service) listPrefix(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT path FROM `+s.table+
			` WHERE substr(CAST(path AS BLOB), 1, ?) = CAST(? AS BLOB)`, len(prefix), prefix)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list %s: %w", prefix, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("sqlite: scan: %w", err)
		}
		names = append(names, strings.TrimPrefix(path, prefix))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: list %s: %w", prefix, err)
	}
	return names, nil
}

// DeleteArtifact implements artifact.Service.
func (s *Service) DeleteArtifact(ctx context.Context, info artifact.SessionInfo, filename string) error {
	path := iartifact.BuildArtifactPath(info, filename)
	if _, err := s.db.ExecContext(ctx, `DELETE FROM `+s.table+` WHERE path = ?`, path); err != nil {
		return fmt.Errorf("sqlite: delete %s: %w", path, err)
	}
	return nil
}

// ListVersions implements artifact.Service.
func (s *Service) ListVersions(ctx context.Context, info artifact.SessionInfo, filename string) ([]int, error) {
	path := iartifact.BuildArtifactPath(info, filename)
	rows, err := s.db.QueryContext(ctx, `SELECT version FROM `+s.table+` WHERE path = ? ORDER BY version`, path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: versions of %s: %w", path, err)
	}
	defer rows.Close()

	versions := []int{}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("sqlite: scan: %w", err)
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}
