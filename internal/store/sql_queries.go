// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/session-foundation/configsync/models"
)

// Query builders for the snapshots table. SQLite uses ? placeholders, which
// is squirrel's default format, so no placeholder rewrite is configured.

func buildUpsertSnapshotQuery(key models.Key, blob []byte, appliedAt int64) (string, []any, error) {
	return sq.Insert("snapshots").
		Columns("owner", "doc_type", "blob", "applied_at").
		Values(string(key.Owner), int64(key.Type), blob, appliedAt).
		Suffix("ON CONFLICT(owner, doc_type) DO UPDATE SET blob = excluded.blob, applied_at = excluded.applied_at").
		ToSql()
}

func buildSelectSnapshotQuery(key models.Key) (string, []any, error) {
	return sq.Select("blob", "applied_at").
		From("snapshots").
		Where(sq.Eq{"owner": string(key.Owner), "doc_type": int64(key.Type)}).
		ToSql()
}

func buildDeleteSnapshotQuery(key models.Key) (string, []any, error) {
	return sq.Delete("snapshots").
		Where(sq.Eq{"owner": string(key.Owner), "doc_type": int64(key.Type)}).
		ToSql()
}

func buildListOwnerSnapshotsQuery(owner models.Owner) (string, []any, error) {
	return sq.Select("doc_type").
		From("snapshots").
		Where(sq.Eq{"owner": string(owner)}).
		OrderBy("doc_type ASC").
		ToSql()
}
