// Package export mirrors a loaded game data snapshot into a relational
// schema.
//
// Exports are one-way and idempotent: every run rewrites the 'operators',
// 'operator_skills' and 'items' tables inside a single transaction, so the
// database always matches exactly one snapshot.
//
// # Components
//
//   - Service: Flattens the snapshot and performs the transactional write.
//   - Handler: Exposes the export trigger over HTTP.
//   - Feature: Registers the feature; disabled when no database is
//     configured.
//
// # HTTP Endpoints
//
//   - POST /export : Write the current snapshot to the database.
package export
