// Package repo holds the ent-generated database client for the portal
// schemas defined in internal/schema. Run `go generate ./...` after any
// schema change.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . --feature sql/upsert ../schema
