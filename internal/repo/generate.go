// Package repo holds the ent-generated data access layer. The generated code
// is not committed; run `go generate ./internal/repo` after changing schemas.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . ../schema
