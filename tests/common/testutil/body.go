//go:build unit || e2e

// Package testutil builds JSON request bodies for table-driven handler
// tests: start from a valid DTO, then apply one mutation per case.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type Mutation func(map[string]any)

// Body round-trips v through JSON so mutations see wire field names.
func Body(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, mut := range muts {
		mut(m)
	}
	return m
}

func Set(key string, value any) Mutation {
	return func(m map[string]any) { m[key] = value }
}

func Drop(key string) Mutation {
	return func(m map[string]any) { delete(m, key) }
}
