package security

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInviteTokenGenerator(t *testing.T) {
	gen := NewInviteTokenGenerator()

	t.Run("URLSafeAndDecodable", func(t *testing.T) {
		token, err := gen.Generate()
		require.NoError(t, err)

		raw, err := base64.RawURLEncoding.DecodeString(token)
		require.NoError(t, err)
		assert.Len(t, raw, 32)
		assert.NotContains(t, token, "+")
		assert.NotContains(t, token, "/")
		assert.NotContains(t, token, "=")
	})

	t.Run("Unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			token, err := gen.Generate()
			require.NoError(t, err)
			assert.False(t, seen[token], "token repeated")
			seen[token] = true
		}
	})
}
