package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentineltools/commentcode"
	"github.com/sentineltools/commentcode/config"
)

func TestNoopStoreDiscardsEverything(t *testing.T) {
	n := Noop{}
	run, err := commentcode.NewRunMetadata()
	require.NoError(t, err)

	require.NoError(t, n.Save(context.Background(), run, []commentcode.Issue{{RuleKey: commentcode.RuleKey}}))

	recent, err := n.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, recent)

	assert.NoError(t, n.Close())
}

func TestOpenDispatchesNoneAndEmptyToNoop(t *testing.T) {
	for _, backend := range []string{"", "none"} {
		s, err := Open(context.Background(), config.StoreConfig{Backend: backend})
		require.NoError(t, err)
		assert.Equal(t, Noop{}, s)
	}
}

func TestOpenRejectsUnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), config.StoreConfig{Backend: "oracle"})
	assert.Error(t, err)
}
