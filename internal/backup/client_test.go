package backup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresToken(t *testing.T) {
	_, err := NewClient(context.Background(), "")
	require.ErrorIs(t, err, ErrNoToken)
}

func TestNewClient_WithToken(t *testing.T) {
	c, err := NewClient(context.Background(), "ghp_test")
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestSuggestRepositoryName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My Shop", "my-shop-config"},
		{"billing_service", "billing-service-config"},
		{"weird!!name", "weirdname-config"},
		{"--..--", "ctxforge-backup"},
		{"", "ctxforge-backup"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, SuggestRepositoryName(tc.input), tc.input)
	}
}

func TestPushFiles_RejectsEmpty(t *testing.T) {
	c, err := NewClient(context.Background(), "ghp_test")
	require.NoError(t, err)

	_, err = c.PushFiles(context.Background(), "repo", "main", "backup", nil)
	assert.Error(t, err)
}
