package migrations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersions(t *testing.T) {
	versions, err := Versions()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, versions)
}

func TestRun_Rejects(t *testing.T) {
	err := Run(context.Background(), nil, CommandUp)
	require.ErrorContains(t, err, "db is required")
}
