package archive

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storeradar/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestBlobArchive_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	archive, err := OpenBlobArchive(ctx, "mem://")
	require.NoError(t, err)
	defer archive.Close()

	require.NoError(t, archive.Save(ctx, "prices/20240105/S1.xml", []byte("<a/>")))
	require.NoError(t, archive.Save(ctx, "prices/20240105/S1.xml", []byte("<b/>")))

	data, err := archive.Read(ctx, "prices/20240105/S1.xml")
	require.NoError(t, err)
	assert.Equal(t, "<b/>", string(data))
}

func TestBlobArchive_FileBucket(t *testing.T) {
	ctx := context.Background()
	archive, err := OpenBlobArchive(ctx, "file://"+t.TempDir())
	require.NoError(t, err)
	defer archive.Close()

	require.NoError(t, archive.Save(ctx, "goods/latest/all.xml", []byte("<goods/>")))

	data, err := archive.Read(ctx, "goods/latest/all.xml")
	require.NoError(t, err)
	assert.Equal(t, "<goods/>", string(data))
}

func TestNew(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	disabled, err := New(Params{
		Lc: fxtest.NewLifecycle(t), Ctx: context.Background(), Logger: logger,
		Config: &config.Config{Archive: &config.ArchiveConfig{Enabled: false, BucketURL: "mem://"}},
	})
	require.NoError(t, err)
	assert.IsType(t, noopArchive{}, disabled)
	assert.NoError(t, disabled.Save(context.Background(), "k", nil))

	enabled, err := New(Params{
		Lc: fxtest.NewLifecycle(t), Ctx: context.Background(), Logger: logger,
		Config: &config.Config{Archive: &config.ArchiveConfig{Enabled: true, BucketURL: "mem://"}},
	})
	require.NoError(t, err)
	assert.IsType(t, &BlobArchive{}, enabled)

	_, err = New(Params{
		Lc: fxtest.NewLifecycle(t), Ctx: context.Background(), Logger: logger,
		Config: &config.Config{Archive: &config.ArchiveConfig{Enabled: true, BucketURL: "nope://bucket"}},
	})
	assert.Error(t, err)
}
