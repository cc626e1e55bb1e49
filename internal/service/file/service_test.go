package file

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/medusa-holding/medusa/internal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadJustificationEvidence(t *testing.T) {
	dir := t.TempDir()
	local, err := storage.NewLocalStorage(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)
	svc := NewFileService(local)
	ctx := context.Background()

	key, err := svc.UploadJustificationEvidence(ctx, "company-1", "att-1", strings.NewReader("%PDF-1.4"), "Atestado.PDF")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "justifications/company-1/att-1/"))
	assert.True(t, strings.HasSuffix(key, ".pdf"))

	exists, err := local.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	url, err := svc.GetFileURL(ctx, key, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/"+key, url)

	require.NoError(t, svc.DeleteFile(ctx, key))
	exists, err = local.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUploadJustificationEvidence_RejectsUnknownType(t *testing.T) {
	local, err := storage.NewLocalStorage(t.TempDir(), "http://localhost/uploads")
	require.NoError(t, err)
	svc := NewFileService(local)

	_, err = svc.UploadJustificationEvidence(context.Background(), "c", "a", strings.NewReader("x"), "note.exe")
	assert.Error(t, err)
}
