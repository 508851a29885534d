package vaultfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atinyakov/GadgetKeeper/internal/models"
)

func testEnvelope() models.EncryptedExport {
	return models.EncryptedExport{
		Version: 3,
		IV:      "00112233445566778899aabbccddeeff",
		Data:    "deadbeefdeadbeefdeadbeefdeadbeef",
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gadgets.vault")
	v := New(path, zap.NewNop())

	require.False(t, v.Exists())
	require.NoError(t, v.Save(testEnvelope()))
	require.True(t, v.Exists())

	got, err := v.Load()
	require.NoError(t, err)
	require.Equal(t, testEnvelope(), got)
}

func TestSave_OwnerOnlyPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gadgets.vault")
	v := New(path, zap.NewNop())
	require.NoError(t, v.Save(testEnvelope()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSave_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gadgets.vault")
	v := New(path, zap.NewNop())

	require.NoError(t, v.Save(testEnvelope()))
	second := testEnvelope()
	second.Version = 9
	require.NoError(t, v.Save(second))

	got, err := v.Load()
	require.NoError(t, err)
	require.Equal(t, 9, got.Version)

	// no temp file left behind
	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))
}

func TestLoad_Missing(t *testing.T) {
	v := New(filepath.Join(t.TempDir(), "absent.vault"), zap.NewNop())
	_, err := v.Load()
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gadgets.vault")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	v := New(path, zap.NewNop())
	_, err := v.Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode vault")
}
