package osutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockPathProvider is a mock implementation for testing.
type MockPathProvider struct {
	UserConfigDirFn func() (string, error)
	UserHomeDirFn   func() (string, error)
	MkdirAllFn      func(path string, perm os.FileMode) error
}

func (m *MockPathProvider) UserConfigDir() (string, error) {
	if m.UserConfigDirFn != nil {
		return m.UserConfigDirFn()
	}
	return "", nil
}

func (m *MockPathProvider) UserHomeDir() (string, error) {
	if m.UserHomeDirFn != nil {
		return m.UserHomeDirFn()
	}
	return "", nil
}

func (m *MockPathProvider) MkdirAll(path string, perm os.FileMode) error {
	if m.MkdirAllFn != nil {
		return m.MkdirAllFn(path, perm)
	}
	return nil
}

func TestDefaultPathProvider_MkdirAll(t *testing.T) {
	testDir := filepath.Join(t.TempDir(), "test", "nested", "dir")

	require.NoError(t, DefaultPathProvider{}.MkdirAll(testDir, 0755))

	info, err := os.Stat(testDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSetProviderAndReset(t *testing.T) {
	mock := &MockPathProvider{}
	SetProvider(mock)
	assert.Same(t, mock, Provider)

	ResetProvider()
	assert.Equal(t, DefaultPathProvider{}, Provider)
}

func TestDesktopDir(t *testing.T) {
	defer ResetProvider()

	home := t.TempDir()
	SetProvider(&MockPathProvider{UserHomeDirFn: func() (string, error) { return home, nil }})

	dir, err := DesktopDir()
	require.NoError(t, err)
	assert.Equal(t, home, dir, "falls back to home without a Desktop folder")

	require.NoError(t, os.Mkdir(filepath.Join(home, "Desktop"), 0755))
	dir, err = DesktopDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Desktop"), dir)
}

func TestDesktopDir_HomeError(t *testing.T) {
	defer ResetProvider()
	SetProvider(&MockPathProvider{UserHomeDirFn: func() (string, error) {
		return "", errors.New("no home")
	}})

	_, err := DesktopDir()

	assert.EqualError(t, err, "no home")
}

func TestOpenCommand(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"windows", "notepad.exe"},
		{"darwin", "open"},
		{"linux", "xdg-open"},
		{"freebsd", "xdg-open"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			cmd := OpenCommand(tt.goos, "resumo.txt")
			assert.Equal(t, []string{tt.want, "resumo.txt"}, cmd.Args)
		})
	}
}
