package music

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestScanLibraryFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Track 02.mp3"))
	touch(t, filepath.Join(dir, "Track 01.mp3"))
	touch(t, filepath.Join(dir, "sub", "ambient.ogg"))
	touch(t, filepath.Join(dir, "cover.jpg"))
	touch(t, filepath.Join(dir, "notes.txt"))

	tracks := scanLibrary(dir)
	require.Len(t, tracks, 3)
	assert.Equal(t, "Track 01", title(tracks[0]))
	assert.Equal(t, "Track 02", title(tracks[1]))
	assert.Equal(t, "ambient", title(tracks[2]))
}

func TestEmptyLibraryIsHarmless(t *testing.T) {
	p := NewPlayer(t.TempDir())
	assert.Empty(t, p.Current())
	assert.Empty(t, p.Next())
	p.Play()
	p.Pause()
}

func TestTitleStripsExtension(t *testing.T) {
	assert.Equal(t, "Local MP3 Mix", title("/music/Local MP3 Mix.mp3"))
}
