package csvparser

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingSource returns data followed by a read error, and optionally fails on Close.
type failingSource struct {
	r        io.Reader
	closeErr error
	closes   int
}

func (f *failingSource) Read(p []byte) (int, error) { return f.r.Read(p) }

func (f *failingSource) Close() error {
	f.closes++
	return f.closeErr
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.Equal(t, KindFileNotFound, KindOf(err))
}

func TestLineReader_ReadsLinesInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,1,01-01-2020\r\nb,2,02-01-2020\n\nc,3,03-01-2020"), 0644))

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	var lines []string
	var numbers []int
	for r.Next() {
		lines = append(lines, r.Line())
		numbers = append(numbers, r.LineNumber())
	}

	require.NoError(t, r.Err())
	assert.Equal(t, []string{"a,1,01-01-2020", "b,2,02-01-2020", "", "c,3,03-01-2020"}, lines)
	assert.Equal(t, []int{1, 2, 3, 4}, numbers)
	assert.Equal(t, path, r.Name())
}

func TestLineReader_ReadErrorStopsIteration(t *testing.T) {
	src := &failingSource{r: io.MultiReader(strings.NewReader("a,1,01-01-2020\n"), iotestErrReader{})}
	r := NewLineReader("broken.csv", src)

	require.True(t, r.Next())
	assert.Equal(t, "a,1,01-01-2020", r.Line())
	assert.False(t, r.Next())
	assert.False(t, r.Next())

	require.Error(t, r.Err())
	assert.Equal(t, KindIO, KindOf(r.Err()))
}

func TestLineReader_CloseOnce(t *testing.T) {
	src := &failingSource{r: strings.NewReader(""), closeErr: errors.New("disk gone")}
	r := NewLineReader("x.csv", src)

	err := r.Close()
	require.Error(t, err)
	assert.Equal(t, KindClose, KindOf(err))

	assert.NoError(t, r.Close())
	assert.Equal(t, 1, src.closes)
	assert.False(t, r.Next())
}

type iotestErrReader struct{}

func (iotestErrReader) Read([]byte) (int, error) { return 0, errors.New("device error") }
