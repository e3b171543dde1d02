package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wjaskula/metatsp/dataset"
)

// writeFile drops content into a fresh temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_SemicolonDialectWithDecimalCommas(t *testing.T) {
	path := writeFile(t, "m.csv", "0;10,5;3\n10,5;0;7\n3;7;0\n")

	d, err := dataset.Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, d.Rows())
	require.Equal(t, 3, d.Cols())

	v, err := d.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 10.5, v)

	v, err = d.At(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestLoad_SkipsBlankLinesAndCarriageReturns(t *testing.T) {
	// Windows line endings plus a trailing blank line must not change the shape.
	path := writeFile(t, "m.csv", "0;1\r\n1;0\r\n\r\n\n")

	d, err := dataset.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Rows())
}

func TestLoad_NotSquare(t *testing.T) {
	path := writeFile(t, "m.csv", "0;1;2\n1;0;2\n")

	_, err := dataset.Load(path)
	assert.ErrorIs(t, err, dataset.ErrNotSquare)
}

func TestLoad_BadValues(t *testing.T) {
	cases := map[string]string{
		"unparsable": "0;abc\n1;0\n",
		"negative":   "0;-1\n1;0\n",
		"nan":        "0;NaN\n1;0\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := dataset.Load(writeFile(t, "m.csv", content))
			assert.ErrorIs(t, err, dataset.ErrBadValue)
		})
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	_, err := dataset.Load(writeFile(t, "m.csv", "\n\n"))
	assert.ErrorIs(t, err, dataset.ErrEmptyFile)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
