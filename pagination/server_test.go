package pagination

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRows(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{fmt.Sprintf("name-%d", i), fmt.Sprint(i)}
	}
	return rows
}

func writeCSV(t *testing.T, rows []Row) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("Name,Count\n")
	for _, r := range rows {
		b.WriteString(strings.Join(r, ","))
		b.WriteString("\n")
	}
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))
	return path
}

func TestDatasetFromCSVDropsHeader(t *testing.T) {
	rows := testRows(5)
	s := NewServer(writeCSV(t, rows))

	data, err := s.Dataset()
	require.NoError(t, err)
	assert.Equal(t, rows, data)
}

func TestDatasetMissingFile(t *testing.T) {
	s := NewServer(filepath.Join(t.TempDir(), "nope.csv"))
	_, err := s.GetPage(1, 10)
	require.Error(t, err)
	assert.False(t, s.Delete(0))
}

func TestGetPage(t *testing.T) {
	s := NewServerFromRows(testRows(25))

	page, err := s.GetPage(1, 10)
	require.NoError(t, err)
	require.Len(t, page, 10)
	assert.Equal(t, "name-0", page[0][0])

	page, err = s.GetPage(3, 10)
	require.NoError(t, err)
	require.Len(t, page, 5)
	assert.Equal(t, "name-20", page[0][0])

	page, err = s.GetPage(3000, 100)
	require.NoError(t, err)
	assert.Empty(t, page)

	_, err = s.GetPage(0, 10)
	assert.True(t, errors.Is(err, ErrInvalidPage))
}

func TestGetHyper(t *testing.T) {
	s := NewServerFromRows(testRows(25))

	h, err := s.GetHyper(1, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, h.PageSize)
	assert.Equal(t, 1, h.Page)
	assert.Equal(t, 3, h.TotalPages)
	require.NotNil(t, h.NextPage)
	assert.Equal(t, 2, *h.NextPage)
	assert.Nil(t, h.PrevPage)

	h, err = s.GetHyper(3, 10)
	require.NoError(t, err)
	assert.Equal(t, 5, h.PageSize)
	assert.Nil(t, h.NextPage)
	require.NotNil(t, h.PrevPage)
	assert.Equal(t, 2, *h.PrevPage)

	h, err = s.GetHyper(100, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, h.PageSize)
	assert.Empty(t, h.Data)
	assert.Nil(t, h.NextPage)
}

func TestGetHyperIndexSurvivesDeletion(t *testing.T) {
	s := NewServerFromRows(testRows(20))

	first, err := s.GetHyperIndex(0, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, first.NextIndex)
	assert.Len(t, first.Data, 5)

	require.True(t, s.Delete(5))
	require.True(t, s.Delete(7))
	assert.False(t, s.Delete(7))

	second, err := s.GetHyperIndex(first.NextIndex, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, second.Index)
	assert.Equal(t, 12, second.NextIndex)
	require.Len(t, second.Data, 5)
	assert.Equal(t, "name-6", second.Data[0][0])
	assert.Equal(t, "name-11", second.Data[4][0])

	last, err := s.GetHyperIndex(18, 5)
	require.NoError(t, err)
	assert.Equal(t, 20, last.NextIndex)
	assert.Len(t, last.Data, 2)
}

func TestGetHyperIndexValidation(t *testing.T) {
	s := NewServerFromRows(testRows(3))

	_, err := s.GetHyperIndex(-1, 2)
	assert.True(t, errors.Is(err, ErrInvalidIndex))

	_, err = s.GetHyperIndex(3, 2)
	assert.True(t, errors.Is(err, ErrInvalidIndex))

	_, err = s.GetHyperIndex(0, 0)
	assert.True(t, errors.Is(err, ErrInvalidPage))
}
