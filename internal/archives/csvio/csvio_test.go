package csvio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
)

func TestRead(t *testing.T) {
	in := "main_id,ra,dec\nM  31,10.684,41.268\nM  33,23.462,30.660\n"

	table, err := Read(strings.NewReader(in))

	require.NoError(t, err)
	assert.Equal(t, []string{"main_id", "ra", "dec"}, table.Columns)
	require.Equal(t, 2, table.NumRows())
	assert.Equal(t, []string{"M  31", "10.684", "41.268"}, table.Rows[0])
}

func TestRead_SkipsComments(t *testing.T) {
	in := "#Table1\nobjid,ra\n12345,180.1\n"

	table, err := Read(strings.NewReader(in))

	require.NoError(t, err)
	assert.Equal(t, []string{"objid", "ra"}, table.Columns)
	assert.Equal(t, 1, table.NumRows())
}

func TestRead_Empty(t *testing.T) {
	table, err := Read(strings.NewReader(""))

	require.NoError(t, err)
	assert.True(t, table.IsEmpty())
}

func TestWriteRoundTrip(t *testing.T) {
	in := &domain.Table{
		Columns: []string{"ra", "dec"},
		Rows:    [][]string{{"10.6", "41.2"}, {"23.4", "30.6"}},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, in))

	out, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, in.Columns, out.Columns)
	assert.Equal(t, in.Rows, out.Rows)
}
