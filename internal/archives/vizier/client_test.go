package vizier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
)

func TestQueryRegion(t *testing.T) {
	var adql string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		adql = r.PostForm.Get("QUERY")
		w.Write([]byte("RAJ2000,DEJ2000,Gmag\n10.68,41.26,9.1\n"))
	}))
	defer srv.Close()

	client := New(srv.URL, 0, 50)
	center := domain.SkyCoord{RA: 10.684, Dec: 41.268}
	radius := domain.Angle{Value: 6, Unit: domain.Arcmin}

	table, err := client.QueryRegion(context.Background(), "I/345/gaia2", center, radius)

	require.NoError(t, err)
	assert.Equal(t, 1, table.NumRows())
	assert.Contains(t, adql, `TOP 50 * FROM "I/345/gaia2"`)
	assert.Contains(t, adql, "CIRCLE('ICRS', 10.684000, 41.268000, 0.100000)")
}

func TestNew_DefaultRowLimit(t *testing.T) {
	var adql string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		adql = r.PostForm.Get("QUERY")
		w.Write([]byte("RAJ2000\n"))
	}))
	defer srv.Close()

	_, err := New(srv.URL, 0, 0).QueryRegion(context.Background(), "I/345/gaia2",
		domain.SkyCoord{RA: 1, Dec: 1}, domain.Angle{Value: 1, Unit: domain.Arcmin})

	require.NoError(t, err)
	assert.Contains(t, adql, "TOP 10000 ")
}
