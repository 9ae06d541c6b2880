package ned

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
)

func TestQueryObject(t *testing.T) {
	var adql string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		adql = r.PostForm.Get("QUERY")
		w.Write([]byte("prefname,ra,dec,z\nNGC 5128,201.365,-43.019,0.001825\n"))
	}))
	defer srv.Close()

	table, err := New(srv.URL, 0).QueryObject(context.Background(), "NGC 5128")

	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM objdir WHERE prefname = 'NGC 5128'", adql)
	assert.Equal(t, 1, table.NumRows())
}

func TestQueryObject_RemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "query error", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := New(srv.URL, 0).QueryObject(context.Background(), "NGC 5128")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemoteQuery)
}
