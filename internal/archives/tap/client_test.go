package tap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
)

func TestSync(t *testing.T) {
	var gotForm map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"REQUEST": r.PostForm.Get("REQUEST"),
			"LANG":    r.PostForm.Get("LANG"),
			"FORMAT":  r.PostForm.Get("FORMAT"),
			"QUERY":   r.PostForm.Get("QUERY"),
		}
		w.Write([]byte("main_id,ra,dec\nM  31,10.684,41.268\n"))
	}))
	defer srv.Close()

	client := New(srv.URL, 0)
	table, err := client.Sync(context.Background(), "SELECT 1")

	require.NoError(t, err)
	assert.Equal(t, "doQuery", gotForm["REQUEST"])
	assert.Equal(t, "ADQL", gotForm["LANG"])
	assert.Equal(t, "csv", gotForm["FORMAT"])
	assert.Equal(t, "SELECT 1", gotForm["QUERY"])
	assert.Equal(t, 1, table.NumRows())
}

func TestSync_StatusClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "bad query", status: http.StatusBadRequest, want: domain.ErrRemoteQuery},
		{name: "unauthorised", status: http.StatusUnauthorized, want: domain.ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, want: domain.ErrUnauthorized},
		{name: "missing", status: http.StatusNotFound, want: domain.ErrNotFound},
		{name: "quota", status: http.StatusTooManyRequests, want: domain.ErrRateLimited},
		{name: "server down", status: http.StatusBadGateway, want: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "detail", tt.status)
			}))
			defer srv.Close()

			_, err := New(srv.URL, 0).Sync(context.Background(), "SELECT 1")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSync_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := New(srv.URL, 0).Sync(context.Background(), "SELECT 1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestQuoteLiteral(t *testing.T) {
	assert.Equal(t, "'M31'", QuoteLiteral("M31"))
	assert.Equal(t, "'Barnard''s Star'", QuoteLiteral("Barnard's Star"))
}
