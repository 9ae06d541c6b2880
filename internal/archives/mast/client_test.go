package mast

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
)

func decodeInvoke(t *testing.T, r *http.Request) mashupRequest {
	t.Helper()
	require.NoError(t, r.ParseForm())
	var req mashupRequest
	require.NoError(t, json.Unmarshal([]byte(r.FormValue("request")), &req))
	return req
}

func TestQueryObject(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v0/invoke", r.URL.Path)
		req := decodeInvoke(t, r)
		calls++

		switch req.Service {
		case "Mast.Name.Lookup":
			assert.Equal(t, "M31", req.Params["input"])
			w.Write([]byte(`{"resolvedCoordinate":[{"ra":10.684708,"decl":41.268750}]}`))
		case "Mast.Caom.Cone":
			assert.InDelta(t, 10.684708, req.Params["ra"], 1e-6)
			assert.InDelta(t, 41.268750, req.Params["dec"], 1e-6)
			w.Write([]byte(`{"status":"COMPLETE","fields":[{"name":"obs_id"},{"name":"target_name"}],` +
				`"data":[{"obs_id":"obs-1","target_name":"M31"},{"obs_id":"obs-2","target_name":null}]}`))
		default:
			t.Fatalf("unexpected service %q", req.Service)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "", t.TempDir(), time.Second)
	table, err := c.QueryObject(context.Background(), "M31")
	require.NoError(t, err)
	require.Equal(t, 2, calls)

	assert.Equal(t, []string{"obs_id", "target_name"}, table.Columns)
	require.Equal(t, 2, table.NumRows())
	assert.Equal(t, []string{"obs-1", "M31"}, table.Rows[0])
	assert.Equal(t, []string{"obs-2", ""}, table.Rows[1])
}

func TestQueryObjectUnresolved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resolvedCoordinate":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", t.TempDir(), time.Second)
	table, err := c.QueryObject(context.Background(), "no such object")
	assert.Nil(t, table)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQueryObjectRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ERROR","msg":"service unavailable for maintenance"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", t.TempDir(), time.Second)
	_, err := c.QueryObject(context.Background(), "M31")
	require.ErrorIs(t, err, domain.ErrRemoteQuery)
	assert.Contains(t, err.Error(), "maintenance")
}

func TestTokenForwarded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"resolvedCoordinate":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "secret-token", t.TempDir(), time.Second)
	c.QueryObject(context.Background(), "M31")
}

func TestDownloadProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v0.1/Download/file", r.URL.Path)
		uri := r.URL.Query().Get("uri")
		if uri == "mast:HST/product/bad.fits" {
			http.Error(w, "gone", http.StatusNotFound)
			return
		}
		w.Write([]byte("FITS-bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	c := New(srv.URL, "", dir, time.Second)

	products := &domain.Table{
		Columns: []string{"obs_id", "dataURI"},
		Rows: [][]string{
			{"obs-1", "mast:HST/product/good.fits"},
			{"obs-2", "mast:HST/product/bad.fits"},
		},
	}

	manifest, err := c.DownloadProducts(context.Background(), products)
	require.NoError(t, err)
	require.Equal(t, 2, manifest.NumRows())

	assert.Equal(t, []string{"uri", "local_path", "status"}, manifest.Columns)
	assert.Equal(t, "COMPLETE", manifest.Rows[0][2])
	assert.Contains(t, manifest.Rows[1][2], "ERROR")

	data, err := os.ReadFile(filepath.Join(dir, "good.fits"))
	require.NoError(t, err)
	assert.Equal(t, "FITS-bytes", string(data))
}

func TestDownloadProductsRaggedRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("FITS-bytes"))
	}))
	defer srv.Close()

	c := New(srv.URL, "", t.TempDir(), time.Second)

	// Rows shorter than the dataURI column, as a ragged CSV can produce.
	products := &domain.Table{
		Columns: []string{"obsid", "name", "dataURI"},
		Rows: [][]string{
			{"2"},
			{"3", "m31"},
			{"4", "m51", ""},
			{"5", "m33", "mast:HST/product/ok.fits"},
		},
	}

	manifest, err := c.DownloadProducts(context.Background(), products)
	require.NoError(t, err)
	require.Equal(t, 4, manifest.NumRows())

	for i := 0; i < 3; i++ {
		assert.Contains(t, manifest.Rows[i][2], "ERROR")
		assert.Contains(t, manifest.Rows[i][2], "dataURI")
	}
	assert.Equal(t, "COMPLETE", manifest.Rows[3][2])
}

func TestDownloadProductsUnwritableFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("FITS-bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	// Occupy the target filename with a directory so the create fails.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "blocked.fits"), 0o700))

	c := New(srv.URL, "", dir, time.Second)
	products := &domain.Table{
		Columns: []string{"dataURI"},
		Rows:    [][]string{{"mast:HST/product/blocked.fits"}},
	}

	manifest, err := c.DownloadProducts(context.Background(), products)
	require.NoError(t, err)
	require.Equal(t, 1, manifest.NumRows())
	assert.Contains(t, manifest.Rows[0][2], "ERROR")
}

func TestDownloadProductsMissingColumn(t *testing.T) {
	c := New("http://unused.invalid", "", t.TempDir(), time.Second)
	products := &domain.Table{Columns: []string{"obs_id"}, Rows: [][]string{{"obs-1"}}}

	manifest, err := c.DownloadProducts(context.Background(), products)
	assert.Nil(t, manifest)
	assert.ErrorIs(t, err, domain.ErrRemoteQuery)
}
