package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaumene/nyaainfo/internal/config"
	"github.com/amaumene/nyaainfo/internal/errors"
	"github.com/amaumene/nyaainfo/internal/fakeapi"
	"github.com/amaumene/nyaainfo/internal/models"
)

func newTestNyaa(t *testing.T, api *fakeapi.Server, user, pass string) *Nyaa {
	t.Helper()
	srv := httptest.NewServer(api.Router())
	t.Cleanup(srv.Close)

	cfg := &config.Config{Host: srv.URL, Username: user, Password: pass}
	return NewNyaa(cfg, srv.Client(), nil)
}

func mustTarget(t *testing.T, raw string) models.QueryTarget {
	t.Helper()
	target, err := models.ParseTarget(raw)
	require.NoError(t, err)
	return target
}

func TestFetchInfo(t *testing.T) {
	api := fakeapi.New("user", "pass")
	api.AddTorrent(models.TorrentInfo{ID: 1234, Name: "[Group] Show - 01 [1080p].mkv"})

	client := newTestNyaa(t, api, "user", "pass")

	resp, err := client.FetchInfo(context.Background(), mustTarget(t, "1234"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Text(), `"name":"[Group] Show - 01 [1080p].mkv"`)
	assert.Equal(t, 1, api.Requests())
}

func TestFetchInfoReturnsErrorStatuses(t *testing.T) {
	api := fakeapi.New("user", "pass")
	api.SetRaw("5", http.StatusInternalServerError, "<html>500</html>")

	client := newTestNyaa(t, api, "user", "wrong")
	resp, err := client.FetchInfo(context.Background(), mustTarget(t, "5"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.JSONEq(t, `{"errors": ["Bad authorization"]}`, resp.Text())

	client = newTestNyaa(t, api, "user", "pass")
	resp, err = client.FetchInfo(context.Background(), mustTarget(t, "5"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "<html>500</html>", resp.Text())
}

func TestFetchInfoSendsBasicAuth(t *testing.T) {
	var gotUser, gotPass, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, _ = r.BasicAuth()
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	cfg := &config.Config{Host: srv.URL, Username: "alice", Password: "s3cret"}
	hash := "0123456789abcdef0123456789abcdef01234567"

	_, err := NewNyaa(cfg, nil, nil).FetchInfo(context.Background(), mustTarget(t, hash))
	require.NoError(t, err)
	assert.Equal(t, "alice", gotUser)
	assert.Equal(t, "s3cret", gotPass)
	assert.Equal(t, "/api/info/"+hash, gotPath)
}

func TestFetchInfoTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	host := srv.URL
	srv.Close()

	cfg := &config.Config{Host: host, Username: "u", Password: "p"}
	_, err := NewNyaa(cfg, nil, nil).FetchInfo(context.Background(), mustTarget(t, "1"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeTransport, errors.TypeOf(err))
}
