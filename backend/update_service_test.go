package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// テスト用のダイアログ
type fakePrompter struct {
	download bool
	prompted []*Release
	upToDate []string
}

func (p *fakePrompter) PromptDownload(ctx context.Context, current string, release *Release) (bool, error) {
	p.prompted = append(p.prompted, release)
	return p.download, nil
}

func (p *fakePrompter) NotifyUpToDate(ctx context.Context, current string) error {
	p.upToDate = append(p.upToDate, current)
	return nil
}

type updateTestHelper struct {
	service  *updateService
	prompter *fakePrompter
	shell    *fakeShell
	auth     string
}

func setupUpdateTest(t *testing.T, release Release, token string) *updateTestHelper {
	t.Helper()
	h := &updateTestHelper{prompter: &fakePrompter{}, shell: &fakeShell{}}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(release)
	}))
	t.Cleanup(server.Close)

	cfg := &Config{
		UpdateFeedURL: server.URL,
		UpdateToken:   token,
		Version:       "1.4.2",
	}
	h.service = NewUpdateService(context.Background(), cfg, h.prompter, h.shell, NewAppLogger(nil, true, ""))
	return h
}

func TestCheckForUpdates_NewerVersionOpensDownload(t *testing.T) {
	release := Release{Version: "v1.10.0", URL: "https://hydra.example.com/download"}
	h := setupUpdateTest(t, release, "")
	h.prompter.download = true

	require.NoError(t, h.service.CheckForUpdates(context.Background()))

	require.Len(t, h.prompter.prompted, 1)
	assert.Equal(t, "v1.10.0", h.prompter.prompted[0].Version)
	assert.Equal(t, []string{"https://hydra.example.com/download"}, h.shell.opened)
	assert.Empty(t, h.auth)
}

func TestCheckForUpdates_DeclinedDownload(t *testing.T) {
	h := setupUpdateTest(t, Release{Version: "2.0.0", URL: "https://hydra.example.com/download"}, "")

	require.NoError(t, h.service.CheckForUpdates(context.Background()))
	assert.Len(t, h.prompter.prompted, 1)
	assert.Empty(t, h.shell.opened)
}

func TestCheckForUpdates_UpToDate(t *testing.T) {
	h := setupUpdateTest(t, Release{Version: "1.4.2"}, "")

	require.NoError(t, h.service.CheckForUpdates(context.Background()))
	assert.Empty(t, h.prompter.prompted)
	assert.Equal(t, []string{"1.4.2"}, h.prompter.upToDate)
}

func TestCheckForUpdates_SendsBearerToken(t *testing.T) {
	h := setupUpdateTest(t, Release{Version: "1.0.0"}, "secret-token")

	require.NoError(t, h.service.CheckForUpdates(context.Background()))
	assert.Equal(t, "Bearer secret-token", h.auth)
}

func TestCheckForUpdates_WithoutFeed(t *testing.T) {
	service := NewUpdateService(context.Background(), &Config{}, &fakePrompter{}, &fakeShell{}, NewAppLogger(nil, true, ""))

	assert.ErrorIs(t, service.CheckForUpdates(context.Background()), ErrNoUpdateFeed)
}

func TestCheckForUpdates_FeedErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	prompter := &fakePrompter{}
	cfg := &Config{UpdateFeedURL: server.URL, Version: "1.0.0"}
	service := NewUpdateService(context.Background(), cfg, prompter, &fakeShell{}, NewAppLogger(nil, true, ""))

	err := service.CheckForUpdates(context.Background())
	assert.ErrorContains(t, err, "503")
	assert.Empty(t, prompter.prompted)
	assert.Empty(t, prompter.upToDate)
}

func TestCompareVersions(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"v1.2.0", "1.2", 0},
		{"1.10.0", "1.9.9", 1},
		{"1.2.3-beta.1", "1.2.3", 0},
		{"0.9", "1.0.0", -1},
		{"2", "1.99.99", 1},
		{"garbage", "0.0.0", 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, compareVersions(c.a, c.b), "%s vs %s", c.a, c.b)
	}
}
