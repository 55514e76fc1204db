package backend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestShell() (*shellService, *[]string) {
	opened := &[]string{}
	s := NewShellService(context.Background())
	s.openURL = func(ctx context.Context, url string) {
		*opened = append(*opened, url)
	}
	return s, opened
}

func TestOpenExternal_OpensValidURL(t *testing.T) {
	s, opened := newTestShell()

	assert.NoError(t, s.OpenExternal(context.Background(), "https://hydra.example.com/en/privacy-policy"))
	assert.Equal(t, []string{"https://hydra.example.com/en/privacy-policy"}, *opened)
}

func TestOpenExternal_RejectsInvalidURLs(t *testing.T) {
	s, opened := newTestShell()

	assert.ErrorIs(t, s.OpenExternal(context.Background(), ""), ErrNoHomepage)
	assert.Error(t, s.OpenExternal(context.Background(), "/en/terms-and-conditions"))
	assert.Error(t, s.OpenExternal(context.Background(), "file:///etc/passwd"))
	assert.Empty(t, *opened)
}

func TestOpenExternal_CanceledContext(t *testing.T) {
	s, opened := newTestShell()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.OpenExternal(ctx, "https://hydra.example.com"), context.Canceled)
	assert.Empty(t, *opened)
}
