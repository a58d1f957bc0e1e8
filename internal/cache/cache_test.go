package cache

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrigin serves canned bodies and records which keys were requested.
type fakeOrigin struct {
	entries     map[string][]byte
	uncacheable map[string]bool
	down        bool
	requests    []string
}

func (o *fakeOrigin) Fetch(_ context.Context, key string) ([]byte, bool, error) {
	o.requests = append(o.requests, key)
	if o.down {
		return nil, false, errors.New("origin unreachable")
	}
	body, ok := o.entries[key]
	if !ok {
		return []byte("not found"), false, nil
	}
	return body, !o.uncacheable[key], nil
}

var shellManifest = []string{"/", "/index.html", "/assets/index.js"}

func shellOrigin() *fakeOrigin {
	return &fakeOrigin{entries: map[string][]byte{
		"/":                []byte("<html>shell</html>"),
		"/index.html":      []byte("<html>shell</html>"),
		"/assets/index.js": []byte("console.log('app')"),
		"/api/data":        []byte(`{"ok":true}`),
	}}
}

func TestInstallPrecachesManifest(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	layer := New(backend, shellOrigin(), "hymuslim-cache-v2", shellManifest, "/index.html")

	assert.Equal(t, StateUninstalled, layer.State())
	require.NoError(t, layer.Install(ctx))
	assert.Equal(t, StateWaiting, layer.State())

	for _, key := range shellManifest {
		_, ok, err := backend.Get(ctx, "hymuslim-cache-v2", key)
		require.NoError(t, err)
		assert.True(t, ok, "manifest entry %s not precached", key)
	}
}

func TestInstallIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	origin := shellOrigin()
	delete(origin.entries, "/assets/index.js")
	backend := NewMemoryBackend()
	layer := New(backend, origin, "hymuslim-cache-v2", shellManifest, "/index.html")

	require.Error(t, layer.Install(ctx))
	assert.Equal(t, StateUninstalled, layer.State())

	// A second attempt after the origin recovers succeeds.
	origin.entries["/assets/index.js"] = []byte("console.log('app')")
	require.NoError(t, layer.Install(ctx))
	assert.Equal(t, StateWaiting, layer.State())
}

func TestInstallRejectedOutsideUninstalled(t *testing.T) {
	ctx := context.Background()
	layer := New(NewMemoryBackend(), shellOrigin(), "hymuslim-cache-v2", shellManifest, "/index.html")

	require.NoError(t, layer.Install(ctx))
	assert.Error(t, layer.Install(ctx))
}

func TestActivatePurgesStaleGenerations(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	require.NoError(t, backend.Put(ctx, "hymuslim-cache-v1", "/index.html", []byte("old shell")))

	layer := New(backend, shellOrigin(), "hymuslim-cache-v2", shellManifest, "/index.html")
	require.NoError(t, layer.Install(ctx))
	require.NoError(t, layer.Activate(ctx))
	assert.Equal(t, StateActive, layer.State())

	names, err := backend.Generations(ctx)
	require.NoError(t, err)
	sort.Strings(names)
	assert.Equal(t, []string{"hymuslim-cache-v2"}, names)

	_, ok, err := backend.Get(ctx, "hymuslim-cache-v2", "/index.html")
	require.NoError(t, err)
	assert.True(t, ok, "current generation must survive activation")
}

func TestActivateRequiresInstall(t *testing.T) {
	layer := New(NewMemoryBackend(), shellOrigin(), "hymuslim-cache-v2", shellManifest, "/index.html")
	assert.Error(t, layer.Activate(context.Background()))
}

func TestFetchIsCacheFirst(t *testing.T) {
	ctx := context.Background()
	origin := shellOrigin()
	layer := New(NewMemoryBackend(), origin, "hymuslim-cache-v2", nil, "/index.html")

	body, err := layer.Fetch(ctx, "/api/data")
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))

	body, err = layer.Fetch(ctx, "/api/data")
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))
	assert.Equal(t, []string{"/api/data"}, origin.requests, "second fetch must not touch the origin")
}

func TestFetchDoesNotCacheNonOKResponses(t *testing.T) {
	ctx := context.Background()
	origin := shellOrigin()
	origin.uncacheable = map[string]bool{"/api/data": true}
	layer := New(NewMemoryBackend(), origin, "hymuslim-cache-v2", nil, "/index.html")

	_, err := layer.Fetch(ctx, "/api/data")
	require.NoError(t, err)
	_, err = layer.Fetch(ctx, "/api/data")
	require.NoError(t, err)
	assert.Len(t, origin.requests, 2, "uncacheable responses must be refetched")
}

func TestFetchServesShellWhenOriginDown(t *testing.T) {
	ctx := context.Background()
	origin := shellOrigin()
	layer := New(NewMemoryBackend(), origin, "hymuslim-cache-v2", shellManifest, "/index.html")
	require.NoError(t, layer.Install(ctx))

	origin.down = true
	body, err := layer.Fetch(ctx, "/some/route")
	require.NoError(t, err)
	assert.Equal(t, "<html>shell</html>", string(body))
}

func TestFetchErrorsWhenOriginDownAndNoShell(t *testing.T) {
	origin := shellOrigin()
	origin.down = true
	layer := New(NewMemoryBackend(), origin, "hymuslim-cache-v2", nil, "/index.html")

	_, err := layer.Fetch(context.Background(), "/some/route")
	assert.Error(t, err)
}

func TestFetchStoresACopy(t *testing.T) {
	ctx := context.Background()
	origin := shellOrigin()
	layer := New(NewMemoryBackend(), origin, "hymuslim-cache-v2", nil, "/index.html")

	body, err := layer.Fetch(ctx, "/api/data")
	require.NoError(t, err)
	body[0] = 'X'

	cached, ok := layer.Lookup(ctx, "/api/data")
	require.True(t, ok)
	assert.Equal(t, `{"ok":true}`, string(cached))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "uninstalled", StateUninstalled.String())
	assert.Equal(t, "installing", StateInstalling.String())
	assert.Equal(t, "waiting", StateWaiting.String())
	assert.Equal(t, "active", StateActive.String())
}
