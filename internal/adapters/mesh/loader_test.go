package mesh_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/preview/internal/adapters/assetcache"
	"go.trai.ch/preview/internal/adapters/mesh"
	"go.trai.ch/preview/internal/core/domain"
	"go.trai.ch/preview/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const triangle = `{
  "asset": {"version": "2.0"},
  "accessors": [
    {"componentType": 5126, "count": 3, "type": "VEC3", "min": [-1, 0, -2], "max": [1, 2, 2]},
    {"componentType": 5126, "count": 3, "type": "VEC3", "min": [0, -3, 0], "max": [4, 0, 1]}
  ],
  "meshes": [
    {"primitives": [{"attributes": {"POSITION": 0}}, {"attributes": {"POSITION": 1}}]},
    {"primitives": [{"attributes": {"NORMAL": 1}}]}
  ],
  "materials": [{"name": "steel"}]
}`

func serve(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	hits := new(atomic.Int32)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, hits
}

// fileServer serves one asset whose body can be replaced, with an ETag per revision.
type fileServer struct {
	*httptest.Server

	mu       sync.Mutex
	body     string
	revision int

	hits        atomic.Int32
	notModified atomic.Int32
}

func serveFile(t *testing.T, body string) *fileServer {
	t.Helper()
	fs := &fileServer{body: body, revision: 1}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.hits.Add(1)
		fs.mu.Lock()
		etag := `"` + strconv.Itoa(fs.revision) + `"`
		body := fs.body
		fs.mu.Unlock()

		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			fs.notModified.Add(1)
			w.WriteHeader(http.StatusNotModified)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *fileServer) replace(body string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.body = body
	fs.revision++
}

func TestDecode(t *testing.T) {
	asset, err := mesh.Decode([]byte(triangle))
	require.NoError(t, err)

	assert.Equal(t, 2, asset.Meshes)
	assert.Equal(t, 3, asset.Primitives)
	assert.Equal(t, 1, asset.Materials)
	assert.Equal(t, len(triangle), asset.Size)
	assert.Equal(t, math32.Vec3(-1, -3, -2), asset.Bounds.Min)
	assert.Equal(t, math32.Vec3(4, 2, 2), asset.Bounds.Max)
}

func TestDecode_Errors(t *testing.T) {
	_, err := mesh.Decode([]byte("not gltf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrAssetDecodeFailed.Error())

	_, err = mesh.Decode([]byte(`{"asset": {"version": "2.0"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrAssetEmpty.Error())
}

func TestLoader_Load(t *testing.T) {
	srv, hits := serve(t, http.StatusOK, triangle)
	url := srv.URL + "/view?filename=part.gltf&type=input"

	loader := mesh.NewLoader(0, nil, nil)
	asset, err := loader.Load(t.Context(), url)
	require.NoError(t, err)

	assert.Equal(t, url, asset.URL)
	assert.Equal(t, 2, asset.Meshes)
	assert.Equal(t, int32(1), hits.Load())
}

func TestLoader_RevalidatesCachedDownloads(t *testing.T) {
	srv := serveFile(t, triangle)
	url := srv.URL + "/view?filename=part.gltf&type=input"
	store := assetcache.NewStore(t.TempDir())

	loader := mesh.NewLoader(0, store, nil)
	first, err := loader.Load(t.Context(), url)
	require.NoError(t, err)
	second, err := loader.Load(t.Context(), url)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(2), srv.hits.Load())
	assert.Equal(t, int32(1), srv.notModified.Load())

	cached, err := store.Get(url)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, []byte(triangle), cached.Data)
	assert.Equal(t, `"1"`, cached.ETag)
}

func TestLoader_ChangedAssetReplacesCache(t *testing.T) {
	srv := serveFile(t, triangle)
	url := srv.URL + "/view?filename=scene.glb&subfolder=mixo3d_cache&type=output"
	dir := t.TempDir()

	first, err := mesh.NewLoader(0, assetcache.NewStore(dir), nil).Load(t.Context(), url)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Meshes)

	// The host re-executes the node and overwrites the same output file.
	srv.replace(single)

	second, err := mesh.NewLoader(0, assetcache.NewStore(dir), nil).Load(t.Context(), url)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Meshes)
	assert.Equal(t, int32(0), srv.notModified.Load())

	cached, err := assetcache.NewStore(dir).Get(url)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, []byte(single), cached.Data)
}

func TestLoader_SkipsCacheWithoutValidators(t *testing.T) {
	srv, hits := serve(t, http.StatusOK, triangle)
	url := srv.URL + "/view?filename=part.gltf&type=input"
	store := assetcache.NewStore(t.TempDir())

	loader := mesh.NewLoader(0, store, nil)
	_, err := loader.Load(t.Context(), url)
	require.NoError(t, err)
	_, err = loader.Load(t.Context(), url)
	require.NoError(t, err)

	assert.Equal(t, int32(2), hits.Load())
	cached, err := store.Get(url)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestLoader_DoesNotCacheUndecodable(t *testing.T) {
	srv := serveFile(t, "garbage")
	url := srv.URL + "/view?filename=part.glb&type=input"
	store := assetcache.NewStore(t.TempDir())

	_, err := mesh.NewLoader(0, store, nil).Load(t.Context(), url)
	require.Error(t, err)

	cached, err := store.Get(url)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestLoader_HTTPError(t *testing.T) {
	srv, _ := serve(t, http.StatusNotFound, "missing")

	_, err := mesh.NewLoader(0, nil, nil).Load(t.Context(), srv.URL+"/view?filename=x.glb&type=input")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrAssetFetchFailed.Error())
}

func TestLoader_CanceledContext(t *testing.T) {
	srv, hits := serve(t, http.StatusOK, triangle)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := mesh.NewLoader(0, nil, nil).Load(ctx, srv.URL+"/view?filename=x.glb&type=input")
	require.Error(t, err)
	assert.Equal(t, int32(0), hits.Load())
}

func TestLoader_CacheReadFailureFallsBackToFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := serveFile(t, triangle)
	url := srv.URL + "/view?filename=part.gltf&type=input"

	store := mocks.NewMockAssetStore(ctrl)
	store.EXPECT().Get(url).Return(nil, assert.AnError)
	store.EXPECT().Put(url, domain.CachedAsset{Data: []byte(triangle), ETag: `"1"`}).Return(nil)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	_, err := mesh.NewLoader(0, store, log).Load(t.Context(), url)
	require.NoError(t, err)
	assert.Equal(t, int32(1), srv.hits.Load())
}
