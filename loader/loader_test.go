package loader

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/erraggy/greem/gqlerrors"
	"github.com/erraggy/greem/internal/testutil"
	"github.com/erraggy/greem/sdl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Options(t *testing.T) {
	l, err := New(WithConcurrency(3), WithCacheSize(0), WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, 3, l.Concurrency())
	assert.Nil(t, l.cache)

	_, err = New(WithConcurrency(-1))
	assert.Error(t, err)
	_, err = New(WithCacheSize(-1))
	assert.Error(t, err)
	_, err = New(WithMaxFiles(-1))
	assert.Error(t, err)
	_, err = New(WithFileSystem(nil))
	assert.Error(t, err)
}

func TestLoad_OrderAndSkips(t *testing.T) {
	dir := testutil.WriteSchemaFiles(t, map[string]string{
		"1-query.graphql":  "type Query { a: Int }\nscalar Date",
		"2-broken.graphql": "type Query {",
		"3-user.graphql":   "type User { id: ID }\nextend type Query { b: Int }",
	})
	l, err := New(WithConcurrency(2))
	require.NoError(t, err)

	res, err := l.Load(context.Background(), []string{filepath.Join(dir, "*.graphql")})
	require.NoError(t, err)

	assert.Len(t, res.Files, 3)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "2-broken.graphql", filepath.Base(res.Skipped[0].Path))
	assert.Positive(t, res.Skipped[0].Line)
	assert.ErrorIs(t, res.Skipped[0], gqlerrors.ErrParse)

	require.Len(t, res.Items, 4)
	names := make([]string, len(res.Items))
	for i, it := range res.Items {
		names[i] = sdl.NameOf(it.Declaration)
	}
	assert.Equal(t, []string{"Query", "Date", "User", "Query"}, names)
	assert.Equal(t, "1-query.graphql", filepath.Base(res.Items[0].File))
	assert.Equal(t, "3-user.graphql", filepath.Base(res.Items[3].File))
	assert.IsType(t, &sdl.TypeExtension{}, res.Items[3].Declaration)
}

func TestLoadFiles_UnreadableFile(t *testing.T) {
	l, err := New()
	require.NoError(t, err)

	missing := filepath.Join(t.TempDir(), "missing.graphql")
	res, err := l.LoadFiles(context.Background(), []string{missing})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, missing, res.Skipped[0].Path)
	assert.Equal(t, "cannot read file", res.Skipped[0].Message)
}

func TestLoadFiles_MaxFiles(t *testing.T) {
	l, err := New(WithMaxFiles(1))
	require.NoError(t, err)

	_, err = l.LoadFiles(context.Background(), []string{"a.graphql", "b.graphql"})
	assert.ErrorIs(t, err, gqlerrors.ErrConfig)
}

func TestLoad_BadPattern(t *testing.T) {
	l, err := New()
	require.NoError(t, err)

	_, err = l.Load(context.Background(), []string{"[a-"})
	assert.ErrorIs(t, err, gqlerrors.ErrConfig)
}

func TestParse_CanceledContext(t *testing.T) {
	dir := testutil.WriteSchemaFiles(t, map[string]string{"a.graphql": "scalar A"})
	l, err := New()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = l.Parse(ctx, []string{filepath.Join(dir, "a.graphql")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParse_Empty(t *testing.T) {
	l, err := New()
	require.NoError(t, err)

	results, err := l.Parse(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NotNil(t, Collect(results))
	assert.Empty(t, Collect(results))
}

func TestParseSource_Cache(t *testing.T) {
	l, err := New(WithCacheSize(4))
	require.NoError(t, err)

	first, err := l.ParseSource("a.graphql", "type A { x: Int }")
	require.NoError(t, err)
	second, err := l.ParseSource("a.graphql", "type A { x: Int }")
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Same(t, first[0].(*sdl.TypeDeclaration).Definition, second[0].(*sdl.TypeDeclaration).Definition)

	other, err := l.ParseSource("b.graphql", "type A { x: Int }")
	require.NoError(t, err)
	assert.NotSame(t, first[0].(*sdl.TypeDeclaration).Definition, other[0].(*sdl.TypeDeclaration).Definition)
	assert.Equal(t, 2, l.cache.Len())
}

func TestParseSource_SyntaxError(t *testing.T) {
	l, err := New()
	require.NoError(t, err)

	_, err = l.ParseSource("bad.graphql", "type {")
	require.Error(t, err)
	var perr *gqlerrors.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "bad.graphql", perr.Path)
	assert.Equal(t, 1, perr.Line)
	assert.NotEmpty(t, perr.Message)
}

func TestCollect(t *testing.T) {
	a := testutil.ParseDeclarations(t, "a", "scalar A1\nscalar A2")
	b := testutil.ParseDeclarations(t, "b", "scalar B1")
	items := Collect([]FileResult{
		{Path: "a", Declarations: a},
		{Path: "skipped", Err: &gqlerrors.ParseError{Path: "skipped"}},
		{Path: "b", Declarations: b},
	})
	require.Len(t, items, 3)
	assert.Equal(t, []string{"a", "a", "b"}, []string{items[0].File, items[1].File, items[2].File})
	assert.Equal(t, "A2", sdl.NameOf(items[1].Declaration))
}

func TestContentHash(t *testing.T) {
	assert.Equal(t, contentHash("scalar A"), contentHash("scalar A"))
	assert.NotEqual(t, contentHash("scalar A"), contentHash("scalar B"))
}
