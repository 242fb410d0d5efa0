package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "promptgen.dev/pkg/promptgen/internal/adapter/mocks"
	"promptgen.dev/pkg/promptgen/internal/domain"
	m "promptgen.dev/pkg/promptgen/internal/model"
)

var resolverConfig = domain.ResolverConfig{
	SourceExtensions:   []string{".java"},
	CompiledExtensions: []string{".class"},
}

func sourceHandle(id, name string) m.FileHandle {
	return m.FileHandle{Identity: id, Name: name, StoragePath: id, HasNamespace: true}
}

func TestResolver_ClassPrefersExactNamespace(t *testing.T) {
	ctx := context.Background()
	index := adaptermocks.NewMockCandidateIndex(t)

	other := sourceHandle("/p/src/org/other/Bar.java", "Bar.java")
	wanted := sourceHandle("/p/src/com/foo/Bar.java", "Bar.java")

	index.EXPECT().FindByName(mock.Anything, "Bar.java").Return([]m.FileHandle{other, wanted}, nil)
	index.EXPECT().ReadNamespace(mock.Anything, other).Return("org.other", nil)
	index.EXPECT().ReadNamespace(mock.Anything, wanted).Return("com.foo", nil)
	index.EXPECT().ReadText(mock.Anything, wanted).Return("package com.foo;", nil)

	r := domain.NewResolver(index, nil, resolverConfig)

	got, err := r.Resolve(ctx, "classpath:com.foo.Bar")
	require.NoError(t, err)
	assert.Equal(t, wanted.Identity, got.Identity)
	assert.Equal(t, wanted.Identity, got.DisplayName)
	assert.Equal(t, "package com.foo;", got.Content)
	assert.Equal(t, "classpath:com.foo.Bar", got.Reference)
}

func TestResolver_ClassFallsBackToAnyName(t *testing.T) {
	ctx := context.Background()
	index := adaptermocks.NewMockCandidateIndex(t)

	plain := sourceHandle("/repo/Bar.java", "Bar.java")
	preferred := sourceHandle("/cache/loom/mappings/Bar.java", "Bar.java")

	index.EXPECT().FindByName(mock.Anything, "Bar.java").Return([]m.FileHandle{plain, preferred}, nil)
	index.EXPECT().ReadNamespace(mock.Anything, mock.Anything).Return("elsewhere", nil)
	index.EXPECT().ReadText(mock.Anything, preferred).Return("class Bar {}", nil)

	r := domain.NewResolver(index, domain.NewMarkerRanker(), resolverConfig)

	got, err := r.Resolve(ctx, "classpath:com.foo.Bar")
	require.NoError(t, err)
	assert.Equal(t, preferred.Identity, got.Identity)
}

func TestResolver_ClassNotFound(t *testing.T) {
	ctx := context.Background()
	index := adaptermocks.NewMockCandidateIndex(t)

	index.EXPECT().FindByName(mock.Anything, "Missing.java").Return(nil, nil)
	index.EXPECT().LookupQualified(mock.Anything, "x.y", "Missing.java").Return(m.FileHandle{}, false)
	index.EXPECT().LookupQualified(mock.Anything, "x.y", "Missing.class").Return(m.FileHandle{}, false)

	r := domain.NewResolver(index, nil, resolverConfig)

	_, err := r.Resolve(ctx, "classpath:x.y.Missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, errors.Is(err, domain.ErrIOFailure))

	var resolveErr *domain.ResolveError
	require.ErrorAs(t, err, &resolveErr)
	assert.Equal(t, "classpath:x.y.Missing", resolveErr.Reference)
}

func TestResolver_IndexFailureIsIOFailure(t *testing.T) {
	ctx := context.Background()
	index := adaptermocks.NewMockCandidateIndex(t)

	cause := errors.New("disk gone")
	index.EXPECT().FindByName(mock.Anything, "Bar.java").Return(nil, cause)

	r := domain.NewResolver(index, nil, resolverConfig)

	_, err := r.Resolve(ctx, "classpath:com.foo.Bar")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, err, domain.ErrIOFailure)
	assert.ErrorIs(t, err, cause)
}

func TestResolver_ReadFailureIsIOFailure(t *testing.T) {
	ctx := context.Background()
	index := adaptermocks.NewMockCandidateIndex(t)

	h := sourceHandle("/p/A.java", "A.java")
	index.EXPECT().Lookup(mock.Anything, "/p/A.java").Return(h, true)
	index.EXPECT().IsCompiledArtifact(h).Return(false)
	index.EXPECT().NavigationTarget(mock.Anything, h).Return(m.FileHandle{}, false)
	index.EXPECT().ReadText(mock.Anything, h).Return("", errors.New("permission denied"))

	r := domain.NewResolver(index, nil, resolverConfig)

	_, err := r.Resolve(ctx, "/p/A.java")
	assert.ErrorIs(t, err, domain.ErrIOFailure)
}

func TestResolver_PathSubstitutesCompiledClass(t *testing.T) {
	ctx := context.Background()
	index := adaptermocks.NewMockCandidateIndex(t)

	compiled := m.FileHandle{
		Identity:     "/p/build/a/B.class",
		Name:         "B.class",
		StoragePath:  "/p/build/a/B.class",
		Compiled:     true,
		HasNamespace: true,
	}
	wrongPackage := sourceHandle("/p/src/z/B.java", "B.java")
	source := sourceHandle("/p/src/a/B.java", "B.java")

	index.EXPECT().Lookup(mock.Anything, compiled.Identity).Return(compiled, true)
	index.EXPECT().IsCompiledArtifact(compiled).Return(true)
	index.EXPECT().NavigationTarget(mock.Anything, compiled).Return(m.FileHandle{}, false)
	index.EXPECT().FindByName(mock.Anything, "B.java").Return([]m.FileHandle{wrongPackage, source}, nil)
	index.EXPECT().ReadNamespace(mock.Anything, compiled).Return("a", nil)
	index.EXPECT().ReadNamespace(mock.Anything, wrongPackage).Return("z", nil)
	index.EXPECT().ReadNamespace(mock.Anything, source).Return("a", nil)
	index.EXPECT().ReadText(mock.Anything, source).Return("package a;", nil)

	r := domain.NewResolver(index, nil, resolverConfig)

	got, err := r.Resolve(ctx, compiled.Identity)
	require.NoError(t, err)
	assert.Equal(t, source.Identity, got.Identity)
	assert.Equal(t, compiled.Identity, got.Reference, "the original reference is kept for persistence")
}

func TestResolver_CompiledWithoutSourceKeepsArtifact(t *testing.T) {
	ctx := context.Background()
	index := adaptermocks.NewMockCandidateIndex(t)

	compiled := m.FileHandle{Identity: "/p/build/Gen.class", Name: "Gen.class", Compiled: true}

	index.EXPECT().Lookup(mock.Anything, compiled.Identity).Return(compiled, true)
	index.EXPECT().IsCompiledArtifact(compiled).Return(true)
	index.EXPECT().NavigationTarget(mock.Anything, compiled).Return(m.FileHandle{}, false)
	index.EXPECT().FindByName(mock.Anything, "Gen.java").Return(nil, nil)
	index.EXPECT().ReadText(mock.Anything, compiled).Return("// compiled artifact Gen: source not available", nil)

	r := domain.NewResolver(index, nil, resolverConfig)

	got, err := r.Resolve(ctx, compiled.Identity)
	require.NoError(t, err)
	assert.Equal(t, compiled.Identity, got.Identity)
}

func TestResolver_MissingPathSearchesByName(t *testing.T) {
	ctx := context.Background()
	index := adaptermocks.NewMockCandidateIndex(t)

	moved := sourceHandle("/p/new/place/Foo.java", "Foo.java")

	index.EXPECT().Lookup(mock.Anything, "/old/place/Foo.java").Return(m.FileHandle{}, false)
	index.EXPECT().FindByName(mock.Anything, "Foo.java").Return([]m.FileHandle{moved}, nil)
	index.EXPECT().IsCompiledArtifact(moved).Return(false)
	index.EXPECT().NavigationTarget(mock.Anything, moved).Return(m.FileHandle{}, false)
	index.EXPECT().ReadText(mock.Anything, moved).Return("class Foo {}", nil)

	r := domain.NewResolver(index, nil, resolverConfig)

	got, err := r.Resolve(ctx, "/old/place/Foo.java")
	require.NoError(t, err)
	assert.Equal(t, moved.Identity, got.Identity)
}

func TestResolver_ArchiveEntryFollowsNavigationTarget(t *testing.T) {
	ctx := context.Background()
	index := adaptermocks.NewMockCandidateIndex(t)

	entry := m.FileHandle{Identity: "/lib/x.jar!/a/B.class", Name: "B.class", Archive: "/lib/x.jar", Inner: "a/B.class", Compiled: true}
	source := m.FileHandle{Identity: "/lib/x-sources.jar!/a/B.java", Name: "B.java", Archive: "/lib/x-sources.jar", Inner: "a/B.java"}

	index.EXPECT().OpenArchiveEntry(mock.Anything, "/lib/x.jar", "a/B.class").Return(entry, nil)
	index.EXPECT().IsCompiledArtifact(entry).Return(true)
	index.EXPECT().NavigationTarget(mock.Anything, entry).Return(source, true)
	index.EXPECT().FindByName(mock.Anything, "B.java").Return(nil, nil)
	index.EXPECT().ReadText(mock.Anything, source).Return("package a;", nil)

	r := domain.NewResolver(index, nil, resolverConfig)

	got, err := r.Resolve(ctx, "/lib/x.jar!/a/B.class")
	require.NoError(t, err)
	assert.Equal(t, source.Identity, got.Identity)
}

func TestResolver_UnreadableArchiveFallsBackToName(t *testing.T) {
	ctx := context.Background()
	index := adaptermocks.NewMockCandidateIndex(t)

	found := sourceHandle("/p/src/a/B.java", "B.java")

	index.EXPECT().OpenArchiveEntry(mock.Anything, "/lib/broken.jar", "a/B.java").Return(m.FileHandle{}, errors.New("zip: not a valid zip file"))
	index.EXPECT().FindByName(mock.Anything, "B.java").Return([]m.FileHandle{found}, nil)
	index.EXPECT().IsCompiledArtifact(found).Return(false)
	index.EXPECT().NavigationTarget(mock.Anything, found).Return(m.FileHandle{}, false)
	index.EXPECT().ReadText(mock.Anything, found).Return("package a;", nil)

	r := domain.NewResolver(index, nil, resolverConfig)

	got, err := r.Resolve(ctx, "/lib/broken.jar!/a/B.java")
	require.NoError(t, err)
	assert.Equal(t, found.Identity, got.Identity)
}

func TestResolver_UnreadableArchiveWithoutFallback(t *testing.T) {
	ctx := context.Background()
	index := adaptermocks.NewMockCandidateIndex(t)

	index.EXPECT().OpenArchiveEntry(mock.Anything, "/lib/broken.jar", "a/B.java").Return(m.FileHandle{}, errors.New("zip: not a valid zip file"))
	index.EXPECT().FindByName(mock.Anything, "B.java").Return(nil, nil)

	r := domain.NewResolver(index, nil, resolverConfig)

	_, err := r.Resolve(ctx, "/lib/broken.jar!/a/B.java")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, err, domain.ErrIOFailure)
}

func TestResolver_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := domain.NewResolver(adaptermocks.NewMockCandidateIndex(t), nil, resolverConfig)

	_, err := r.Resolve(ctx, "/p/A.java")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolver_ResolveReference(t *testing.T) {
	ctx := context.Background()
	index := adaptermocks.NewMockCandidateIndex(t)

	h := sourceHandle("/p/src/com/foo/Bar.java", "Bar.java")
	index.EXPECT().FindByName(mock.Anything, "Bar.java").Return([]m.FileHandle{h}, nil)
	index.EXPECT().ReadNamespace(mock.Anything, h).Return("com.foo", nil)
	index.EXPECT().ReadText(mock.Anything, h).Return("x", nil)

	r := domain.NewResolver(index, nil, resolverConfig)

	got, err := r.ResolveReference(ctx, m.SymbolicClassRef("com.foo.Bar"))
	require.NoError(t, err)
	assert.Equal(t, "classpath:com.foo.Bar", got.Reference)
}
