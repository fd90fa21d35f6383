package gridmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHost is a minimal Host for registry tests.
type fakeHost struct {
	id string
}

func (h *fakeHost) TranslatorID() string { return h.id }

func (h *fakeHost) RunHook(name string, index int) int { return index }

func TestRegistry_GetReturnsSingletonPerIdentity(t *testing.T) {
	r := NewRegistry(WithAxisCounts(3, 3))
	host := &fakeHost{id: "grid-1"}

	first := r.Get(host)
	second := r.Get(host)
	assert.Same(t, first, second)
	assert.Equal(t, 3, first.Rows().Len())
	assert.Equal(t, 3, first.Cols().Len())
}

func TestRegistry_DistinctIdentitiesGetDistinctTranslators(t *testing.T) {
	r := NewRegistry()
	a := r.Get(&fakeHost{id: "a"})
	b := r.Get(&fakeHost{id: "b"})
	assert.NotSame(t, a, b)
}

func TestRegistry_RegisterThenLookup(t *testing.T) {
	r := NewRegistry()
	host := &fakeHost{id: "grid-1"}
	r.Register("custom-key", host)

	tr, err := r.Lookup("custom-key")
	require.NoError(t, err)
	assert.NotNil(t, tr)

	// Lookup caches the translator it created.
	again, err := r.Lookup("custom-key")
	require.NoError(t, err)
	assert.Same(t, tr, again)
}

func TestRegistry_LookupUnregisteredFails(t *testing.T) {
	r := NewRegistry()
	_, err := r.Lookup("never-seen")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestRegistry_RemoveTearsDownAssociation(t *testing.T) {
	r := NewRegistry()
	host := &fakeHost{id: "grid-1"}
	first := r.Get(host)

	r.Remove("grid-1")
	_, err := r.Lookup("grid-1")
	assert.ErrorIs(t, err, ErrNotRegistered)

	// A later Get starts fresh.
	second := r.Get(host)
	assert.NotSame(t, first, second)
}

func TestRegistry_GetAttachesHostHooks(t *testing.T) {
	r := NewRegistry(WithAxisCounts(5, 5))
	host := &offsetHost{id: "grid-1", offset: 10}

	tr := r.Get(host)
	assert.Equal(t, 12, tr.ToPhysicalRow(2))
}

// offsetHost adjusts modified rows by a fixed offset.
type offsetHost struct {
	id     string
	offset int
}

func (h *offsetHost) TranslatorID() string { return h.id }

func (h *offsetHost) RunHook(name string, index int) int {
	if name == HookModifyRow {
		return index + h.offset
	}
	return index
}

func TestDefaultRegistry_PackageLevelFunctions(t *testing.T) {
	host := &fakeHost{id: "pkg-level-host"}
	defer Remove("pkg-level-host")

	tr := Get(host)
	found, err := Lookup("pkg-level-host")
	require.NoError(t, err)
	assert.Same(t, tr, found)

	Register("alias", host)
	defer Remove("alias")
	aliased, err := Lookup("alias")
	require.NoError(t, err)
	assert.NotNil(t, aliased)
}
