package memory

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/clients/pkg/types"
)

// fakeClient builds a client with a fresh ID from repo and generated attributes.
func fakeClient(t *testing.T, repo types.ClientRepository) types.Client {
	t.Helper()
	return types.NewClient(repo.NextIdentity(), gofakeit.Name(), gofakeit.City())
}

func TestLimitedRepositoryRoundTrip(t *testing.T) {
	repo := NewLimitedRepository(10)
	c := fakeClient(t, repo)

	repo.Save(c)

	got, err := repo.ByID(c.ID())
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestLimitedRepositoryNotFound(t *testing.T) {
	repo := NewLimitedRepository(10)
	repo.Save(fakeClient(t, repo))

	_, err := repo.ByID(uuid.New())
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.EqualError(t, err, "No client found for given ID")
}

func TestLimitedRepositoryNextIdentityUnique(t *testing.T) {
	repo := NewLimitedRepository(1)
	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 1000; i++ {
		id := repo.NextIdentity()
		assert.False(t, seen[id], "duplicate identity %s", id)
		seen[id] = true
	}
}

func TestLimitedRepositoryLaggedEviction(t *testing.T) {
	repo := NewLimitedRepository(2)
	a := fakeClient(t, repo)
	b := fakeClient(t, repo)
	c := fakeClient(t, repo)
	d := fakeClient(t, repo)

	steps := []struct {
		save types.Client
		want []types.Client
	}{
		{save: a, want: []types.Client{a}},
		{save: b, want: []types.Client{a, b}},
		{save: c, want: []types.Client{a, b, c}},
		{save: d, want: []types.Client{b, c, d}},
	}

	for i, step := range steps {
		repo.Save(step.save)

		want := make([]uuid.UUID, len(step.want))
		for j, w := range step.want {
			want[j] = w.ID()
		}
		assert.Equal(t, want, repo.Keys(), "after insert %d", i+1)
	}

	_, err := repo.ByID(a.ID())
	assert.ErrorIs(t, err, types.ErrNotFound)

	got, err := repo.ByID(b.ID())
	require.NoError(t, err)
	assert.Equal(t, b, got)
	assert.Equal(t, uint64(1), repo.Evictions())
}

func TestLimitedRepositoryLaggedSize(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		inserts  int
		wantLen  int
	}{
		{name: "below capacity", capacity: 3, inserts: 2, wantLen: 2},
		{name: "at capacity", capacity: 3, inserts: 3, wantLen: 3},
		{name: "one over capacity", capacity: 3, inserts: 4, wantLen: 4},
		{name: "two over capacity", capacity: 3, inserts: 5, wantLen: 4},
		{name: "many over capacity", capacity: 3, inserts: 50, wantLen: 4},
		{name: "zero capacity single insert", capacity: 0, inserts: 1, wantLen: 1},
		{name: "zero capacity two inserts", capacity: 0, inserts: 2, wantLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewLimitedRepository(tt.capacity)
			saved := make([]types.Client, tt.inserts)
			for i := range saved {
				saved[i] = fakeClient(t, repo)
				repo.Save(saved[i])
			}

			assert.Equal(t, tt.wantLen, repo.Len())

			// The most recent wantLen clients survive; everything older is gone.
			cut := tt.inserts - tt.wantLen
			for i, c := range saved {
				_, err := repo.ByID(c.ID())
				if i < cut {
					assert.ErrorIs(t, err, types.ErrNotFound, "client %d should be evicted", i)
				} else {
					assert.NoError(t, err, "client %d should survive", i)
				}
			}
		})
	}
}

func TestLimitedRepositoryStrictEviction(t *testing.T) {
	repo := NewLimitedRepository(2, WithStrictEviction())
	a := fakeClient(t, repo)
	b := fakeClient(t, repo)
	c := fakeClient(t, repo)

	repo.Save(a)
	repo.Save(b)
	repo.Save(c)

	assert.Equal(t, []uuid.UUID{b.ID(), c.ID()}, repo.Keys())
	_, err := repo.ByID(a.ID())
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestLimitedRepositoryStrictZeroCapacity(t *testing.T) {
	repo := NewLimitedRepository(0, WithStrictEviction())
	c := fakeClient(t, repo)

	repo.Save(c)

	assert.Equal(t, 0, repo.Len())
	_, err := repo.ByID(c.ID())
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestLimitedRepositoryOverwriteKeepsPosition(t *testing.T) {
	repo := NewLimitedRepository(2)
	a := fakeClient(t, repo)
	b := fakeClient(t, repo)
	repo.Save(a)
	repo.Save(b)

	edited := a
	edited.Edit("Renamed", "Elsewhere")
	repo.Save(edited)

	assert.Equal(t, []uuid.UUID{a.ID(), b.ID()}, repo.Keys())
	got, err := repo.ByID(a.ID())
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name())
	assert.Equal(t, "Elsewhere", got.Location())
}

func TestLimitedRepositoryOverwriteStillChecksSize(t *testing.T) {
	repo := NewLimitedRepository(1)
	a := fakeClient(t, repo)
	b := fakeClient(t, repo)
	repo.Save(a)
	repo.Save(b) // size 2, over capacity

	repo.Save(b) // pre-insert check evicts a, then b is replaced in place

	assert.Equal(t, []uuid.UUID{b.ID()}, repo.Keys())
}

func TestLimitedRepositoryReturnsCopies(t *testing.T) {
	repo := NewLimitedRepository(4)
	c := fakeClient(t, repo)
	repo.Save(c)

	got, err := repo.ByID(c.ID())
	require.NoError(t, err)
	got.Edit("Mutated", "Nowhere")

	again, err := repo.ByID(c.ID())
	require.NoError(t, err)
	assert.Equal(t, c, again)
}

func TestLimitedRepositoryEvictHook(t *testing.T) {
	var evicted []types.Client
	repo := NewLimitedRepository(1, WithEvictHook(func(c types.Client) {
		evicted = append(evicted, c)
	}))
	a := fakeClient(t, repo)
	b := fakeClient(t, repo)
	c := fakeClient(t, repo)

	repo.Save(a)
	repo.Save(b)
	repo.Save(c)

	assert.Equal(t, []types.Client{a}, evicted)
	assert.Equal(t, uint64(1), repo.Evictions())
}

func TestNewLimitedRepositoryNegativeCapacity(t *testing.T) {
	repo := NewLimitedRepository(-5)
	assert.Equal(t, 0, repo.Capacity())
}
