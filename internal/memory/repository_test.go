package memory

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/clients/pkg/types"
)

func TestRepositoryRoundTrip(t *testing.T) {
	repo := NewRepository()
	c := fakeClient(t, repo)

	repo.Save(c)

	got, err := repo.ByID(c.ID())
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestRepositoryNotFound(t *testing.T) {
	repo := NewRepository()

	_, err := repo.ByID(uuid.New())
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestRepositoryNeverEvicts(t *testing.T) {
	repo := NewRepository()
	saved := make([]types.Client, 200)
	for i := range saved {
		saved[i] = fakeClient(t, repo)
		repo.Save(saved[i])
	}

	assert.Equal(t, len(saved), repo.Len())
	for _, c := range saved {
		_, err := repo.ByID(c.ID())
		assert.NoError(t, err)
	}
}

func TestRepositoryOverwrite(t *testing.T) {
	repo := NewRepository()
	c := fakeClient(t, repo)
	repo.Save(c)

	c.Edit("Jiro", "Saitama")
	repo.Save(c)

	got, err := repo.ByID(c.ID())
	require.NoError(t, err)
	assert.Equal(t, "Jiro", got.Name())
	assert.Equal(t, 1, repo.Len())
}

func TestRepositoriesConcurrentAccess(t *testing.T) {
	repos := map[string]types.ClientRepository{
		"unbounded": NewRepository(),
		"bounded":   NewLimitedRepository(8),
	}

	for name, repo := range repos {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			for i := 0; i < 16; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for j := 0; j < 50; j++ {
						c := types.NewClient(repo.NextIdentity(), "Taro", "Tokyo")
						repo.Save(c)
						_, _ = repo.ByID(c.ID())
					}
				}()
			}
			wg.Wait()
		})
	}
}
