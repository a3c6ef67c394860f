package repos_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"luxeshop/internal/repos"
)

type doc struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
	CreatedAt string  `json:"createdAt"`
}

func memDocs(t *testing.T) *repos.DocStore {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return repos.NewDocStore(db)
}

func TestDocStoreCreateAndGet(t *testing.T) {
	docs := memDocs(t)

	id, err := docs.Create("products", "", doc{Name: "Lamp", Price: 30})
	require.NoError(t, err)
	require.NotEmpty(t, id) // id assigned when absent

	var got doc
	found, err := docs.GetByID("products", id, &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Lamp", got.Name)

	found, err = docs.GetByID("products", "missing", &got)
	require.NoError(t, err)
	require.False(t, found)
}

func TestDocStoreCollectionsAreIsolated(t *testing.T) {
	docs := memDocs(t)

	_, err := docs.Create("products", "p1", doc{Name: "Lamp"})
	require.NoError(t, err)

	var got doc
	found, err := docs.GetByID("orders", "p1", &got)
	require.NoError(t, err)
	require.False(t, found)
}

func TestDocStoreListAllOrdering(t *testing.T) {
	docs := memDocs(t)
	_, err := docs.Create("products", "a", doc{Name: "B-item", CreatedAt: "2026-02-01"})
	require.NoError(t, err)
	_, err = docs.Create("products", "b", doc{Name: "A-item", CreatedAt: "2026-01-01"})
	require.NoError(t, err)

	raw, err := docs.ListAll("products", "createdAt", false)
	require.NoError(t, err)
	list, err := repos.DecodeAll[doc](raw)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "A-item", list[0].Name)

	raw, err = docs.ListAll("products", "createdAt", true)
	require.NoError(t, err)
	list, _ = repos.DecodeAll[doc](raw)
	require.Equal(t, "B-item", list[0].Name)

	_, err = docs.ListAll("products", "bad field;", false)
	require.Error(t, err)
}

func TestDocStoreListWhere(t *testing.T) {
	docs := memDocs(t)
	_, _ = docs.Create("products", "a", doc{Name: "Scarf", Category: "fashion"})
	_, _ = docs.Create("products", "b", doc{Name: "Lamp", Category: "home"})

	raw, err := docs.ListWhere("products", "category", "fashion", "createdAt", false)
	require.NoError(t, err)
	list, err := repos.DecodeAll[doc](raw)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Scarf", list[0].Name)

	_, err = docs.ListWhere("products", "bad;field", "x", "", false)
	require.Error(t, err)
}

func TestDocStoreUpdateMergesPatch(t *testing.T) {
	docs := memDocs(t)
	_, _ = docs.Create("products", "a", doc{Name: "Lamp", Price: 30, Category: "home"})

	ok, err := docs.Update("products", "a", map[string]any{"price": 25.5})
	require.NoError(t, err)
	require.True(t, ok)

	var got doc
	_, _ = docs.GetByID("products", "a", &got)
	require.Equal(t, 25.5, got.Price)
	require.Equal(t, "Lamp", got.Name) // untouched keys survive

	ok, err = docs.Update("products", "missing", map[string]any{"price": 1})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDocStoreDelete(t *testing.T) {
	docs := memDocs(t)
	_, _ = docs.Create("products", "a", doc{Name: "Lamp"})

	ok, err := docs.Delete("products", "a")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = docs.Delete("products", "a")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDocStorePutUpserts(t *testing.T) {
	docs := memDocs(t)

	require.NoError(t, docs.Put("products", "a", doc{Name: "v1"}))
	require.NoError(t, docs.Put("products", "a", doc{Name: "v2"}))

	var got doc
	found, err := docs.GetByID("products", "a", &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "v2", got.Name)
}
