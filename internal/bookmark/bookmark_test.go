package bookmark_test

import (
	"testing"

	"github.com/mariotti/bookmark/internal/bookmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_CreatesEntry(t *testing.T) {
	db := bookmark.New()

	bookmark.Add(db, "http://x", []string{"b", "a"})

	tags, ok := bookmark.Tags(db, "http://x")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, tags, "tags are stored sorted")
}

func TestAdd_IsIdempotent(t *testing.T) {
	db := bookmark.New()

	bookmark.Add(db, "http://x", []string{"a"})
	bookmark.Add(db, "http://x", []string{"a"})

	tags, _ := bookmark.Tags(db, "http://x")
	assert.Equal(t, []string{"a"}, tags)
}

func TestAdd_CommutesOverTagArgument(t *testing.T) {
	one := bookmark.New()
	bookmark.Add(one, "u", []string{"a"})
	bookmark.Add(one, "u", []string{"b"})

	two := bookmark.New()
	bookmark.Add(two, "u", []string{"a", "b"})

	oneTags, _ := bookmark.Tags(one, "u")
	twoTags, _ := bookmark.Tags(two, "u")
	assert.Equal(t, twoTags, oneTags)
}

func TestAdd_NeverRemovesExistingTags(t *testing.T) {
	db := bookmark.Database{"u": {"a"}}

	bookmark.Add(db, "u", []string{"b"})

	tags, _ := bookmark.Tags(db, "u")
	assert.Equal(t, []string{"a", "b"}, tags)
}

func TestAdd_IgnoresEmptyTags(t *testing.T) {
	db := bookmark.New()

	bookmark.Add(db, "u", []string{""})

	assert.Empty(t, db, "empty tags must not create an entry")
}

func TestRemove_DeletesExhaustedKey(t *testing.T) {
	db := bookmark.Database{"u": {"a"}}

	bookmark.Remove(db, "u", []string{"a"})

	_, ok := bookmark.Tags(db, "u")
	assert.False(t, ok, "key must be absent, not present with an empty set")
	assert.Empty(t, db)
}

func TestRemove_KeepsRemainingTags(t *testing.T) {
	db := bookmark.Database{"u": {"a", "b", "c"}}

	bookmark.Remove(db, "u", []string{"b"})

	tags, ok := bookmark.Tags(db, "u")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "c"}, tags)
}

func TestRemove_AbsentURLIsNoOp(t *testing.T) {
	db := bookmark.Database{"u": {"a"}}

	bookmark.Remove(db, "missing", []string{"a"})

	assert.Len(t, db, 1)
}

func TestDelete_RemovesEntry(t *testing.T) {
	db := bookmark.Database{"u": {"a"}, "v": {"b"}}

	bookmark.Delete(db, "u")

	assert.Equal(t, bookmark.Database{"v": {"b"}}, db)
}

func TestDelete_AbsentURLIsNoOp(t *testing.T) {
	db := bookmark.Database{"u": {"a"}}

	bookmark.Delete(db, "missing")

	assert.Len(t, db, 1)
}

func TestTags_ReturnsCopy(t *testing.T) {
	db := bookmark.Database{"u": {"a", "b"}}

	tags, _ := bookmark.Tags(db, "u")
	tags[0] = "mutated"

	stored, _ := bookmark.Tags(db, "u")
	assert.Equal(t, []string{"a", "b"}, stored)
}

func TestURLs_Sorted(t *testing.T) {
	db := bookmark.Database{"b": {"x"}, "a": {"x"}, "c": {"x"}}

	assert.Equal(t, []string{"a", "b", "c"}, bookmark.URLs(db))
}

func TestAllTags_DistinctAndSorted(t *testing.T) {
	db := bookmark.Database{
		"u": {"b", "a"},
		"v": {"b", "c"},
	}

	assert.Equal(t, []string{"a", "b", "c"}, bookmark.AllTags(db))
}

func TestClean_DeduplicatesInPlace(t *testing.T) {
	db := bookmark.Database{
		"u": {"b", "a", "b", "a"},
		"v": {},
	}

	bookmark.Clean(db)

	assert.Equal(t, []string{"a", "b"}, db["u"])
	_, ok := db["v"]
	assert.True(t, ok, "clean must not delete empty entries")
}
