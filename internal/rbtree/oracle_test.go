package rbtree_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlonMell/rbmap/internal/rbtree"
)

// TestAgainstReference drives the tree and the gods red-black tree with
// the same random operations and compares them after every step.
func TestAgainstReference(t *testing.T) {
	for _, seed := range []int64{1, 7, SOURCE, 2024} {
		faker := gofakeit.New(seed)
		rb := rbtree.New[int]()
		ref := rbt.NewWithStringComparator()

		var keys []string
		for i := 0; i < 3000; i++ {
			var key string
			if len(keys) > 0 && faker.Number(0, 2) == 0 {
				key = keys[faker.Number(0, len(keys)-1)]
			} else {
				key = faker.LetterN(uint(faker.Number(1, 3)))
				keys = append(keys, key)
			}

			if faker.Number(0, 9) < 6 {
				_, seen := ref.Get(key)
				inserted := rb.Insert(key, i)
				require.Equal(t, !seen, inserted, "Insert(%q) seed %d", key, seed)
				if !seen {
					ref.Put(key, i)
				}
			} else {
				want, seen := ref.Get(key)
				got, ok := rb.Delete(key)
				require.Equal(t, seen, ok, "Delete(%q) seed %d", key, seed)
				if seen {
					require.Equal(t, want, got)
				}
				ref.Remove(key)
			}

			require.NoError(t, rb.Check(), "seed %d step %d", seed, i)
			require.Equal(t, ref.Size(), rb.Len())
		}

		for _, key := range keys {
			want, seen := ref.Get(key)
			got, ok := rb.Get(key)
			assert.Equal(t, seen, ok, key)
			if seen {
				assert.Equal(t, want, got, key)
			}
		}
	}
}

func TestWordKeys(t *testing.T) {
	faker := gofakeit.New(SOURCE)
	rb := rbtree.New[string]()
	want := map[string]string{}

	for i := 0; i < 2000; i++ {
		word := faker.Word()
		if _, ok := want[word]; !ok {
			want[word] = faker.HackerPhrase()
		}
		rb.Insert(word, want[word])
	}
	require.True(t, rb.Validate())
	require.Equal(t, len(want), rb.Len())

	for word, phrase := range want {
		got, ok := rb.Get(word)
		require.True(t, ok, word)
		assert.Equal(t, phrase, got)
		assert.Positive(t, rb.Depth(word))
	}
}
