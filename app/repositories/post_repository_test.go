package repositories

import (
	"testing"

	"microblog/app/models"

	"github.com/stretchr/testify/require"
)

func TestPostRepositoryCRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	t.Run("create assigns id and creation time", func(t *testing.T) {
		post := &models.Post{Title: "Hello", Content: "World", AuthorID: 1}
		require.NoError(t, repo.Create(post))
		require.Equal(t, 1, post.ID)
		require.False(t, post.CreatedAt.IsZero())
	})

	t.Run("get returns the stored document", func(t *testing.T) {
		post, err := repo.GetByID(1)
		require.NoError(t, err)
		require.Equal(t, "Hello", post.Title)
		require.Equal(t, 1, post.AuthorID)
	})

	t.Run("get missing post returns ErrNotFound", func(t *testing.T) {
		_, err := repo.GetByID(99)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update replaces the document", func(t *testing.T) {
		post, err := repo.GetByID(1)
		require.NoError(t, err)
		post.Title = "Hello again"
		require.NoError(t, repo.Update(post))

		got, err := repo.GetByID(1)
		require.NoError(t, err)
		require.Equal(t, "Hello again", got.Title)
	})

	t.Run("update missing post returns ErrNotFound", func(t *testing.T) {
		err := repo.Update(&models.Post{ID: 99, Title: "x", Content: "y"})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete returns the deleted document", func(t *testing.T) {
		post, err := repo.Delete(1)
		require.NoError(t, err)
		require.Equal(t, "Hello again", post.Title)

		_, err = repo.GetByID(1)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete missing post returns ErrNotFound", func(t *testing.T) {
		_, err := repo.Delete(1)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPostRepositoryList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	for _, title := range []string{"one", "two", "three"} {
		require.NoError(t, repo.Create(&models.Post{Title: title, Content: "body", AuthorID: 1}))
	}

	posts, err := repo.List()
	require.NoError(t, err)
	require.Len(t, posts, 3)
}

func TestPostRepositoryPatch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	post := &models.Post{Title: "Hello", Content: "World", AuthorID: 1}
	require.NoError(t, repo.Create(post))

	t.Run("applies the mutation and returns the updated document", func(t *testing.T) {
		updated, err := repo.Patch(post.ID, func(p *models.Post) error {
			p.AddComment(&models.Comment{AuthorID: 2, Body: "hi"})
			return nil
		})
		require.NoError(t, err)
		require.Len(t, updated.Comments, 1)
		require.Equal(t, 1, updated.Comments[0].ID)

		got, err := repo.GetByID(post.ID)
		require.NoError(t, err)
		require.Len(t, got.Comments, 1)
	})

	t.Run("failed predicate writes nothing", func(t *testing.T) {
		_, err := repo.Patch(post.ID, func(p *models.Post) error {
			p.Title = "should never persist"
			return ErrNotFound
		})
		require.ErrorIs(t, err, ErrNotFound)

		got, err := repo.GetByID(post.ID)
		require.NoError(t, err)
		require.Equal(t, "Hello", got.Title)
	})

	t.Run("missing post returns ErrNotFound without calling apply", func(t *testing.T) {
		called := false
		_, err := repo.Patch(99, func(p *models.Post) error {
			called = true
			return nil
		})
		require.ErrorIs(t, err, ErrNotFound)
		require.False(t, called)
	})
}
