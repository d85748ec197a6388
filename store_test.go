package newsblog

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "news.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestInsertPostAssignsIDAndDate(t *testing.T) {
	s := setupTestStore(t)

	before := time.Now().UTC()
	id, err := s.InsertPost(Post{Title: "Hello", Content: "World"})
	if err != nil {
		t.Fatalf("InsertPost failed: %v", err)
	}
	if id == "" {
		t.Fatal("InsertPost should assign a non-empty id")
	}

	got, err := s.GetPost(id)
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if got.ID != id {
		t.Errorf("ID = %q, want %q", got.ID, id)
	}
	if got.Title != "Hello" {
		t.Errorf("Title = %q, want %q", got.Title, "Hello")
	}
	if got.Content != "World" {
		t.Errorf("Content = %q, want %q", got.Content, "World")
	}
	if got.ImageURL != "" {
		t.Errorf("ImageURL = %q, want empty", got.ImageURL)
	}
	if got.Date.Before(before.Truncate(time.Second)) {
		t.Errorf("Date = %v, should not predate insert", got.Date)
	}
}

func TestInsertPostKeepsDistinctIDs(t *testing.T) {
	s := setupTestStore(t)

	id1, err := s.InsertPost(Post{Title: "One", Content: "c"})
	if err != nil {
		t.Fatalf("InsertPost failed: %v", err)
	}
	id2, err := s.InsertPost(Post{Title: "Two", Content: "c"})
	if err != nil {
		t.Fatalf("InsertPost failed: %v", err)
	}
	if id1 == id2 {
		t.Errorf("two inserts got the same id %q", id1)
	}
}

func TestGetPostNotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.GetPost("nonexistent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListPostsOrderedByDateDesc(t *testing.T) {
	s := setupTestStore(t)

	dates := []time.Time{
		time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		if _, err := s.InsertPost(Post{Title: "Post", Content: "c", Date: d}); err != nil {
			t.Fatalf("InsertPost %d failed: %v", i, err)
		}
	}

	got, err := s.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ListPosts count = %d, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Date.Before(got[i].Date) {
			t.Errorf("posts out of order at %d: %v before %v", i, got[i-1].Date, got[i].Date)
		}
	}
	if !got[0].Date.Equal(dates[1]) {
		t.Errorf("first post date = %v, want %v (latest)", got[0].Date, dates[1])
	}
}

func TestListPostsOrderWithinSameSecond(t *testing.T) {
	s := setupTestStore(t)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		d := base.Add(time.Duration(i) * 3 * time.Millisecond)
		if _, err := s.InsertPost(Post{Title: "P", Content: "c", Date: d}); err != nil {
			t.Fatalf("InsertPost failed: %v", err)
		}
	}

	got, err := s.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Date.Before(got[i].Date) {
			t.Errorf("sub-second timestamps out of order at %d", i)
		}
	}
}

func TestDeletePost(t *testing.T) {
	s := setupTestStore(t)

	id, err := s.InsertPost(Post{Title: "To delete", Content: "c"})
	if err != nil {
		t.Fatalf("InsertPost failed: %v", err)
	}

	if err := s.DeletePost(id); err != nil {
		t.Fatalf("DeletePost failed: %v", err)
	}
	if _, err := s.GetPost(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("post should not exist after delete, got err: %v", err)
	}
}

func TestDeleteNonexistentPost(t *testing.T) {
	s := setupTestStore(t)

	if err := s.DeletePost("nonexistent"); err != nil {
		t.Errorf("DeletePost on nonexistent should not error, got: %v", err)
	}
}

func TestDegradedStore(t *testing.T) {
	s := &Store{} // no database behind it

	if _, err := s.InsertPost(Post{Title: "t", Content: "c"}); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("InsertPost: expected ErrStoreUnavailable, got %v", err)
	}
	if _, err := s.ListPosts(); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("ListPosts: expected ErrStoreUnavailable, got %v", err)
	}
	if err := s.DeletePost("x"); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("DeletePost: expected ErrStoreUnavailable, got %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close on degraded store should not error, got %v", err)
	}
}

func TestImageMetadata(t *testing.T) {
	s := setupTestStore(t)

	img := Image{
		Filename:     "front-page.jpg",
		OriginalName: "Front Page.png",
		Width:        800,
		Height:       450,
		Size:         123456,
		UploadedAt:   "2024-05-01T10:00:00Z",
	}
	if err := s.SaveImage(img); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	images, err := s.ListImages()
	if err != nil {
		t.Fatalf("ListImages failed: %v", err)
	}
	if len(images) != 1 {
		t.Fatalf("ListImages count = %d, want 1", len(images))
	}
	if images[0] != img {
		t.Errorf("ListImages[0] = %+v, want %+v", images[0], img)
	}

	if err := s.DeleteImage("front-page.jpg"); err != nil {
		t.Fatalf("DeleteImage failed: %v", err)
	}
	images, err = s.ListImages()
	if err != nil {
		t.Fatalf("ListImages failed: %v", err)
	}
	if len(images) != 0 {
		t.Errorf("ListImages count after delete = %d, want 0", len(images))
	}
}
