package newsblog

import "time"

// Post is a single news article. The ID is assigned by the store on
// insert and the Date is set once at creation; neither changes afterward.
type Post struct {
	ID       string
	Title    string
	ImageURL string // empty when the post has no image
	Content  string
	Date     time.Time
}

// Image is the stored metadata for a file in the admin image library.
type Image struct {
	Filename     string
	OriginalName string
	Width        int
	Height       int
	Size         int
	UploadedAt   string
}
