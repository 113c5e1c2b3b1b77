package document

import "time"

// Document is a file attached to an order. Either FileData or FileURL carries the content.
type Document struct {
	ID         int64
	OrderID    int64
	FileName   string
	FileType   string
	FileData   []byte
	FileURL    *string
	FileSize   int64
	UploadedBy *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (d *Document) HasData() bool {
	return d.FileSize > 0
}
