package storage

import (
	"context"
	"io"
)

// Service receives uploaded image files and returns the path to record on the
// owning record, in a form the HTML renderer can use directly as an <img>
// source. The original file extension is preserved; content is stored as-is
// with no type validation, size limit, or re-encoding.
type Service interface {
	Store(ctx context.Context, originalName string, r io.Reader) (string, error)
}
