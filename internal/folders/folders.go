// Package folders resolves a slash-delimited cloud folder path to a folder id
// by walking the remote tree one segment at a time. Folders are never created.
package folders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/puzzlepost/internal/supernote"
)

// RootFolder is the top-level folder every path is rooted under.
const RootFolder = "Document"

var ErrFolderNotFound = errors.New("folder not found")

type Lister interface {
	ListFiles(ctx context.Context, token supernote.Token, directoryID supernote.ID) ([]supernote.File, error)
}

// Segments splits path into folder names, prepending RootFolder when the
// path does not already start with it.
func Segments(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s = strings.TrimSpace(s); s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 || segments[0] != RootFolder {
		segments = append([]string{RootFolder}, segments...)
	}
	return segments
}

// Resolve walks path from the drive root and returns the id of its last
// folder. Each segment costs one listing and depends on the previous one.
func Resolve(ctx context.Context, l Lister, token supernote.Token, path string) (supernote.ID, error) {
	id := supernote.RootDirectoryID

	for _, segment := range Segments(path) {
		items, err := l.ListFiles(ctx, token, id)
		if err != nil {
			return "", fmt.Errorf("list %q: %w", segment, err)
		}

		next, ok := findFolder(items, segment)
		if !ok {
			return "", fmt.Errorf("%w: %q in %q", ErrFolderNotFound, segment, path)
		}
		id = next
	}

	return id, nil
}

func findFolder(items []supernote.File, name string) (supernote.ID, bool) {
	for _, it := range items {
		if it.Folder() && it.FileName == name {
			return it.ID, true
		}
	}
	return "", false
}
