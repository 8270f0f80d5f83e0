package folders

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/puzzlepost/internal/supernote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	tree  map[supernote.ID][]supernote.File
	err   error
	calls []supernote.ID
}

func (f *fakeLister) ListFiles(ctx context.Context, token supernote.Token, directoryID supernote.ID) ([]supernote.File, error) {
	f.calls = append(f.calls, directoryID)
	if f.err != nil {
		return nil, f.err
	}
	return f.tree[directoryID], nil
}

func newTree() *fakeLister {
	return &fakeLister{tree: map[supernote.ID][]supernote.File{
		supernote.RootDirectoryID: {
			{ID: "5", FileName: "Note", IsFolder: "Y"},
			{ID: "6", FileName: "Document", IsFolder: "Y"},
		},
		"6": {
			{ID: "70", FileName: "Crosswords", IsFolder: "N"},
			{ID: "71", FileName: "Crosswords", IsFolder: "Y"},
		},
	}}
}

func TestSegments(t *testing.T) {
	assert.Equal(t, []string{"Document", "Crosswords"}, Segments("Crosswords"))
	assert.Equal(t, []string{"Document", "Crosswords"}, Segments("Document/Crosswords"))
	assert.Equal(t, []string{"Document", "A", "B"}, Segments("/A//B/"))
	assert.Equal(t, []string{"Document"}, Segments(""))
}

func TestResolve_WalksSegmentsInOrder(t *testing.T) {
	l := newTree()

	id, err := Resolve(context.Background(), l, "tok", "Crosswords")
	require.NoError(t, err)
	assert.Equal(t, supernote.ID("71"), id, "must pick the folder, not the file with the same name")
	assert.Equal(t, []supernote.ID{supernote.RootDirectoryID, "6"}, l.calls)
}

func TestResolve_MissingSegment(t *testing.T) {
	l := newTree()

	_, err := Resolve(context.Background(), l, "tok", "Puzzles")
	require.ErrorIs(t, err, ErrFolderNotFound)
	assert.Contains(t, err.Error(), "Puzzles")
	assert.Len(t, l.calls, 2)

	l = newTree()
	delete(l.tree, supernote.RootDirectoryID)
	_, err = Resolve(context.Background(), l, "tok", "Crosswords")
	require.ErrorIs(t, err, ErrFolderNotFound)
	assert.Len(t, l.calls, 1, "walk stops at the first missing segment")
}

func TestResolve_ListingErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	l := &fakeLister{err: boom}

	_, err := Resolve(context.Background(), l, "tok", "Crosswords")
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrFolderNotFound)
}
