package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates empty files below root for every relative path
func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}
}

func candidates(entries []Entry, root string) []string {
	var rel []string
	for _, e := range entries {
		r, _ := filepath.Rel(root, e.Candidate)
		rel = append(rel, filepath.ToSlash(r))
	}
	return rel
}

func TestGather(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "b/2.xml", "a/1.xml", "a/note.txt", "c.xml", "d.json")

	entries, err := Gather(root, ".xml")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/1.xml", "b/2.xml", "c.xml"}, candidates(entries, root))
	for _, e := range entries {
		assert.Equal(t, root, e.Root)
		assert.Equal(t, NotSet, e.Type)
		assert.False(t, e.HasGroundtruth())
	}

	entries, err = GatherCandidates(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"a/1.xml", "a/note.txt", "b/2.xml", "c.xml"}, candidates(entries, root))
}

func TestGather_EmptyDirectory(t *testing.T) {
	entries, err := Gather(t.TempDir(), ".xml")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGather_InvalidDirectory(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "file.xml")

	_, err := Gather(filepath.Join(root, "missing"), ".xml")
	assert.ErrorIs(t, err, ErrInvalidDirectory)

	_, err = Gather(filepath.Join(root, "file.xml"), ".xml")
	assert.ErrorIs(t, err, ErrInvalidDirectory)
}

func TestGatherCandidates_SingleFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "odem/0001.xml")
	file := filepath.Join(root, "odem", "0001.xml")

	entries, err := GatherCandidates(file)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, file, entries[0].Candidate)
	assert.Equal(t, filepath.Join(root, "odem"), entries[0].Root)
}

func TestNameApproved(t *testing.T) {
	assert.True(t, nameApproved("file.gt.xml", "file"))
	assert.True(t, nameApproved("file.xml", "file"))
	assert.True(t, nameApproved("file123.gt.xml", "file123"))
	assert.True(t, nameApproved("file.gt.txt", "file"))
	assert.False(t, nameApproved("other.xml", "file"))
	assert.False(t, nameApproved("file.txt", "file"))
	assert.False(t, nameApproved("file.xml", ""))
}

func TestGroundtruthType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"0001.gt.art.xml", "article"},
		{"0001.gt.ann.xml", "announcement"},
		{"0001.article.gt.xml", "article"},
		{"0001.annonce.gt.xml", "announcement"},
		{"0001.misc.gt.xml", NotSet},
		{"0001.gt.xml", NotSet},
		{"0001.xml", NotSet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GroundtruthType(filepath.Join("gt", tt.name)))
		})
	}
}

func TestEntry_AlignDomains(t *testing.T) {
	root := filepath.Join("data", "odem")
	tests := []struct {
		name      string
		candidate string
		want      []string
	}{
		{"at root", filepath.Join(root, "0001.xml"), []string{"odem"}},
		{"nested", filepath.Join(root, "1750", "fraktur", "0001.xml"), []string{"odem", "odem/1750", "odem/1750/fraktur"}},
		{"gt-page skipped", filepath.Join(root, "1750", "GT-PAGE", "0001.xml"), []string{"odem", "odem/1750"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEntry(tt.candidate, root)
			e.AlignDomains()
			assert.Equal(t, tt.want, e.Domains)
		})
	}

	e := NewEntry("0001.xml", "")
	e.AlignDomains()
	assert.Nil(t, e.Domains)
}

func TestMatch(t *testing.T) {
	base := t.TempDir()
	candRoot := filepath.Join(base, "odem")
	gtRoot := filepath.Join(base, "groundtruth")
	writeTree(t, candRoot, "1750/0001.xml", "1750/0002.xml", "1800/0003.txt", "0004.xml")
	writeTree(t, gtRoot, "1750/0001.gt.art.xml", "0002.ann.gt.xml", "1800/0003.gt.txt", "unrelated.xml")

	entries, err := GatherCandidates(candRoot)
	require.NoError(t, err)

	matched, unmatched, err := Match(entries, gtRoot)
	require.NoError(t, err)
	assert.Equal(t, 1, unmatched)
	require.Len(t, matched, 3)

	assert.Equal(t, filepath.Join(gtRoot, "1750", "0001.gt.art.xml"), matched[0].Groundtruth)
	assert.Equal(t, "article", matched[0].Type)
	assert.Equal(t, []string{"odem", "odem/1750"}, matched[0].Domains)

	assert.Equal(t, filepath.Join(gtRoot, "0002.ann.gt.xml"), matched[1].Groundtruth)
	assert.Equal(t, "announcement", matched[1].Type)

	assert.Equal(t, filepath.Join(gtRoot, "1800", "0003.gt.txt"), matched[2].Groundtruth)
	assert.Equal(t, NotSet, matched[2].Type)
	assert.Equal(t, []string{"odem", "odem/1800"}, matched[2].Domains)

	gt, ok := FindGroundtruth(entries[0], gtRoot)
	assert.False(t, ok, "0004 has no groundtruth")
	assert.Empty(t, gt)

	_, _, err = Match(entries, filepath.Join(base, "missing"))
	assert.ErrorIs(t, err, ErrInvalidDirectory)
}
