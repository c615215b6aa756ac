// Package resolve discovers candidate files, pairs them with their
// groundtruth and derives the domain directories results are grouped by.
package resolve

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// ErrInvalidDirectory reports a root that is not an existing directory
var ErrInvalidDirectory = errors.New("not a directory")

// NotSet marks an unknown groundtruth type
const NotSet = "n.a."

// ignoredDomain is a directory that never forms an evaluation domain
const ignoredDomain = "GT-PAGE"

var (
	gtTypeInfix  = regexp.MustCompile(`.*gt.(\w{3,}).xml$`)
	gtTypePrefix = regexp.MustCompile(`.*\.(\w{3,})\.gt\.xml$`)
)

// Entry pairs a candidate with its groundtruth
type Entry struct {
	Candidate   string   `json:"candidate"`             // Path of the candidate file
	Root        string   `json:"root"`                  // Candidate root directory
	Groundtruth string   `json:"groundtruth,omitempty"` // Path of the groundtruth, empty if unmatched
	Type        string   `json:"type"`                  // Groundtruth type, NotSet if unknown
	Domains     []string `json:"domains,omitempty"`     // Domain keys, root first
}

// NewEntry creates an unmatched entry for a candidate below root.
func NewEntry(candidate, root string) Entry {
	return Entry{Candidate: candidate, Root: root, Type: NotSet}
}

// HasGroundtruth reports whether a groundtruth was attached.
func (e Entry) HasGroundtruth() bool {
	return e.Groundtruth != ""
}

// Stem returns the candidate file name without its last extension.
func (e Entry) Stem() string {
	name := filepath.Base(e.Candidate)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// AlignDomains sets the domains the entry contributes to: the candidate
// root name followed by every nested directory down to the candidate,
// each as a cumulative slash separated path. GT-PAGE directories are skipped.
func (e *Entry) AlignDomains() {
	if e.Root == "" {
		e.Domains = nil
		return
	}

	current := filepath.Base(filepath.Clean(e.Root))
	domains := []string{current}

	rel, err := filepath.Rel(e.Root, filepath.Dir(e.Candidate))
	if err == nil && rel != "." && !strings.HasPrefix(rel, "..") {
		for _, dir := range strings.Split(filepath.ToSlash(rel), "/") {
			if dir == ignoredDomain || dir == "" {
				continue
			}
			current = path.Join(current, dir)
			domains = append(domains, current)
		}
	}
	e.Domains = domains
}

// GroundtruthType extracts the document type from a groundtruth file name
// such as "0001.gt.art.xml" or "0001.ann.gt.xml" and normalizes it.
func GroundtruthType(file string) string {
	name := filepath.Base(file)
	if m := gtTypeInfix.FindStringSubmatch(name); m != nil {
		return normalizeType(m[1])
	}
	if m := gtTypePrefix.FindStringSubmatch(name); m != nil {
		return normalizeType(m[1])
	}
	return NotSet
}

func normalizeType(label string) string {
	switch {
	case strings.HasPrefix(label, "art"):
		return "article"
	case strings.HasPrefix(label, "ann"):
		return "announcement"
	default:
		return NotSet
	}
}

// Gather walks root recursively and returns entries for all files ending
// with one of exts, sorted by path. Unreadable subdirectories are skipped.
func Gather(root string, exts ...string) ([]Entry, error) {
	if err := checkDir(root); err != nil {
		return nil, err
	}

	var entries []Entry
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && hasSuffix(d.Name(), exts) {
			entries = append(entries, NewEntry(p, root))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	slices.SortFunc(entries, func(a, b Entry) int { return strings.Compare(a.Candidate, b.Candidate) })
	return entries, nil
}

// GatherCandidates collects ALTO, PAGE and text candidates below root.
// A single file is accepted as its own candidate set.
func GatherCandidates(root string) ([]Entry, error) {
	info, err := os.Stat(root)
	if err == nil && info.Mode().IsRegular() {
		return []Entry{NewEntry(root, filepath.Dir(root))}, nil
	}
	return Gather(root, ".xml", ".txt")
}

// FindGroundtruth returns the first file below gtRoot, in path order, that
// approves as groundtruth for the entry's candidate.
func FindGroundtruth(entry Entry, gtRoot string) (string, bool) {
	index, err := NewIndex(gtRoot)
	if err != nil {
		return "", false
	}
	return index.Find(entry.Stem())
}

// Match attaches groundtruth, type and domains to every candidate and
// returns the matched entries together with the number of unmatched ones.
func Match(candidates []Entry, gtRoot string) ([]Entry, int, error) {
	index, err := NewIndex(gtRoot)
	if err != nil {
		return nil, 0, err
	}

	var matched []Entry
	unmatched := 0
	for _, c := range candidates {
		gt, ok := index.Find(c.Stem())
		if !ok {
			unmatched++
			continue
		}
		c.Groundtruth = gt
		c.Type = GroundtruthType(gt)
		c.AlignDomains()
		matched = append(matched, c)
	}
	return matched, unmatched, nil
}

// Index is the sorted list of groundtruth files below a root
type Index struct {
	files []string
}

// NewIndex walks gtRoot once and keeps every file name that could be groundtruth.
func NewIndex(gtRoot string) (*Index, error) {
	entries, err := Gather(gtRoot, ".xml", "gt.txt")
	if err != nil {
		return nil, err
	}
	index := &Index{files: make([]string, len(entries))}
	for i, e := range entries {
		index.files[i] = e.Candidate
	}
	return index, nil
}

// Len returns the number of indexed files.
func (x *Index) Len() int { return len(x.files) }

// Find returns the first file whose name starts with stem.
func (x *Index) Find(stem string) (string, bool) {
	for _, f := range x.files {
		if nameApproved(filepath.Base(f), stem) {
			return f, true
		}
	}
	return "", false
}

// nameApproved reports whether fname is groundtruth for a candidate stem
func nameApproved(fname, stem string) bool {
	suffixOK := strings.HasSuffix(fname, ".gt.xml") ||
		strings.HasSuffix(fname, "gt.txt") ||
		strings.HasSuffix(fname, ".xml")
	return stem != "" && strings.HasPrefix(fname, stem) && suffixOK
}

func hasSuffix(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func checkDir(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidDirectory, root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrInvalidDirectory, root)
	}
	return nil
}
