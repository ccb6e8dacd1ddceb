package walker

import (
	"bytes"
	"errors"
	"io/fs"
	"reflect"
	"testing"
	"testing/fstest"

	"github.com/bethropolis/promptpack/internal/ignore"
)

func text(s string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(s)}
}

type emitted struct {
	path    string
	content string
}

// trackingFS records which files get opened or read.
type trackingFS struct {
	FS
	opened []string
	read   []string
}

func (t *trackingFS) Open(name string) (fs.File, error) {
	t.opened = append(t.opened, name)
	return t.FS.Open(name)
}

func (t *trackingFS) ReadFile(name string) ([]byte, error) {
	t.read = append(t.read, name)
	return t.FS.ReadFile(name)
}

// vanishingFS lists a file during enumeration but fails its read, like a
// file deleted mid-walk.
type vanishingFS struct {
	FS
	vanished string
}

func (v *vanishingFS) ReadFile(name string) ([]byte, error) {
	if name == v.vanished {
		return nil, fs.ErrNotExist
	}
	return v.FS.ReadFile(name)
}

func runWalk(t *testing.T, root string, rules *ignore.RuleSet, counters *Counters, opts ...Option) ([]emitted, []SkippedItem) {
	t.Helper()
	var docs []emitted
	walkFn := func(path string, content []byte) error {
		docs = append(docs, emitted{path: path, content: string(content)})
		return nil
	}
	skipped, err := ProcessPath(root, rules, counters, walkFn, opts...)
	if err != nil {
		t.Fatalf("ProcessPath(%q): %v", root, err)
	}
	return docs, skipped
}

func pathsOf(docs []emitted) []string {
	var paths []string
	for _, d := range docs {
		paths = append(paths, d.path)
	}
	return paths
}

func hasSkip(items []SkippedItem, path string, reason SkippedReason) bool {
	for _, item := range items {
		if item.Path == path && item.Reason == reason {
			return true
		}
	}
	return false
}

func containsPath(paths []string, want string) bool {
	for _, p := range paths {
		if p == want {
			return true
		}
	}
	return false
}

func TestWalkOrdering(t *testing.T) {
	fsys := fstest.MapFS{
		"b.txt":     text("b\n"),
		"a.txt":     text("a\n"),
		"aa/x.txt":  text("x\n"),
		"sub/z.txt": text("z\n"),
		"sub/a.txt": text("sa\n"),
	}
	counters := &Counters{}
	var got []string
	walkFn := func(path string, content []byte) error {
		got = append(got, path)
		return nil
	}
	if _, err := Walk(".", ignore.New(), counters, walkFn, WithFS(fsys)); err != nil {
		t.Fatalf("Walk: %v", err)
	}

	// Files of a level come first, sorted; then each subdirectory in
	// enumeration order.
	want := []string{"a.txt", "b.txt", "aa/x.txt", "sub/a.txt", "sub/z.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("emission order = %v, want %v", got, want)
	}
	if counters.Processed != len(want) {
		t.Errorf("Processed = %d, want %d", counters.Processed, len(want))
	}
}

func TestWalkHiddenPolicy(t *testing.T) {
	fsys := fstest.MapFS{
		"visible.txt":       text("v\n"),
		".secret":           text("s\n"),
		".hidden/inner.txt": text("i\n"),
	}

	docs, skipped := runWalk(t, ".", ignore.New(), &Counters{}, WithFS(fsys))
	if want := []string{"visible.txt"}; !reflect.DeepEqual(pathsOf(docs), want) {
		t.Errorf("hidden off: emitted %v, want %v", pathsOf(docs), want)
	}
	if !hasSkip(skipped, ".secret", ReasonHidden) || !hasSkip(skipped, ".hidden", ReasonHidden) {
		t.Errorf("hidden entries not tracked: %v", skipped)
	}

	docs, _ = runWalk(t, ".", ignore.New(), &Counters{}, WithFS(fsys), WithIncludeHidden(true))
	want := []string{".secret", "visible.txt", ".hidden/inner.txt"}
	if !reflect.DeepEqual(pathsOf(docs), want) {
		t.Errorf("hidden on: emitted %v, want %v", pathsOf(docs), want)
	}
}

func TestWalkExtensionFilter(t *testing.T) {
	fsys := fstest.MapFS{
		"a.ts":     text("export {}\n"),
		"b.md":     text("# md\n"),
		"UPPER.TS": text("nope\n"),
	}
	docs, skipped := runWalk(t, ".", ignore.New(), &Counters{}, WithFS(fsys), WithExtensions([]string{"ts"}))

	if len(docs) != 1 || docs[0].path != "a.ts" || docs[0].content != "export {}\n" {
		t.Fatalf("emitted %v, want a.ts only", docs)
	}
	if !hasSkip(skipped, "b.md", ReasonFilteredExtension) {
		t.Errorf("b.md not tracked as extension mismatch: %v", skipped)
	}
	// Suffix matching is case-sensitive.
	if !hasSkip(skipped, "UPPER.TS", ReasonFilteredExtension) {
		t.Errorf("UPPER.TS should not match the .ts filter: %v", skipped)
	}
}

func TestWalkCustomIgnorePattern(t *testing.T) {
	fsys := fstest.MapFS{
		"keep.txt": text("keep\n"),
		"skip.log": text("skip\n"),
	}
	rules := ignore.New(
		ignore.WithCustomPatterns([]string{"*.log"}),
		ignore.WithoutGitignore(true),
	)
	docs, skipped := runWalk(t, ".", rules, &Counters{}, WithFS(fsys))

	if want := []string{"keep.txt"}; !reflect.DeepEqual(pathsOf(docs), want) {
		t.Errorf("emitted %v, want %v", pathsOf(docs), want)
	}
	if !hasSkip(skipped, "skip.log", ReasonIgnoredRule) {
		t.Errorf("skip.log not tracked as ignored: %v", skipped)
	}
}

func TestWalkGitignoreAccumulation(t *testing.T) {
	fsys := fstest.MapFS{
		".gitignore":      text("*.top\n"),
		"x.top":           text("t\n"),
		"x.txt":           text("x\n"),
		"left/.gitignore": text("*.left\n"),
		"left/a.left":     text("l\n"),
		"left/a.top":      text("lt\n"),
		"left/a.txt":      text("la\n"),
		"right/b.left":    text("rl\n"),
		"right/b.txt":     text("rb\n"),
	}
	docs, _ := runWalk(t, ".", ignore.New(), &Counters{}, WithFS(fsys))

	// *.top applies everywhere below the root, *.left only under left/.
	want := []string{"x.txt", "left/a.txt", "right/b.left", "right/b.txt"}
	if !reflect.DeepEqual(pathsOf(docs), want) {
		t.Errorf("emitted %v, want %v", pathsOf(docs), want)
	}
}

func TestWalkMaxFilesAcrossRoots(t *testing.T) {
	fsys := fstest.MapFS{
		"a.txt": text("a\n"),
		"b.txt": text("b\n"),
		"c.txt": text("c\n"),
	}
	counters := &Counters{}

	docs, _ := runWalk(t, ".", ignore.New(), counters, WithFS(fsys), WithMaxFiles(2))
	if want := []string{"a.txt", "b.txt"}; !reflect.DeepEqual(pathsOf(docs), want) {
		t.Errorf("first root emitted %v, want %v", pathsOf(docs), want)
	}

	// The ceiling is shared across roots through the counters.
	docs, _ = runWalk(t, ".", ignore.New(), counters, WithFS(fsys), WithMaxFiles(2))
	if len(docs) != 0 {
		t.Errorf("second root emitted %v, want none", pathsOf(docs))
	}
	if counters.Processed != 2 {
		t.Errorf("Processed = %d, want 2", counters.Processed)
	}
}

func TestWalkMaxFilesStopsBeforeDescent(t *testing.T) {
	fsys := fstest.MapFS{
		"a.txt":     text("a\n"),
		"b.txt":     text("b\n"),
		"sub/c.txt": text("c\n"),
	}
	docs, _ := runWalk(t, ".", ignore.New(), &Counters{}, WithFS(fsys), WithMaxFiles(2))
	if want := []string{"a.txt", "b.txt"}; !reflect.DeepEqual(pathsOf(docs), want) {
		t.Errorf("emitted %v, want %v", pathsOf(docs), want)
	}
}

func TestWalkMaxFileSize(t *testing.T) {
	fsys := fstest.MapFS{
		"big.txt":   text("this line is well over the ten byte limit\n"),
		"small.txt": text("ok\n"),
	}
	docs, skipped := runWalk(t, ".", ignore.New(), &Counters{}, WithFS(fsys), WithMaxFileSize(10))

	if want := []string{"small.txt"}; !reflect.DeepEqual(pathsOf(docs), want) {
		t.Errorf("emitted %v, want %v", pathsOf(docs), want)
	}
	if !hasSkip(skipped, "big.txt", ReasonSizeLimit) {
		t.Errorf("big.txt not tracked as oversized: %v", skipped)
	}
}

func TestWalkSkipsInvalidText(t *testing.T) {
	// The first 512 bytes sniff as text; the invalid bytes sit past the
	// sample and only the full read sees them.
	data := append(bytes.Repeat([]byte{'a'}, sniffLen), 0xff, 0xfe)
	fsys := fstest.MapFS{
		"weird.txt": {Data: data},
		"fine.txt":  text("ok\n"),
	}
	docs, skipped := runWalk(t, ".", ignore.New(), &Counters{}, WithFS(fsys))

	if want := []string{"fine.txt"}; !reflect.DeepEqual(pathsOf(docs), want) {
		t.Errorf("emitted %v, want %v", pathsOf(docs), want)
	}
	if !hasSkip(skipped, "weird.txt", ReasonNotText) {
		t.Errorf("weird.txt not tracked as invalid text: %v", skipped)
	}
}

func TestWalkVanishedFile(t *testing.T) {
	vfs := &vanishingFS{
		FS: fstest.MapFS{
			"gone.txt": text("g\n"),
			"here.txt": text("h\n"),
		},
		vanished: "gone.txt",
	}
	counters := &Counters{}
	docs, skipped := runWalk(t, ".", ignore.New(), counters, WithFS(vfs))

	if want := []string{"here.txt"}; !reflect.DeepEqual(pathsOf(docs), want) {
		t.Errorf("emitted %v, want %v", pathsOf(docs), want)
	}
	for _, item := range skipped {
		if item.Path == "gone.txt" {
			t.Errorf("a vanished file must be skipped silently, got %v", item)
		}
	}
	if counters.Processed != 1 {
		t.Errorf("Processed = %d, want 1", counters.Processed)
	}
}

func TestExcludedPathsNeverRead(t *testing.T) {
	tfs := &trackingFS{FS: fstest.MapFS{
		"keep.txt":             text("k\n"),
		"secret.env":           text("TOKEN=x\n"),
		"node_modules/huge.js": text("js\n"),
	}}
	rules := ignore.New(
		ignore.WithCustomPatterns([]string{"node_modules"}),
		ignore.WithoutGitignore(true),
	)
	docs, _ := runWalk(t, ".", rules, &Counters{}, WithFS(tfs))

	if want := []string{"keep.txt"}; !reflect.DeepEqual(pathsOf(docs), want) {
		t.Fatalf("emitted %v, want %v", pathsOf(docs), want)
	}
	for _, path := range []string{"secret.env", "node_modules/huge.js"} {
		if containsPath(tfs.opened, path) || containsPath(tfs.read, path) {
			t.Errorf("excluded path %q was read (opened=%v read=%v)", path, tfs.opened, tfs.read)
		}
	}
}

func TestWalkCallbackErrorStops(t *testing.T) {
	fsys := fstest.MapFS{
		"a.txt": text("a\n"),
		"b.txt": text("b\n"),
		"c.txt": text("c\n"),
	}
	sinkErr := errors.New("downstream closed")
	counters := &Counters{}
	calls := 0
	walkFn := func(path string, content []byte) error {
		calls++
		return sinkErr
	}

	_, err := ProcessPath(".", ignore.New(), counters, walkFn, WithFS(fsys))
	if !errors.Is(err, sinkErr) {
		t.Fatalf("ProcessPath error = %v, want %v", err, sinkErr)
	}
	if calls != 1 {
		t.Errorf("callback ran %d times after failing, want 1", calls)
	}
	if counters.Processed != 0 {
		t.Errorf("Processed = %d, want 0 for a failed emission", counters.Processed)
	}
}

func TestProcessPathFile(t *testing.T) {
	fsys := fstest.MapFS{"note.md": text("hi\n")}
	docs, _ := runWalk(t, "note.md", ignore.New(), &Counters{}, WithFS(fsys))
	want := []emitted{{path: "note.md", content: "hi\n"}}
	if !reflect.DeepEqual(docs, want) {
		t.Errorf("emitted %v, want %v", docs, want)
	}
}

func TestProcessPathFileExcluded(t *testing.T) {
	fsys := fstest.MapFS{"note.md": text("hi\n")}
	rules := ignore.New(ignore.WithCustomPatterns([]string{"*.md"}))
	docs, skipped := runWalk(t, "note.md", rules, &Counters{}, WithFS(fsys))

	if len(docs) != 0 {
		t.Errorf("emitted %v, want none", docs)
	}
	if !hasSkip(skipped, "note.md", ReasonIgnoredRule) {
		t.Errorf("note.md not tracked as ignored: %v", skipped)
	}
}

func TestProcessPathFileSiblingGitignore(t *testing.T) {
	// A bare file argument still honors the .gitignore next to it.
	fsys := fstest.MapFS{
		"sub/.gitignore": text("*.md\n"),
		"sub/note.md":    text("hi\n"),
		"sub/keep.txt":   text("k\n"),
	}

	docs, skipped := runWalk(t, "sub/note.md", ignore.New(), &Counters{}, WithFS(fsys))
	if len(docs) != 0 {
		t.Errorf("emitted %v, want none", docs)
	}
	if !hasSkip(skipped, "sub/note.md", ReasonIgnoredRule) {
		t.Errorf("sub/note.md not tracked as ignored: %v", skipped)
	}

	docs, _ = runWalk(t, "sub/keep.txt", ignore.New(), &Counters{}, WithFS(fsys))
	if want := []string{"sub/keep.txt"}; !reflect.DeepEqual(pathsOf(docs), want) {
		t.Errorf("emitted %v, want %v", pathsOf(docs), want)
	}
}

func TestProcessPathMissingRoot(t *testing.T) {
	walkFn := func(string, []byte) error { return nil }
	_, err := ProcessPath("missing.txt", ignore.New(), &Counters{}, walkFn, WithFS(fstest.MapFS{}))
	if err == nil {
		t.Fatal("want an error for a missing root path")
	}
}

func TestProcessPathNilCounters(t *testing.T) {
	fsys := fstest.MapFS{"a.txt": text("a\n")}
	walkFn := func(string, []byte) error { return nil }
	if _, err := ProcessPath(".", ignore.New(), nil, walkFn, WithFS(fsys)); err != nil {
		t.Fatalf("ProcessPath with nil counters: %v", err)
	}
}
