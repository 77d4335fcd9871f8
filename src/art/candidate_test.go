package art

import (
	"encoding/json"
	"testing"

	"github.com/ironsmile/artrepo/src/catalog"
)

// TestBuildCandidatesURL checks the construction of a single image URL.
func TestBuildCandidatesURL(t *testing.T) {
	entry := &catalog.Entry{
		MachineName: "myshow",
		Images:      catalog.ArtworkImages{Backdrop: []string{"a.jpg"}},
	}

	for _, repo := range []string{"https://example.org/art/", "https://example.org/art"} {
		found := BuildCandidates(repo, "series", entry)
		if len(found) != 1 {
			t.Fatalf("expected one candidate but got %d", len(found))
		}

		expected := "https://example.org/art/series/myshow/backdrop.a.jpg"
		if found[0].URL != expected {
			t.Errorf("expected URL `%s` but got `%s`", expected, found[0].URL)
		}
		if found[0].Type != Backdrop {
			t.Errorf("expected type backdrop but got %s", found[0].Type)
		}
	}
}

// TestBuildCandidatesOrder makes sure candidates are grouped by image type in
// a fixed order and that the published order of image ids is kept.
func TestBuildCandidatesOrder(t *testing.T) {
	entry := &catalog.Entry{
		MachineName: "m",
		Images: catalog.ArtworkImages{
			Logo:     []string{"l1"},
			Thumb:    []string{"t1", "t0"},
			Primary:  []string{"p1"},
			Backdrop: []string{"b2", "b1"},
		},
	}

	expected := []Candidate{
		{Type: Backdrop, URL: "r/c/m/backdrop.b2"},
		{Type: Backdrop, URL: "r/c/m/backdrop.b1"},
		{Type: Primary, URL: "r/c/m/primary.p1"},
		{Type: Thumb, URL: "r/c/m/thumb.t1"},
		{Type: Thumb, URL: "r/c/m/thumb.t0"},
		{Type: Logo, URL: "r/c/m/logo.l1"},
	}

	found := BuildCandidates("r/", "c", entry)
	if len(found) != len(expected) {
		t.Fatalf("expected %d candidates but got %d", len(expected), len(found))
	}
	for i := range expected {
		if found[i] != expected[i] {
			t.Errorf("candidate %d: expected %+v but got %+v", i, expected[i], found[i])
		}
	}
}

// TestBuildCandidatesEmpty checks that entries without images produce an empty
// but non-nil list.
func TestBuildCandidatesEmpty(t *testing.T) {
	tests := []struct {
		desc  string
		entry *catalog.Entry
	}{
		{desc: "nil entry", entry: nil},
		{desc: "no images", entry: &catalog.Entry{MachineName: "x"}},
		{
			desc: "empty image lists",
			entry: &catalog.Entry{
				MachineName: "x",
				Images:      catalog.ArtworkImages{Backdrop: []string{}, Logo: []string{}},
			},
		},
	}

	for _, test := range tests {
		found := BuildCandidates("https://example.org", "movies", test.entry)
		if found == nil || len(found) != 0 {
			t.Errorf("%s: expected empty candidates but got %#v", test.desc, found)
		}
	}
}

// TestCatalogURL checks where catalogs are looked for.
func TestCatalogURL(t *testing.T) {
	tests := map[string]string{
		"https://example.org/art":   "https://example.org/art/movies.json",
		"https://example.org/art/":  "https://example.org/art/movies.json",
		"http://localhost:8080":     "http://localhost:8080/movies.json",
		"http://localhost:8080/a/b": "http://localhost:8080/a/b/movies.json",
	}

	for repo, expected := range tests {
		if found := catalogURL(repo, "movies"); found != expected {
			t.Errorf("%s: expected `%s` but got `%s`", repo, expected, found)
		}
	}
}

// TestImageTypeJSON checks that image types travel as their names.
func TestImageTypeJSON(t *testing.T) {
	out, err := json.Marshal(Candidate{Type: Thumb, URL: "u"})
	if err != nil {
		t.Fatalf("marshalling failed: %s", err)
	}
	if string(out) != `{"type":"thumb","url":"u"}` {
		t.Errorf("unexpected JSON: %s", out)
	}

	var c Candidate
	if err := json.Unmarshal([]byte(`{"type":"Logo","url":"u"}`), &c); err != nil {
		t.Fatalf("unmarshalling failed: %s", err)
	}
	if c.Type != Logo {
		t.Errorf("expected logo but got %s", c.Type)
	}

	if _, err := json.Marshal(ImageType(42)); err == nil {
		t.Errorf("expected an error for unknown image type")
	}
	if err := json.Unmarshal([]byte(`"poster"`), &c.Type); err == nil {
		t.Errorf("expected an error for unknown image type name")
	}
}
