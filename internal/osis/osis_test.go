package osis

import (
	"strings"
	"testing"

	"github.com/FocuswithJustin/pericope/core/pericope"
)

const sampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<osis xmlns="http://www.bibletechnologies.net/2003/OSIS/namespace">
  <osisText osisIDWork="KJV">
    <div type="book" osisID="Gen">
      <chapter osisID="Gen.1">
        <verse osisID="Gen.1.1">In the beginning</verse>
        <verse osisID="Gen.1.2">And the earth</verse>
      </chapter>
    </div>
    <note>
      <reference osisRef="Matt.5.3-Matt.5.12">the beatitudes</reference>
      <reference osisRef="Gen.99.99">out of bounds</reference>
      <reference osisRef="Xqz.1.1">no such book</reference>
      <reference osisRef="Gen.1.1-Exod.2.2">spans books</reference>
    </note>
  </osisText>
</osis>`

func TestExtractRefs(t *testing.T) {
	refs, err := ExtractRefs(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("ExtractRefs: %v", err)
	}

	want := []string{
		"GEN 1:1-50:26", // book-level osisID
		"GEN 1:1-31",    // chapter-level osisID
		"GEN 1:1",
		"GEN 1:2",
		"MAT 5:3-12",
	}
	if len(refs) != len(want) {
		t.Fatalf("got %d refs, want %d: %v", len(refs), len(want), renderAll(refs))
	}
	for i, w := range want {
		if got := refs[i].String(); got != w {
			t.Errorf("refs[%d] = %q, want %q", i, got, w)
		}
	}
}

func TestExtractRefsIdentifierForms(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string // "" means skipped
	}{
		{"verse", "Gen.1.1", "GEN 1:1"},
		{"chapter", "Gen.2", "GEN 2:1-25"},
		{"book", "Gen", "GEN 1:1-50:26"},
		{"verse range", "Gen.1.1-Gen.1.5", "GEN 1:1-5"},
		{"chapter range", "Gen.1-Gen.2", "GEN 1:1-2:25"},
		{"cross chapter", "Gen.1.30-Gen.2.2", "GEN 1:30-2:2"},
		{"grain suffix", "Gen.1.1!a", "GEN 1:1"},
		{"cross book", "Gen.1.1-Exod.1.1", ""},
		{"unknown book", "Xqz.1.1", ""},
		{"bad shape", "Gen.1.1.1", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `<osis><reference osisRef="` + tt.id + `"/></osis>`
			refs, err := ExtractRefs(strings.NewReader(doc))
			if err != nil {
				t.Fatalf("ExtractRefs: %v", err)
			}
			if tt.want == "" {
				if len(refs) != 0 {
					t.Fatalf("expected skip, got %v", renderAll(refs))
				}
				return
			}
			if len(refs) != 1 {
				t.Fatalf("got %d refs, want 1: %v", len(refs), renderAll(refs))
			}
			if got := refs[0].String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractRefsMultipleIdentifiers(t *testing.T) {
	doc := `<osis><reference osisRef="Gen.1.1 Gen.1.3"/></osis>`
	refs, err := ExtractRefs(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ExtractRefs: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("got %d refs, want 2: %v", len(refs), renderAll(refs))
	}
	if refs[0].String() != "GEN 1:1" || refs[1].String() != "GEN 1:3" {
		t.Errorf("got %v", renderAll(refs))
	}
}

func TestExtractRefsBadDocument(t *testing.T) {
	if _, err := ExtractRefs(strings.NewReader("<osis>")); err != nil {
		// xmlquery tolerates unclosed tags; only a hard parse failure errors.
		t.Logf("parse error: %v", err)
	}
}

func renderAll(refs []*pericope.Pericope) []string {
	out := make([]string, len(refs))
	for i, p := range refs {
		out[i] = p.String()
	}
	return out
}
