package content

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDocumentJSONRoundTrip(t *testing.T) {
	t.Parallel()

	raw := `{"tr":{"hero_title":"Merhaba","skills":["SQL","Python"],"blog_list":[{"id":"1700000000000","title":"ilk yazı"}]},"en":{"hero_title":"Hello"}}`
	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("unmarshal document: %v", err)
	}
	if got := Text(doc["tr"]["hero_title"]); got != "Merhaba" {
		t.Fatalf("hero_title = %q, want %q", got, "Merhaba")
	}
	if _, ok := doc["tr"]["skills"].(Sequence); !ok {
		t.Fatalf("skills decoded as %T, want Sequence", doc["tr"]["skills"])
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}
	var again Document
	if err := json.Unmarshal(encoded, &again); err != nil {
		t.Fatalf("re-unmarshal document: %v", err)
	}
	if got := Text(again["en"]["hero_title"]); got != "Hello" {
		t.Fatalf("re-decoded hero_title = %q, want %q", got, "Hello")
	}
}

func TestDocumentUnmarshalRejectsNonObjectLanguage(t *testing.T) {
	t.Parallel()

	var doc Document
	if err := json.Unmarshal([]byte(`{"tr":["not","an","object"]}`), &doc); err == nil {
		t.Fatal("expected error for non-object language tree")
	}
}

func TestCloneIsStructurallyIndependent(t *testing.T) {
	t.Parallel()

	doc := Document{"tr": Mapping{
		"social": Mapping{"github": Scalar{Val: ""}},
		"list":   Sequence{Mapping{"id": Scalar{Val: "1"}, "title": Scalar{Val: "A"}}},
	}}
	clone := doc.Clone()

	clone["tr"]["social"].(Mapping)["github"] = Scalar{Val: "changed"}
	clone["tr"]["list"].(Sequence)[0].(Mapping)["title"] = Scalar{Val: "changed"}

	if got := Text(doc["tr"]["social"].(Mapping)["github"]); got != "" {
		t.Fatalf("original mapping leaked clone write: %q", got)
	}
	if got := Text(doc["tr"]["list"].(Sequence)[0].(Mapping)["title"]); got != "A" {
		t.Fatalf("original sequence leaked clone write: %q", got)
	}
}

func TestItemID(t *testing.T) {
	t.Parallel()

	if id, ok := ItemID(Mapping{"id": Scalar{Val: "abc123"}}); !ok || id != "abc123" {
		t.Fatalf("ItemID = (%q, %t), want (abc123, true)", id, ok)
	}
	if id, ok := ItemID(Mapping{"id": Scalar{Val: float64(42)}}); !ok || id != "42" {
		t.Fatalf("ItemID numeric = (%q, %t), want (42, true)", id, ok)
	}
	if _, ok := ItemID(Mapping{"title": Scalar{Val: "no id"}}); ok {
		t.Fatal("expected missing id to report false")
	}
	if _, ok := ItemID(Scalar{Val: "scalar"}); ok {
		t.Fatal("expected scalar element to report false")
	}
}

func TestNewItemIDProbesPastCollisions(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1700000000000)
	list := Sequence{
		Mapping{"id": Scalar{Val: "1700000000000"}},
		Mapping{"id": Scalar{Val: "1700000000001"}},
	}
	if got := newItemID(now, list); got != "1700000000002" {
		t.Fatalf("newItemID = %q, want %q", got, "1700000000002")
	}
	if got := newItemID(now, nil); got != "1700000000000" {
		t.Fatalf("newItemID on empty list = %q, want %q", got, "1700000000000")
	}
}

func TestFallbackHasBothLanguages(t *testing.T) {
	t.Parallel()

	table := Fallback()
	for _, lang := range []string{"tr", "en"} {
		if _, ok := table[lang]; !ok {
			t.Fatalf("fallback table missing language %q", lang)
		}
		if _, ok := Resolve(table[lang], "footer_joke"); !ok {
			t.Fatalf("fallback table missing footer_joke for %q", lang)
		}
	}
	if got := Text(table["tr"]["nav_welcome"]); got != "Hoşgeldin" {
		t.Fatalf("tr nav_welcome = %q, want %q", got, "Hoşgeldin")
	}
	if got := Text(table["en"]["nav_welcome"]); got != "Welcome" {
		t.Fatalf("en nav_welcome = %q, want %q", got, "Welcome")
	}
}
