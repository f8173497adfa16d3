package sanitize

import "testing"

func TestText(t *testing.T) {
	cases := map[string]string{
		"dig a trench":                          "dig a trench",
		"  knock\n\tdown   a wall ":             "knock down a wall",
		"<b>pour</b> a slab":                    "pour a slab",
		"<p class=\"q\">dig</p><br/>a pond":     "dig a pond",
		"&lt;script&gt;alert(1)&lt;/script&gt;": "alert(1)",
		"patio &amp; path":                      "patio & path",
		"":                                      "",
	}
	for in, want := range cases {
		if got := Text(in); got != want {
			t.Fatalf("Text(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTextKeepsComparisons(t *testing.T) {
	cases := []string{
		"need a digger <3 tonnes to dig a basement >2m deep",
		"slab < 10m2 and depth > 100mm",
		"budget <£500",
	}
	for _, in := range cases {
		if got := Text(in); got != in {
			t.Fatalf("Text(%q) = %q, want input unchanged", in, got)
		}
	}
}
