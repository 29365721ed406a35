package javasrc

import (
	"reflect"
	"testing"
)

func TestMeaningfulLines(t *testing.T) {
	body := "\n    // setup\n    a();\n\n    {\n        b();\n    }\n    "
	got := MeaningfulLines(body)
	want := []string{"a();", "b();"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		body string
		want Outcome
	}{
		{"single return", " return summary; ", SingleReturn},
		{"single return with comments", "\n    // cached\n    return cache.get(key);\n", SingleReturn},
		{"single statement", "\n    counter++;\n", TooShort},
		{"single throw", "\n    throw new IllegalStateException();\n", TooShort},
		{"empty", "\n", TooShort},
		{"two statements", "\n    doWork();\n    counter++;\n", OK},
		{"early return then work", "\n    if (x == null) return;\n    x.run();\n", OK},
		{"return across two lines", "\n    return a\n        + b;\n", OK},
	}
	for _, tc := range cases {
		if got := Classify(tc.body); got != tc.want {
			t.Errorf("%s: Classify = %v, want %v", tc.name, got, tc.want)
		}
		if got := Safe(tc.body); got != (tc.want == OK) {
			t.Errorf("%s: Safe = %v", tc.name, got)
		}
	}
}
