package errors

import (
	"strings"
	"testing"
)

// ── CompilerErrors ──

func TestAddAndCount(t *testing.T) {
	ce := New("App.def")
	if ce.HasErrors() {
		t.Fatal("expected an empty report initially")
	}
	if ce.Format() != "" {
		t.Fatalf("expected empty format, got %q", ce.Format())
	}

	ce.AddError("E101", 3, "component name, A, is already in use. Please use another name")
	ce.AddErrorWithSuggestion("E102", 9, "Hombutton hasn't been defined", "Did you mean HomeButton?")

	if !ce.HasErrors() {
		t.Fatal("expected HasErrors to be true")
	}
	if ce.Len() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", ce.Len())
	}
	if all := ce.All(); all[0].Code != "E101" || all[1].Suggestion != "Did you mean HomeButton?" {
		t.Errorf("unexpected diagnostics: %+v, %+v", all[0], all[1])
	}
}

func TestDefaultFile(t *testing.T) {
	ce := New("App.def")
	ce.AddError("E101", 1, "test error")
	ce.SetFile("Main.view")
	ce.AddError("E102", 2, "test error")
	ce.Add(&CompilerError{Code: "E103", Message: "explicit", File: "About.view"})

	all := ce.All()
	want := []string{"App.def", "Main.view", "About.view"}
	for i, w := range want {
		if all[i].File != w {
			t.Errorf("error %d: expected file %q, got %q", i, w, all[i].File)
		}
	}
}

// ── Format ──

func TestCompilerErrorFormat(t *testing.T) {
	tests := []struct {
		err  CompilerError
		want string
	}{
		{CompilerError{Code: "E102", Message: "hb hasn't been defined", File: "Main.view", Line: 4}, "Main.view:4: hb hasn't been defined [E102]"},
		{CompilerError{Code: "E301", Message: "About.view doesn't exist", File: "App.def"}, "App.def: About.view doesn't exist [E301]"},
		{CompilerError{Message: "plain"}, "plain"},
	}
	for _, tt := range tests {
		if got := tt.err.Format(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestCompilerErrorsFormat(t *testing.T) {
	ce := New("Main.view")
	ce.AddErrorWithSuggestion("E102", 1, "Hombutton hasn't been defined", "Did you mean HomeButton?")
	ce.AddError("E102", 2, "x hasn't been defined")

	want := "✗ Main.view:1: Hombutton hasn't been defined [E102]\n" +
		"  suggestion: Did you mean HomeButton?\n" +
		"✗ Main.view:2: x hasn't been defined [E102]"
	if got := ce.Format(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
	if ce.Error() != want {
		t.Error("expected Error to match Format")
	}
}

// ── Edit distance ──

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "xyz", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"NavBar", "NavBarr", 1},
		{"width", "widht", 1}, // adjacent swap counts once
		{"héllo", "hello", 1},
	}

	for _, tc := range tests {
		if got := editDistance(tc.a, tc.b); got != tc.want {
			t.Errorf("editDistance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

// ── Similarity ──

func TestSimilarity(t *testing.T) {
	if s := Similarity("NavBar", "navbar"); s != 1.0 {
		t.Errorf("expected 1.0 for case-insensitive identical, got %f", s)
	}
	if s := Similarity("", ""); s != 1.0 {
		t.Errorf("expected 1.0 for both empty, got %f", s)
	}
	if s := Similarity("color", "colour"); s < 0.8 {
		t.Errorf("expected high similarity for color/colour, got %f", s)
	}
	if s := Similarity("abc", "xyz"); s > 0.1 {
		t.Errorf("expected low similarity for abc/xyz, got %f", s)
	}
}

// ── Suggestions ──

func TestFindClosest(t *testing.T) {
	candidates := []string{"HomeButton", "AboutButton", "NavBar", "nb"}

	tests := []struct {
		target string
		want   string
	}{
		{"HomeButon", "HomeButton"},
		{"NavBra", "NavBar"},
		{"Zzzzzzzzz", ""},
		{"nb", "nb"},
	}
	for _, tt := range tests {
		if got := FindClosest(tt.target, candidates, 0.6); got != tt.want {
			t.Errorf("FindClosest(%q) = %q, want %q", tt.target, got, tt.want)
		}
	}

	if got := FindClosest("anything", nil, 0.6); got != "" {
		t.Errorf("FindClosest on empty candidates = %q, want empty", got)
	}
}

func TestDidYouMean(t *testing.T) {
	got := DidYouMean("colr", []string{"alt", "color", "url"})
	if got != "Did you mean color?" {
		t.Errorf("got %q", got)
	}
	if got := DidYouMean("qqqq", []string{"alt", "color"}); got != "" {
		t.Errorf("expected no suggestion, got %q", got)
	}
	if !strings.HasPrefix(DidYouMean("NavBr", []string{"NavBar"}), "Did you mean") {
		t.Error("expected a suggestion for NavBr")
	}
}
