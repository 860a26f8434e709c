package extract

import (
	"reflect"
	"testing"

	"github.com/pdiddy/repo-sage/internal/mdtree"
)

func parse(t *testing.T, src string) *mdtree.Node {
	t.Helper()
	return mdtree.Parse([]byte(src))
}

// --- DescriptionNearTitle ---

func TestDescriptionNearTitle(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		want   string
		wantOK bool
	}{
		{
			name:   "paragraph right after title",
			src:    "# Foo\n\nA tiny tool.\n\n## Features\n",
			want:   "A tiny tool.",
			wantOK: true,
		},
		{
			name:   "badges between title and paragraph",
			src:    "# Foo\n\n> quoted badge row\n\nDescribes the tool.\n",
			want:   "Describes the tool.",
			wantOK: true,
		},
		{
			name: "paragraph only in a later section still counts",
			src:  "# Foo\n\n## Install\n\nRun the installer.\n",
			// The scan crosses section boundaries on purpose.
			want:   "Run the installer.",
			wantOK: true,
		},
		{
			name:   "no level-1 heading",
			src:    "## Only a section\n\nSome text.\n",
			wantOK: false,
		},
		{
			name:   "heading with nothing after it",
			src:    "# Foo\n",
			wantOK: false,
		},
		{
			name:   "no paragraph at all",
			src:    "# Foo\n\n- just\n- bullets\n",
			wantOK: false,
		},
		{
			name:   "first H1 wins over later H1",
			src:    "# First\n\nfirst para\n\n# Second\n\nsecond para\n",
			want:   "first para",
			wantOK: true,
		},
		{
			name:   "multi-line paragraph joined by newline",
			src:    "# Foo\n\nLine one\nline two.\n",
			want:   "Line one\nline two.",
			wantOK: true,
		},
		{
			name:   "empty document",
			src:    "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DescriptionNearTitle(parse(t, tt.src))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("description = %q, want %q", got, tt.want)
			}
		})
	}
}

// --- InstallCommands ---

func TestInstallCommands(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "single fence single command",
			src:  "# Foo\n\n```bash\npip install foo\n```\n",
			want: []string{"pip install foo"},
		},
		{
			name: "surrounding lines are dropped",
			src:  "```\ncd /tmp\npip install foo\nfoo --version\n```\n",
			want: []string{"pip install foo"},
		},
		{
			name: "duplicates collapse to first occurrence",
			src:  "```\npip install foo\n```\n\ntext\n\n```\npip install foo\npip install foo[extra]\n```\n",
			want: []string{"pip install foo", "pip install foo[extra]"},
		},
		{
			name: "document order across fences",
			src:  "```\npip install one\n```\n\n```\npip install two\n```\n",
			want: []string{"pip install one", "pip install two"},
		},
		{
			name: "lines are trimmed",
			src:  "```\n   pip install foo   \n```\n",
			want: []string{"pip install foo"},
		},
		{
			name: "case-sensitive marker",
			src:  "```\nPip Install foo\n```\n",
			want: nil,
		},
		{
			name: "prose mention is ignored",
			src:  "Run pip install foo to start.\n",
			want: nil,
		},
		{
			name: "indented code block is ignored",
			src:  "para\n\n    pip install foo\n",
			want: nil,
		},
		{
			name: "fence nested in a list item",
			src:  "- step\n\n  ```\n  pip install nested\n  ```\n",
			want: []string{"pip install nested"},
		},
		{
			name: "no fences",
			src:  "# Foo\n\nplain text\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InstallCommands(parse(t, tt.src))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("commands = %#v, want %#v", got, tt.want)
			}
		})
	}
}

// --- ListAfterHeading ---

var featureKeys = []string{"feature", "key feature"}

func TestListAfterHeading(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		keywords []string
		want     []string
	}{
		{
			name:     "simple features section",
			src:      "## Features\n\n- Fast\n- Small\n",
			keywords: featureKeys,
			want:     []string{"Fast", "Small"},
		},
		{
			name:     "case-insensitive heading match",
			src:      "### KEY FEATURES\n\n- One\n",
			keywords: featureKeys,
			want:     []string{"One"},
		},
		{
			name:     "keyword as substring",
			src:      "## Main Features of the tool\n\n- Works\n",
			keywords: featureKeys,
			want:     []string{"Works"},
		},
		{
			name:     "h1 heading does not match",
			src:      "# Features\n\n- Nope\n",
			keywords: featureKeys,
			want:     nil,
		},
		{
			name:     "h4 heading does not match",
			src:      "#### Features\n\n- Nope\n",
			keywords: featureKeys,
			want:     nil,
		},
		{
			name:     "paragraph between heading and list",
			src:      "## Features\n\nHighlights:\n\n- Fast\n",
			keywords: featureKeys,
			want:     []string{"Fast"},
		},
		{
			name: "first matching heading without list ends the search",
			src:  "## Features\n\nno list here\n\n## More features\n\n- Too late\n",
			// The second matching heading is never consulted.
			keywords: featureKeys,
			want:     nil,
		},
		{
			name:     "ordered list does not satisfy",
			src:      "## Features\n\n1. first\n2. second\n",
			keywords: featureKeys,
			want:     nil,
		},
		{
			name:     "emphasis and inline code in items",
			src:      "## Features\n\n- **Fast** parsing\n- Uses `sqlite` under the hood\n",
			keywords: featureKeys,
			want:     []string{"Fast parsing", "Uses under the hood"},
		},
		{
			name:     "platform keywords",
			src:      "## Compatibility\n\n- Linux\n- macOS\n",
			keywords: []string{"supported platform", "compatibility"},
			want:     []string{"Linux", "macOS"},
		},
		{
			name:     "no matching heading",
			src:      "## Usage\n\n- irrelevant\n",
			keywords: featureKeys,
			want:     nil,
		},
		{
			name:     "multi-line item text joins with spaces",
			src:      "## Features\n\n- Fast\n  and safe\n",
			keywords: featureKeys,
			want:     []string{"Fast and safe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ListAfterHeading(parse(t, tt.src), tt.keywords)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("items = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestListAfterHeadingIsStable(t *testing.T) {
	doc := parse(t, "## Features\n\n- A\n- B\n")
	first := ListAfterHeading(doc, featureKeys)
	second := ListAfterHeading(doc, featureKeys)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeat extraction differs: %v vs %v", first, second)
	}
}
