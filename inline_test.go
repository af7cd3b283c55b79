package svgater

// Notes:
// - The "style matching" MatchNotFoundError branch cannot be reached through
//   ToInlineStyles: every rule span already contains a block. It is covered by
//   TestMatchNotFoundError instead.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/alnah/go-svgater/internal/pipeline"
)

// ---------------------------------------------------------------------------
// TestToInlineStyles - Rule removal and style injection
// ---------------------------------------------------------------------------

func TestToInlineStyles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "compact rule leaves empty style element",
			input: `<style>#a{fill:blue}</style><rect id="a"/>`,
			want:  `<style></style><rect id="a" style="fill:blue"/>`,
		},
		{
			name:  "non-ascii identifier",
			input: `<style>#café{fill:red}</style><rect id="café"/>`,
			want:  `<style></style><rect id="café" style="fill:red"/>`,
		},
		{
			name:  "spaced rule keeps inner spacing",
			input: `<style>#foo { color: red }</style><g id="foo"/>`,
			want:  `<style></style><g id="foo" style=" color: red "/>`,
		},
		{
			name:  "two rules",
			input: "<style>#a{fill:blue}\n#b{stroke:red}</style><rect id=\"a\"/><rect id=\"b\"/>",
			want:  "<style>\n</style><rect id=\"a\" style=\"fill:blue\"/><rect id=\"b\" style=\"stroke:red\"/>",
		},
		{
			name:  "element used twice",
			input: `<style>#a{fill:blue}</style><rect id="a"/><use id="a"/>`,
			want:  `<style></style><rect id="a" style="fill:blue"/><use id="a" style="fill:blue"/>`,
		},
		{
			name:  "rule without matching element is still removed",
			input: `<style>#ghost{fill:blue}</style><rect id="a"/>`,
			want:  `<style></style><rect id="a"/>`,
		},
		{
			name:    "semicolons are not matched",
			input:   `<style>#a{fill:blue;}</style><rect id="a"/>`,
			wantErr: ErrIDsNotFound,
		},
		{
			name:    "no rules",
			input:   `<rect id="a"/>`,
			wantErr: ErrIDsNotFound,
		},
		{
			name:    "rule without identifier",
			input:   `<style># a{fill:blue}</style>`,
			wantErr: ErrMatchNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ToInlineStyles(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ToInlineStyles() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ToInlineStyles() =\n  %q\nwant\n  %q", got, tt.want)
			}
		})
	}
}

func TestToInlineStyles_MatchNotFoundLocation(t *testing.T) {
	t.Parallel()

	_, err := ToInlineStyles(`# a{fill:blue}`)

	var mnf *MatchNotFoundError
	if !errors.As(err, &mnf) {
		t.Fatalf("error = %v, want *MatchNotFoundError", err)
	}
	if mnf.Location != LocationID {
		t.Errorf("Location = %q, want %q", mnf.Location, LocationID)
	}
}

// ---------------------------------------------------------------------------
// TestToInlineStyles_RuleTextRemoved - Output property
// ---------------------------------------------------------------------------

func TestToInlineStyles_RuleTextRemoved(t *testing.T) {
	t.Parallel()

	input := "<svg><style>\n#foo { color: red }\n</style><text id=\"foo\">hi</text></svg>"

	got, err := ToInlineStyles(input)
	if err != nil {
		t.Fatalf("ToInlineStyles() error = %v", err)
	}
	if strings.Contains(got, "#foo { color: red }") {
		t.Errorf("rule text still present: %q", got)
	}
	if !strings.Contains(got, `id="foo" style=" color: red "`) {
		t.Errorf("inline style missing: %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestExtractStyleRecords - Record extraction
// ---------------------------------------------------------------------------

func TestExtractStyleRecords(t *testing.T) {
	t.Parallel()

	text := "#a{fill:blue} #bb { stroke: red }"
	got, err := extractStyleRecords(text)
	if err != nil {
		t.Fatalf("extractStyleRecords() error = %v", err)
	}

	want := []StyleRecord{
		{ID: "a", Declarations: "fill:blue", Span: pipeline.Span{Start: 0, End: 13}},
		{ID: "bb", Declarations: " stroke: red ", Span: pipeline.Span{Start: 14, End: 33}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extractStyleRecords() = %+v, want %+v", got, want)
	}
	for _, r := range got {
		rule := r.Span.In(text)
		if !strings.HasPrefix(rule, "#") || !strings.HasSuffix(rule, "}") {
			t.Errorf("span %+v does not cover a full rule: %q", r.Span, rule)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRewriteInline_ReverseDeletion - Ordering regression
// ---------------------------------------------------------------------------

func TestRewriteInline_ReverseDeletion(t *testing.T) {
	t.Parallel()

	text := "<style>#a{fill:blue}\n#b{fill:red}\n#c{fill:green}\n#d{fill:black}</style>" +
		`<g id="a"/><g id="b"/><g id="c"/><g id="d"/>`

	records, err := extractStyleRecords(text)
	if err != nil {
		t.Fatalf("extractStyleRecords() error = %v", err)
	}

	// Reference: remove rules one at a time and search again each time, so
	// no stored offset is ever reused.
	ref := text
	for range records {
		spans := pipeline.FindRules(ref)
		ref = ref[:spans[0].Start] + ref[spans[0].End:]
	}

	spans := make([]pipeline.Span, 0, len(records))
	for _, r := range records {
		spans = append(spans, r.Span)
	}
	slices.Reverse(spans)
	got, err := pipeline.DeleteSpans(text, spans)
	if err != nil {
		t.Fatalf("DeleteSpans() error = %v", err)
	}
	if got != ref {
		t.Errorf("descending deletion =\n  %q\nreference\n  %q", got, ref)
	}

	out, _, err := rewriteInline(text)
	if err != nil {
		t.Fatalf("rewriteInline() error = %v", err)
	}
	if !strings.HasPrefix(out, "<style>\n\n\n</style>") {
		t.Errorf("rewriteInline() left rule text: %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestMatchNotFoundError - Error kind
// ---------------------------------------------------------------------------

func TestMatchNotFoundError(t *testing.T) {
	t.Parallel()

	err := error(&MatchNotFoundError{Location: LocationStyle, Rule: "#a"})

	if !errors.Is(err, ErrMatchNotFound) {
		t.Error("errors.Is(err, ErrMatchNotFound) = false")
	}
	if errors.Is(err, ErrIDsNotFound) {
		t.Error("errors.Is(err, ErrIDsNotFound) = true")
	}
	if !strings.Contains(err.Error(), "style matching") {
		t.Errorf("Error() = %q, want location", err.Error())
	}
}
