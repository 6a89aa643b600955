package record

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name  string
		line  string
		want  Record
		valid bool
	}{
		{
			name:  "valid basic",
			line:  "415. Apple",
			want:  Record{Number: 415, Text: "Apple", Raw: "415. Apple"},
			valid: true,
		},
		{
			name:  "empty text is valid",
			line:  "7. ",
			want:  Record{Number: 7, Text: "", Raw: "7. "},
			valid: true,
		},
		{
			name:  "negative number",
			line:  "-1. Ant",
			want:  Record{Number: -1, Text: "Ant", Raw: "-1. Ant"},
			valid: true,
		},
		{
			name:  "separator inside text is preserved",
			line:  "3. a. b. c",
			want:  Record{Number: 3, Text: "a. b. c", Raw: "3. a. b. c"},
			valid: true,
		},
		{
			name:  "missing separator",
			line:  "invalid line format",
			valid: false,
		},
		{
			name:  "space without period",
			line:  "100 Apple",
			valid: false,
		},
		{
			name:  "empty line",
			line:  "",
			valid: false,
		},
		{
			name:  "whitespace only",
			line:  "   ",
			valid: false,
		},
		{
			name:  "separator at index 0",
			line:  ". leading separator",
			valid: false,
		},
		{
			name:  "non-numeric prefix",
			line:  "abc. Apple",
			valid: false,
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Parse(tc.line)
			assert.Equal(t, ok, tc.valid)
			if tc.valid {
				assert.DeepEqual(t, got, tc.want)
			}
		})
	}
}

func TestNewFormatsCanonicalRaw(t *testing.T) {
	t.Parallel()
	r := New(42, "Banana")
	assert.Equal(t, r.Raw, "42. Banana")
}

func TestLessOrdersByTextThenNumber(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name string
		a, b Record
		want bool
	}{
		{
			name: "different text",
			a:    New(1, "Apple"),
			b:    New(1, "Banana"),
			want: true,
		},
		{
			name: "same text, lower number first",
			a:    New(1, "Apple"),
			b:    New(2, "Apple"),
			want: true,
		},
		{
			name: "same text, higher number is not less",
			a:    New(2, "Apple"),
			b:    New(1, "Apple"),
			want: false,
		},
		{
			name: "equal records are not less",
			a:    New(1, "Apple"),
			b:    New(1, "Apple"),
			want: false,
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, Less(tc.a, tc.b), tc.want)
		})
	}
}

func TestCompareAgreesWithLess(t *testing.T) {
	t.Parallel()

	a := New(1, "Apple")
	b := New(1, "Banana")

	assert.Equal(t, Compare(a, b), -1)
	assert.Equal(t, Compare(b, a), 1)
	assert.Equal(t, Compare(a, a), 0)
}

func TestEstimateSize(t *testing.T) {
	t.Parallel()
	r := New(1, "Apple")
	assert.Equal(t, EstimateSize(r), len(r.Raw)*2+8)
}

func TestSortStableUsesLessForTotalOrder(t *testing.T) {
	t.Parallel()

	records := []Record{
		New(2, "Banana"),
		New(1, "Apple"),
		New(1, "Banana"),
		New(3, "Apple"),
	}
	sort.SliceStable(records, func(i, j int) bool { return Less(records[i], records[j]) })

	want := []Record{
		New(1, "Apple"),
		New(3, "Apple"),
		New(1, "Banana"),
		New(2, "Banana"),
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}
