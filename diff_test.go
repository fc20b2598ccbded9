package dmp_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/pgavlin/dmp"
	"github.com/pgavlin/dmp/difftest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unlimited(t testing.TB) *dmp.Differ {
	cfg := dmp.DefaultConfig()
	cfg.Timeout = 0
	d, err := dmp.New(cfg)
	require.NoError(t, err)
	return d
}

func TestDiffMain(t *testing.T) {
	d := unlimited(t)
	difftest.DiffTest(t, func(a, b string) ([]dmp.Diff, error) {
		return d.Main(a, b, false)
	})
}

func TestApply(t *testing.T) {
	d := unlimited(t)
	for _, tc := range difftest.TestCases {
		t.Run(tc.Name, func(t *testing.T) {
			diffs, err := d.Main(tc.In, tc.Out, false)
			require.NoError(t, err)

			got, err := dmp.Apply(tc.In, dmp.Edits(diffs))
			require.NoError(t, err)
			assert.Equal(t, tc.Out, got)
		})
	}
}

func TestText(t *testing.T) {
	for _, tc := range difftest.TestCases {
		t.Run(tc.Name, func(t *testing.T) {
			diffs, err := dmp.Text(tc.In, []byte(tc.Out))
			require.NoError(t, err)
			difftest.Check(t, tc.In, tc.Out, diffs)

			edits, err := dmp.TextEdits([]byte(tc.In), tc.Out)
			require.NoError(t, err)
			got, err := dmp.Apply(tc.In, edits)
			require.NoError(t, err)
			assert.Equal(t, tc.Out, got)
		})
	}
}

func TestApplyEdits(t *testing.T) {
	for _, tc := range difftest.TestCases {
		if tc.Edits == nil {
			continue
		}
		t.Run(tc.Name, func(t *testing.T) {
			got, err := dmp.Apply(tc.In, tc.Edits)
			require.NoError(t, err)
			assert.Equal(t, tc.Out, got)

			if tc.LineEdits != nil {
				got, err := dmp.Apply(tc.In, tc.LineEdits)
				require.NoError(t, err)
				assert.Equal(t, tc.Out, got)
			}
			if !tc.NoDiff {
				assert.Equal(t, tc.Edits, dmp.Edits(tc.Diffs))
			}
		})
	}
}

func TestApplyErrors(t *testing.T) {
	_, err := dmp.Apply("abc", []dmp.Edit[string]{{Start: 2, End: 4}})
	assert.EqualError(t, err, `edit {Start:2,End:4,New:""} is out of bounds for 3 bytes`)

	_, err = dmp.Apply("abcdef", []dmp.Edit[string]{{Start: 0, End: 3}, {Start: 2, End: 4}})
	assert.EqualError(t, err, `edit {Start:2,End:4,New:""} overlaps a previous edit ending at 3`)

	_, err = dmp.LineEdits("abc", []dmp.Edit[string]{{Start: 2, End: 4}})
	assert.Error(t, err)
}

func TestLineEdits(t *testing.T) {
	for _, tc := range difftest.TestCases {
		t.Run(tc.Name, func(t *testing.T) {
			// Without explicit line edits, the edits are already aligned.
			want := tc.LineEdits
			if want == nil {
				want = tc.Edits
			}
			got, err := dmp.LineEdits(tc.In, tc.Edits)
			require.NoError(t, err)
			assert.Equal(t, want, got)

			edits := make([]dmp.Edit[[]byte], len(tc.Edits))
			for i, e := range tc.Edits {
				edits[i] = dmp.Edit[[]byte]{Start: e.Start, End: e.End, New: []byte(e.New)}
			}
			gotBytes, err := dmp.LineEdits([]byte(tc.In), edits)
			require.NoError(t, err)
			require.Len(t, gotBytes, len(want))
			for i, e := range gotBytes {
				assert.Equal(t, want[i].String(), e.String())
			}
		})
	}
}

// Widening the edits of any script keeps its result and lands every edit
// on line boundaries.
func TestLineEditsFromMain(t *testing.T) {
	d := unlimited(t)
	for _, tc := range difftest.TestCases {
		t.Run(tc.Name, func(t *testing.T) {
			diffs, err := d.Main(tc.In, tc.Out, true)
			require.NoError(t, err)

			edits, err := dmp.LineEdits(tc.In, dmp.Edits(diffs))
			require.NoError(t, err)
			for _, e := range edits {
				assert.True(t, e.Start == 0 || tc.In[e.Start-1] == '\n', "%v starts mid-line", e)
				assert.True(t, e.End == len(tc.In) || tc.In[e.End-1] == '\n', "%v ends mid-line", e)
			}

			got, err := dmp.Apply(tc.In, edits)
			require.NoError(t, err)
			assert.Equal(t, tc.Out, got)
		})
	}
}

func TestSortEdits(t *testing.T) {
	edits := []dmp.Edit[string]{
		{Start: 4, End: 5, New: "x"},
		{Start: 1, End: 2},
		{Start: 1, End: 1, New: "a"},
		{Start: 1, End: 1, New: "b"},
	}
	dmp.SortEdits(edits)
	assert.Equal(t, []dmp.Edit[string]{
		{Start: 1, End: 1, New: "a"},
		{Start: 1, End: 1, New: "b"},
		{Start: 1, End: 2},
		{Start: 4, End: 5, New: "x"},
	}, edits)

	got, err := dmp.Apply("012345", edits)
	require.NoError(t, err)
	assert.Equal(t, "0ab23x5", got)
}

func TestEdits(t *testing.T) {
	diffs := []dmp.Diff{
		{dmp.Equal, "a"},
		{dmp.Delete, "bc"},
		{dmp.Insert, "x"},
		{dmp.Equal, "d"},
		{dmp.Insert, "yz"},
	}
	assert.Equal(t, []dmp.Edit[string]{
		{Start: 1, End: 3, New: "x"},
		{Start: 4, End: 4, New: "yz"},
	}, dmp.Edits(diffs))
	assert.Nil(t, dmp.Edits([]dmp.Diff{{dmp.Equal, "abc"}}))
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "Delete", dmp.Delete.String())
	assert.Equal(t, "Equal", dmp.Equal.String())
	assert.Equal(t, "Insert", dmp.Insert.String())
	assert.Equal(t, "Op(7)", dmp.Op(7).String())
	assert.Equal(t, `{Insert,"a\n"}`, dmp.Diff{dmp.Insert, "a\n"}.String())
}

func TestText1Text2(t *testing.T) {
	diffs := []dmp.Diff{
		{dmp.Equal, "jump"},
		{dmp.Delete, "s"},
		{dmp.Insert, "ed"},
		{dmp.Equal, " over "},
		{dmp.Delete, "the"},
		{dmp.Insert, "a"},
		{dmp.Equal, " lazy"},
	}
	assert.Equal(t, "jumps over the lazy", dmp.Text1(diffs))
	assert.Equal(t, "jumped over a lazy", dmp.Text2(diffs))
}

func TestLevenshtein(t *testing.T) {
	for _, tc := range []struct {
		name     string
		diffs    []dmp.Diff
		expected int
	}{
		{"trailing equality", []dmp.Diff{{dmp.Delete, "abc"}, {dmp.Insert, "1234"}, {dmp.Equal, "xyz"}}, 4},
		{"leading equality", []dmp.Diff{{dmp.Equal, "xyz"}, {dmp.Delete, "abc"}, {dmp.Insert, "1234"}}, 4},
		{"middle equality", []dmp.Diff{{dmp.Delete, "abc"}, {dmp.Equal, "xyz"}, {dmp.Insert, "1234"}}, 7},
		{"bytes", []dmp.Diff{{dmp.Delete, "абв"}, {dmp.Insert, "1234"}}, 6},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, dmp.Levenshtein(tc.diffs))
		})
	}
}

func TestXIndex(t *testing.T) {
	for _, tc := range []struct {
		name     string
		diffs    []dmp.Diff
		loc      int
		expected int
	}{
		{"equality", []dmp.Diff{{dmp.Delete, "a"}, {dmp.Insert, "1234"}, {dmp.Equal, "xyz"}}, 2, 5},
		{"deletion", []dmp.Diff{{dmp.Equal, "a"}, {dmp.Delete, "1234"}, {dmp.Equal, "xyz"}}, 3, 1},
		{"past end", []dmp.Diff{{dmp.Equal, "ab"}, {dmp.Insert, "c"}}, 5, 6},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, dmp.XIndex(tc.diffs, tc.loc))
		})
	}
}

// randomText returns a text over a small alphabet so that random pairs share
// plenty of structure.
func randomText(rng *rand.Rand, n int, alphabet string) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}
	return b.String()
}

func TestMainOptimal(t *testing.T) {
	d := unlimited(t)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		a := randomText(rng, rng.Intn(50), "abc \n")
		b := randomText(rng, rng.Intn(50), "abc \n")
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			diffs, err := d.Main(a, b, false)
			require.NoError(t, err)
			difftest.Check(t, a, b, diffs)
			assert.Equal(t, len(a)+len(b)-2*difftest.LCS(a, b), difftest.EditLength(diffs), "%q -> %q: %v", a, b, diffs)
		})
	}
}

func TestMainReconstructs(t *testing.T) {
	d, err := dmp.New(dmp.DefaultConfig())
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	lines := []string{"alpha\n", "beta\n", "gamma\n", "\n", "delta epsilon\n", "zeta"}
	text := func() string {
		var b strings.Builder
		for i := rng.Intn(60); i > 0; i-- {
			b.WriteString(lines[rng.Intn(len(lines))])
		}
		return b.String()
	}
	for i := 0; i < 100; i++ {
		a, b := text(), text()
		for _, checkLines := range []bool{false, true} {
			diffs, err := d.Main(a, b, checkLines)
			require.NoError(t, err)
			difftest.Check(t, a, b, diffs)
		}
	}
}
