package dmp_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pgavlin/dmp"
	"github.com/pgavlin/text"
)

func diffSize(t testing.TB, diffs []dmp.Diff) int {
	type diffJSON struct {
		Op   int8   `json:"op,omitempty"`
		Text string `json:"text,omitempty"`
	}

	diffsJSON := make([]diffJSON, len(diffs))
	for i, d := range diffs {
		diffsJSON[i] = diffJSON{Op: int8(d.Op), Text: d.Text}
	}

	bytes, err := json.Marshal(diffsJSON)
	if err != nil {
		t.Fatalf("marshaling diffs: %v", err)
	}

	return len(bytes)
}

func benchmarkDiff[T text.Text](b *testing.B, t1, t2 T) {
	b.Run("strings", func(b *testing.B) {
		benchmarkDiffCore(b, string(t1), string(t2))
	})

	b.Run("bytes", func(b *testing.B) {
		benchmarkDiffCore(b, []byte(t1), []byte(t2))
	})
}

func benchmarkDiffCore[T text.Text](b *testing.B, t1, t2 T) {
	cfg := dmp.DefaultConfig()
	cfg.Timeout = 0
	d, err := dmp.New(cfg)
	if err != nil {
		b.Fatal(err)
	}

	b.Run("Main", func(b *testing.B) {
		diffs, _ := d.Main(string(t1), string(t2), false)
		b.ReportMetric(float64(diffSize(b, diffs)), "bytes")
		for i := 0; i < b.N; i++ {
			d.Main(string(t1), string(t2), false)
		}
	})

	b.Run("MainLines", func(b *testing.B) {
		diffs, _ := d.Main(string(t1), string(t2), true)
		b.ReportMetric(float64(diffSize(b, diffs)), "bytes")
		for i := 0; i < b.N; i++ {
			d.Main(string(t1), string(t2), true)
		}
	})

	b.Run("Text", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			dmp.Text(t1, t2)
		}
	})

	b.Run("CleanupSemantic", func(b *testing.B) {
		diffs, _ := d.Main(string(t1), string(t2), false)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			dmp.CleanupSemantic(diffs)
		}
	})

	b.Run("Apply", func(b *testing.B) {
		edits, _ := dmp.TextEdits(t1, t2)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			dmp.Apply(t1, edits)
		}
	})
}

func BenchmarkDiffUnrelated(b *testing.B) {
	s1 := "`Twas brillig, and the slithy toves\nDid gyre and gimble in the wabe:\nAll mimsy were the borogoves,\nAnd the mome raths outgrabe.\n"
	s2 := "I am the very model of a modern major general,\nI've information vegetable, animal, and mineral,\nI know the kings of England, and I quote the fights historical,\nFrom Marathon to Waterloo, in order categorical.\n"

	// Expand the text.
	for x := 0; x < 4; x++ {
		s1, s2 = s1+s1, s2+s2
	}

	benchmarkDiff(b, s1, s2)
}

func BenchmarkDiffEdited(b *testing.B) {
	var base strings.Builder
	for i := 0; i < 500; i++ {
		base.WriteString("line ")
		base.WriteString(strings.Repeat("x", i%17))
		base.WriteString("\n")
	}
	s1 := base.String()
	s2 := strings.ReplaceAll(s1, "xxxxx\n", "xxyxx\n")

	benchmarkDiff(b, s1, s2)
}

func BenchmarkBisectDeadline(b *testing.B) {
	d, err := dmp.New(dmp.DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}
	s1 := strings.Repeat("abcdefghij", 1000)
	s2 := strings.Repeat("jihgfedcba", 1000)
	for i := 0; i < b.N; i++ {
		d.Bisect(s1, s2, time.Now().Add(10*time.Millisecond))
	}
}
