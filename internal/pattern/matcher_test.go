package pattern

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		include []string
		exclude []string
		wantErr bool
	}{
		{name: "single include", include: []string{"log"}},
		{name: "include and exclude", include: []string{"log"}, exclude: []string{"old"}},
		{name: "no include", include: nil, wantErr: true},
		{name: "empty include pattern", include: []string{"log", ""}, wantErr: true},
		{name: "empty exclude pattern", include: []string{"log"}, exclude: []string{""}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.include, tt.exclude, false)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidPattern)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			for _, p := range tt.include {
				assert.True(t, m.Matches("x"+p+"x"), p)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name          string
		include       []string
		exclude       []string
		caseSensitive bool
		candidate     string
		want          bool
	}{
		{name: "substring hit", include: []string{"report"}, candidate: "old_report.txt", want: true},
		{name: "no hit", include: []string{"report"}, candidate: "summary.txt", want: false},
		{name: "whole name", include: []string{"report"}, candidate: "report", want: true},
		{name: "pattern longer than name", include: []string{"reports"}, candidate: "report", want: false},
		{name: "case folded", include: []string{"Report"}, candidate: "REPORT.csv", want: true},
		{name: "case sensitive miss", include: []string{"report"}, caseSensitive: true, candidate: "REPORT.csv", want: false},
		{name: "case sensitive hit", include: []string{"REPORT"}, caseSensitive: true, candidate: "REPORT.csv", want: true},
		{name: "second include", include: []string{"alpha", "beta"}, candidate: "xbetax", want: true},
		{name: "exclude wins", include: []string{"log"}, exclude: []string{"old"}, candidate: "old_log.txt", want: false},
		{name: "exclude absent", include: []string{"log"}, exclude: []string{"old"}, candidate: "log1.txt", want: true},
		{name: "exclude folded", include: []string{"log"}, exclude: []string{"OLD"}, candidate: "Old_log.txt", want: false},
		{name: "exclude after include", include: []string{"log"}, exclude: []string{"bak"}, candidate: "log.bak", want: false},
		{name: "exclude nested in include", include: []string{"catalog"}, exclude: []string{"tal"}, candidate: "catalog", want: false},
		{name: "overlapping patterns", include: []string{"she", "he", "hers"}, candidate: "ushers", want: true},
		{name: "failure link reuse", include: []string{"abcd", "bcx"}, candidate: "abcx", want: true},
		{name: "non-ascii bytes", include: []string{"Ä"}, candidate: "Äpfel", want: true},
		{name: "non-ascii not folded", include: []string{"ä"}, candidate: "Äpfel", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.include, tt.exclude, tt.caseSensitive)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Matches(tt.candidate))
		})
	}
}

func TestMatchesAgreesWithNaiveScan(t *testing.T) {
	include := []string{"ab", "bab", "cab", "a", "bc"}
	exclude := []string{"cc", "bb"}
	names := []string{"", "a", "b", "abc", "cabab", "bbc", "xxcc", "ccab", "zzz", "babab", "cbcb"}

	m, err := New(include, exclude, true)
	require.NoError(t, err)

	for _, name := range names {
		want := false
		for _, p := range include {
			if strings.Contains(name, p) {
				want = true
			}
		}
		for _, p := range exclude {
			if strings.Contains(name, p) {
				want = false
			}
		}
		assert.Equal(t, want, m.Matches(name), "name %q", name)
	}
}

func TestMatchesCaseInsensitiveInvariant(t *testing.T) {
	m, err := New([]string{"ReadMe", "cfg"}, []string{"TMP"}, false)
	require.NoError(t, err)

	names := []string{"readme.md", "README.MD", "Config.CFG", "ReadMe.tmp", "notes.txt", "x_CfG_y"}
	for _, name := range names {
		want := m.Matches(name)
		assert.Equal(t, want, m.Matches(strings.ToUpper(name)), "upper %q", name)
		assert.Equal(t, want, m.Matches(strings.ToLower(name)), "lower %q", name)
		assert.Equal(t, want, m.Matches(swapCase(name)), "swapped %q", name)
	}
}

func swapCase(s string) string {
	b := []byte(s)
	for i, c := range b {
		switch {
		case 'a' <= c && c <= 'z':
			b[i] = c - 32
		case 'A' <= c && c <= 'Z':
			b[i] = c + 32
		}
	}
	return string(b)
}

func TestHighlight(t *testing.T) {
	tests := []struct {
		name          string
		include       []string
		caseSensitive bool
		candidate     string
		want          []Span
	}{
		{
			name:      "prefix match suffix",
			include:   []string{"report"},
			candidate: "old_report.txt",
			want:      []Span{{Text: "old_"}, {Text: "report", Match: true}, {Text: ".txt"}},
		},
		{
			name:      "match at start",
			include:   []string{"log"},
			candidate: "log1.txt",
			want:      []Span{{Text: "log", Match: true}, {Text: "1.txt"}},
		},
		{
			name:      "match at end",
			include:   []string{"txt"},
			candidate: "a.txt",
			want:      []Span{{Text: "a."}, {Text: "txt", Match: true}},
		},
		{
			name:      "keeps original case",
			include:   []string{"report"},
			candidate: "REPORT.csv",
			want:      []Span{{Text: "REPORT", Match: true}, {Text: ".csv"}},
		},
		{
			name:      "leftmost of several patterns",
			include:   []string{"csv", "rep"},
			candidate: "rep.csv",
			want:      []Span{{Text: "rep", Match: true}, {Text: ".csv"}},
		},
		{
			name:      "longer pattern ending later starts earlier",
			include:   []string{"bcd", "abcdef"},
			candidate: "xabcdefx",
			want:      []Span{{Text: "x"}, {Text: "abcdef", Match: true}, {Text: "x"}},
		},
		{
			name:      "longest at same offset",
			include:   []string{"ab", "abc"},
			candidate: "abcd",
			want:      []Span{{Text: "abc", Match: true}, {Text: "d"}},
		},
		{
			name:      "no occurrence",
			include:   []string{"zzz"},
			candidate: "report.txt",
			want:      []Span{{Text: "report.txt"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.include, nil, tt.caseSensitive)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Highlight(tt.candidate))
		})
	}
}

func BenchmarkMatches(b *testing.B) {
	include := make([]string, 0, 64)
	for i := 0; i < 64; i++ {
		include = append(include, strings.Repeat(string(rune('a'+i%26)), 1+i%5)+"_x")
	}
	m, err := New(include, []string{"tmp", "bak"}, false)
	if err != nil {
		b.Fatal(err)
	}
	name := "some_fairly_long_file_name_without_any_hit.go"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Matches(name)
	}
}
