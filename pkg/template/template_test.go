package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	captures := []string{"img_001.jpg", "001"}

	tests := []struct {
		name     string
		tmpl     string
		captures []string
		want     string
	}{
		{
			name:     "literal text only",
			tmpl:     "unchanged.txt",
			captures: captures,
			want:     "unchanged.txt",
		},
		{
			name:     "single placeholder",
			tmpl:     "image-#1.jpg",
			captures: captures,
			want:     "image-001.jpg",
		},
		{
			name:     "whole match placeholder",
			tmpl:     "copy of #0",
			captures: captures,
			want:     "copy of img_001.jpg",
		},
		{
			name:     "adjacent placeholders",
			tmpl:     "#1#1",
			captures: captures,
			want:     "001001",
		},
		{
			name:     "hash without digits is literal",
			tmpl:     "a#b",
			captures: captures,
			want:     "a#b",
		},
		{
			name:     "hash at end is literal",
			tmpl:     "a#",
			captures: captures,
			want:     "a#",
		},
		{
			name:     "out of range index kept literal",
			tmpl:     "x#5y",
			captures: captures,
			want:     "x#5y",
		},
		{
			name:     "multi digit index",
			tmpl:     "#10",
			captures: []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "ten"},
			want:     "ten",
		},
		{
			name:     "empty capture for non-participating group",
			tmpl:     "a#1b",
			captures: []string{"ab", ""},
			want:     "ab",
		},
		{
			name:     "capture looking like a placeholder is not re-expanded",
			tmpl:     "#1",
			captures: []string{"whole", "#0"},
			want:     "#0",
		},
		{
			name:     "screenshot example",
			tmpl:     "Screenshot_#1_(#2#3:#4#5:#6#7).png",
			captures: []string{"Screenshot from 2025-05-10 22-52-47.png", "2025-05-10", "2", "2", "5", "2", "4", "7"},
			want:     "Screenshot_2025-05-10_(22:52:47).png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand(tt.tmpl, tt.captures))
		})
	}
}

func TestMaxIndex(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		want int
	}{
		{"no placeholders", "plain.txt", -1},
		{"single", "#1.txt", 1},
		{"highest wins", "#2-#7-#3", 7},
		{"whole match only", "#0", 0},
		{"literal hash ignored", "a#b#", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxIndex(tt.tmpl))
		})
	}
}
