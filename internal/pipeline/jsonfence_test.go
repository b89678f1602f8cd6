package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare object",
			in:   `{"a":1}`,
			want: `{"a":1}`,
		},
		{
			name: "fenced with language tag",
			in:   "```json\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "fenced without language tag",
			in:   "```\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "prose around object",
			in:   "Here is the resume:\n{\"a\":1}\nHope this helps!",
			want: `{"a":1}`,
		},
		{
			name: "leading and trailing whitespace",
			in:   "  \n{\"a\":1}\n  ",
			want: `{"a":1}`,
		},
		{
			name: "nested braces",
			in:   "```json\n{\"a\":{\"b\":2}}\n```",
			want: `{"a":{"b":2}}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractJSON(tc.in))
		})
	}
}
