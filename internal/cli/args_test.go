package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "flat invocation implies extract",
			args: []string{"-ih", "big.csv", "-hh", "-hc", "id", "-in", "ids.txt", "-nc", "0"},
			want: []string{"extract", "--input_haystack", "big.csv", "--haystack_header", "--haystack_col", "id", "--input_needle", "ids.txt", "--needle_col", "0"},
		},
		{
			name: "equals form",
			args: []string{"extract", "-hd=tab", "-sd=;"},
			want: []string{"extract", "--haystack_delim=tab", "--split_delim=;"},
		},
		{
			name: "explicit extract kept",
			args: []string{"extract", "-sc", "8", "-nd", "tab", "-nh"},
			want: []string{"extract", "--split_col", "8", "--needle_delim", "tab", "--needle_header"},
		},
		{
			name: "global flag first",
			args: []string{"-v", "--input_haystack", "h.csv"},
			want: []string{"extract", "-v", "--input_haystack", "h.csv"},
		},
		{
			name: "other commands untouched",
			args: []string{"run", "job.yaml", "-o", "x.csv"},
			want: []string{"run", "job.yaml", "-o", "x.csv"},
		},
		{
			name: "help untouched",
			args: []string{"--help"},
			want: []string{"--help"},
		},
		{
			name: "after double dash",
			args: []string{"inspect", "--", "-ih"},
			want: []string{"inspect", "--", "-ih"},
		},
		{
			name: "empty",
			args: []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeArgs(tt.args))
		})
	}
}
