package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{name: "Zero", cents: 0, want: "0.00"},
		{name: "SubUnit", cents: 7, want: "0.07"},
		{name: "NoGrouping", cents: 99999, want: "999.99"},
		{name: "Thousands", cents: 125000, want: "1,250.00"},
		{name: "Millions", cents: 123456789, want: "1,234,567.89"},
		{name: "Negative", cents: -450075, want: "-4,500.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.cents))
		})
	}
}
