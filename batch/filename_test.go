package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilename(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		chapter int
		ok      bool
	}{
		{"JHN03.htm", "JHN", 3, true},
		{"GEN01.htm", "GEN", 1, true},
		{"1CH01.htm", "1CH", 1, true},
		{"2CO13.htm", "2CO", 13, true},
		{"PSA001.htm", "PSA", 1, true},
		{"PSA119.htm", "PSA", 119, true},
		{"GEN00.htm", "", 0, false},
		{"GEN.htm", "", 0, false},
		{"gen01.htm", "", 0, false},
		{"readme.txt", "", 0, false},
		{"GEN01.html", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, chapter, ok := ParseFilename(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.chapter, chapter)
		})
	}
}
