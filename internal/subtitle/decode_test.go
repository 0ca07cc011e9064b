package subtitle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{name: "plain utf8", data: []byte("[00:01.00]你好"), want: "[00:01.00]你好"},
		{name: "utf8 bom stripped", data: append([]byte{0xEF, 0xBB, 0xBF}, []byte("[00:01.00]a")...), want: "[00:01.00]a"},
		{name: "utf16 le with bom", data: []byte{0xFF, 0xFE, '[', 0, 'a', 0, ']', 0}, want: "[a]"},
		{name: "utf16 be with bom", data: []byte{0xFE, 0xFF, 0, '[', 0, 'b', 0, ']'}, want: "[b]"},
		{name: "gbk without bom", data: append([]byte("[00:01.00]"), 0xC4, 0xE3, 0xBA, 0xC3), want: "[00:01.00]你好"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
