package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListValue(t *testing.T) {
	v, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = StringList{"Python", "Calculus"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["Python","Calculus"]`, v)
}

func TestStringListScan(t *testing.T) {
	tests := []struct {
		name    string
		src     interface{}
		want    StringList
		wantErr bool
	}{
		{name: "nil", src: nil, want: StringList{}},
		{name: "bytes", src: []byte(`["Go"]`), want: StringList{"Go"}},
		{name: "string", src: `["a","b"]`, want: StringList{"a", "b"}},
		{name: "empty", src: []byte{}, want: StringList{}},
		{name: "bad json", src: `{`, wantErr: true},
		{name: "bad type", src: 42, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			err := got.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
