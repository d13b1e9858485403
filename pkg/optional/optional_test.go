package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	CorretorId Optional[uint]   `json:"corretorId"`
	Ids        Optional[[]uint] `json:"ids"`
}

func TestUnmarshalTriState(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantUnset bool
		wantNull  bool
		wantSet   bool
		wantValue uint
	}{
		{name: "omitted", body: `{}`, wantUnset: true},
		{name: "explicit null", body: `{"corretorId": null}`, wantNull: true},
		{name: "value", body: `{"corretorId": 7}`, wantSet: true, wantValue: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))

			assert.Equal(t, tt.wantUnset, p.CorretorId.IsUnset())
			assert.Equal(t, tt.wantNull, p.CorretorId.IsNull())
			assert.Equal(t, tt.wantSet, p.CorretorId.IsSet())

			v, ok := p.CorretorId.Get()
			assert.Equal(t, tt.wantSet, ok)
			assert.Equal(t, tt.wantValue, v)
		})
	}
}

func TestUnmarshalEmptySliceIsSet(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"ids": []}`), &p))

	ids, ok := p.Ids.Get()
	require.True(t, ok, "an empty array is present, not unset")
	assert.Empty(t, ids)
}

func TestUnmarshalBadValue(t *testing.T) {
	var p payload
	err := json.Unmarshal([]byte(`{"corretorId": "sete"}`), &p)
	assert.Error(t, err)
}

func TestConstructors(t *testing.T) {
	v := Value("x")
	assert.True(t, v.IsSet())
	assert.True(t, v.Present())
	assert.Equal(t, "x", v.ValueOrZero())

	n := Null[string]()
	assert.True(t, n.IsNull())
	assert.True(t, n.Present())
	assert.False(t, n.IsSet())

	var zero Optional[string]
	assert.True(t, zero.IsUnset())
	assert.False(t, zero.Present())
}

func TestMarshal(t *testing.T) {
	out, err := json.Marshal(Value(uint(3)))
	require.NoError(t, err)
	assert.Equal(t, "3", string(out))

	out, err = json.Marshal(Null[uint]())
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
