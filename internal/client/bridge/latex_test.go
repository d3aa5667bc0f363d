package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name        string
		latex       string
		wantName    string
		wantPayload string
		wantErr     bool
	}{
		{name: "numbers", latex: `d_{ata}=\left[1,2,3\right]`, wantName: "d_{ata}", wantPayload: "1,2,3"},
		{name: "empty list", latex: `d_{ata}=\left[\right]`, wantName: "d_{ata}", wantPayload: ""},
		{name: "spaces in payload kept", latex: `d_{ata} = \left[1, 2\right]`, wantName: "d_{ata}", wantPayload: "1, 2"},
		{name: "backslash in payload", latex: `d_{ata}=\left[\frac{1}{2},3\right]`, wantName: "d_{ata}", wantPayload: `\frac{1}{2},3`},
		{name: "short subscript", latex: `x_1=\left[4\right]`, wantName: "x_1", wantPayload: "4"},
		{name: "not a list", latex: `d_{ata}=5`, wantErr: true},
		{name: "missing close", latex: `d_{ata}=\left[1,2`, wantErr: true},
		{name: "trailing text", latex: `d_{ata}=\left[1\right]+1`, wantErr: true},
		{name: "nested bracket", latex: `d_{ata}=\left[[1]\right]`, wantErr: true},
		{name: "empty", latex: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, payload, err := parseList(tt.latex)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantPayload, payload)
		})
	}
}

func TestFormatList_RoundTrip(t *testing.T) {
	payloads := []string{"1,2,3", "", "0", "1.5,-2,1e3", " a , b ", `x\to y`}

	for _, payload := range payloads {
		name, got, err := parseList(formatList("d_{ata}", payload))
		require.NoError(t, err, payload)
		assert.Equal(t, "d_{ata}", name)
		assert.Equal(t, payload, got)
	}
}

func TestParseManifest(t *testing.T) {
	def, fields, err := parseManifest(`f_{save}\left(\right)=d_{ata}\to\left[m_{oney},l_{evel}, x_1\right]`)
	require.NoError(t, err)
	assert.Equal(t, "f_{save}", def.Func)
	assert.Equal(t, "d_{ata}", def.Target)
	assert.Equal(t, []string{"m_{oney}", "l_{evel}", "x_1"}, fields)

	_, fields, err = parseManifest(`f_{save}\left(\right)=d_{ata}\to\left[\right]`)
	require.NoError(t, err)
	assert.Empty(t, fields)

	_, _, err = parseManifest(`f_{save}=d_{ata}`)
	assert.Error(t, err)

	_, _, err = parseManifest(`d_{ata}=\left[1,2\right]`)
	assert.Error(t, err)
}

func TestFormatManifest_RoundTrip(t *testing.T) {
	latex := formatManifest("f_{save}", "d_{ata}", []string{"a", "b_{c}"})
	assert.Equal(t, `f_{save}\left(\right)=d_{ata}\to\left[a,b_{c}\right]`, latex)

	_, fields, err := parseManifest(latex)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b_{c}"}, fields)
}

func TestSplitAssignment(t *testing.T) {
	lhs, rhs, ok := splitAssignment("m_{oney}=12")
	assert.True(t, ok)
	assert.Equal(t, "m_{oney}", lhs)
	assert.Equal(t, "12", rhs)

	lhs, rhs, ok = splitAssignment("a=b=c")
	assert.True(t, ok)
	assert.Equal(t, "a", lhs)
	assert.Equal(t, "b=c", rhs)

	_, _, ok = splitAssignment(`\sin(x)`)
	assert.False(t, ok)

	assert.Equal(t, "a=1", formatAssignment("a", "1"))
}
