package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTree(t *testing.T) {
	tree, err := ParseTree([]byte(`{"a": {"b": "leaf", "c": {"d": "deep"}}, "top": "x"}`))
	require.NoError(t, err)

	got, ok := tree.Lookup("a.c.d")
	assert.True(t, ok)
	assert.Equal(t, "deep", got)

	got, ok = tree.Lookup("top")
	assert.True(t, ok)
	assert.Equal(t, "x", got)

	_, ok = tree.Lookup("a")
	assert.False(t, ok)
	_, ok = tree.Lookup("a.missing")
	assert.False(t, ok)
	_, ok = tree.Lookup("")
	assert.False(t, ok)
}

func TestParseTree_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"number leaf", `{"a": 1}`},
		{"array leaf", `{"a": ["x"]}`},
		{"null leaf", `{"a": {"b": null}}`},
		{"bool leaf", `{"a": true}`},
		{"root array", `["a"]`},
		{"invalid json", `{"a": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTree([]byte(tt.input))
			require.Error(t, err)
		})
	}
}

func TestParseTree_ErrorNamesPath(t *testing.T) {
	_, err := ParseTree([]byte(`{"quiz": {"labels": {"score": 3}}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quiz.labels.score")
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		params  Params
		want    string
		wantErr bool
	}{
		{"simple", "Hi {name}", Params{"name": "Ada"}, "Hi Ada", false},
		{"repeated", "{x}-{x}", Params{"x": 1}, "1-1", false},
		{"escaped braces", "{{literal}} {v}", Params{"v": "ok"}, "{literal} ok", false},
		{"format verb", "{p:.1f}%", Params{"p": 66.666}, "66.7%", false},
		{"no placeholders", "plain", Params{"x": 1}, "plain", false},
		{"unknown placeholder", "Hi {who}", Params{"name": "Ada"}, "Hi {who}", true},
		{"unterminated", "Hi {name", Params{"name": "Ada"}, "Hi {name", true},
		{"stray close", "Hi } there", Params{"name": "Ada"}, "Hi } there", true},
		{"int widened for float verb", "{p:.1f}%", Params{"p": 50}, "50.0%", false},
		{"zero padded width", "[{n:03d}]", Params{"n": 7}, "[007]", false},
		{"width on int", "[{n:3}]", Params{"n": 5}, "[  5]", false},
		{"width on string pads right", "[{s:4}]", Params{"s": "ab"}, "[ab  ]", false},
		{"string with float verb", "{p:.1f}%", Params{"p": "50"}, "{p:.1f}%", true},
		{"float with int verb", "{n:d}", Params{"n": 1.5}, "{n:d}", true},
		{"alignment spec", "{n:>3}", Params{"n": 5}, "{n:>3}", true},
		{"grouping spec", "{n:,}", Params{"n": 5000}, "{n:,}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.tmpl, tt.params)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDescriptions(t *testing.T) {
	d, err := ParseDescriptions([]byte(`{"editing": {"x": "Delete character"}}`))
	require.NoError(t, err)
	assert.Equal(t, "Delete character", d["editing"]["x"])

	_, err = ParseDescriptions([]byte(`{"editing": {"x": 1}}`))
	require.Error(t, err)
}

func TestParseParam(t *testing.T) {
	assert.Equal(t, 50, ParseParam("50"))
	assert.Equal(t, 66.5, ParseParam("66.5"))
	assert.Equal(t, "vim", ParseParam("vim"))
}
