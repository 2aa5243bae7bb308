package formatter_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-nyml/ast"
	"github.com/KimNorgaard/go-nyml/internal/formatter"
)

var documentCases = []struct {
	name             string
	doc              *ast.Document
	expectedDefault  string
	expectedIndented string // 4 spaces
}{
	{
		name:             "Empty",
		doc:              &ast.Document{},
		expectedDefault:  "",
		expectedIndented: "",
	},
	{
		name: "Scalars",
		doc: &ast.Document{Entries: []*ast.Entry{
			{Key: "name", Value: "demo"},
			{Key: "empty", Value: ""},
		}},
		expectedDefault:  "name: demo\nempty:\n",
		expectedIndented: "name: demo\nempty:\n",
	},
	{
		name: "Nested",
		doc: &ast.Document{Entries: []*ast.Entry{
			{Key: "server", Children: []*ast.Entry{
				{Key: "host", Value: "localhost"},
				{Key: "tls", Children: []*ast.Entry{{Key: "on", Value: "true"}}},
			}},
		}},
		expectedDefault:  "server:\n  host: localhost\n  tls:\n    on: true\n",
		expectedIndented: "server:\n    host: localhost\n    tls:\n        on: true\n",
	},
	{
		name: "Multiline",
		doc: &ast.Document{Entries: []*ast.Entry{
			{Key: "text", Value: "line1\n\n  line2\n"},
			{Key: "next", Value: "v"},
		}},
		expectedDefault:  "text: |\n  line1\n\n    line2\nnext: v\n",
		expectedIndented: "text: |\n    line1\n\n      line2\nnext: v\n",
	},
	{
		name: "Quoted keys",
		doc: &ast.Document{Entries: []*ast.Entry{
			{Key: "http:routes", Value: "/api"},
			{Key: `say "hi"`, Value: "x", QuotedKey: true},
			{Key: "# hash", Value: "y"},
		}},
		expectedDefault:  "\"http:routes\": /api\n\"say \\\"hi\\\"\": x\n\"# hash\": y\n",
		expectedIndented: "\"http:routes\": /api\n\"say \\\"hi\\\"\": x\n\"# hash\": y\n",
	},
}

func TestFormatDocument(t *testing.T) {
	for _, tt := range documentCases {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, formatter.New(&buf, nil).FormatDocument(tt.doc))
			require.Equal(t, tt.expectedDefault, buf.String())

			buf.Reset()
			four := 4
			require.NoError(t, formatter.New(&buf, &four).FormatDocument(tt.doc))
			require.Equal(t, tt.expectedIndented, buf.String())
		})
	}
}

func TestFormatList(t *testing.T) {
	list := ast.List{
		&ast.KeyedItem{Key: "name", Value: "demo"},
		&ast.KeyedItem{Key: "empty"},
		&ast.KeyedItem{Key: "items", List: ast.List{
			&ast.PlainString{Text: "value1"},
			&ast.KeyedItem{Key: "child", Value: "a"},
			&ast.KeyedItem{Key: "doc", Value: "x\ny\n"},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, formatter.New(&buf, nil).FormatList(list))
	require.Equal(t, "name: demo\nempty: |\nitems:\n  value1\n  child: a\n  doc: |\n    x\n    y\n", buf.String())
}

func TestFormatList_EmptyList(t *testing.T) {
	var buf bytes.Buffer
	err := formatter.New(&buf, nil).FormatList(ast.List{&ast.KeyedItem{Key: "items", List: ast.List{}}})
	require.Error(t, err)
	require.Contains(t, err.Error(), `empty list for key "items"`)
}

func TestFormatKey(t *testing.T) {
	tests := []struct {
		key      string
		quoted   bool
		expected string
	}{
		{"plain", false, "plain"},
		{"with space", false, "with space"},
		{"plain", true, `"plain"`},
		{"a:b", false, `"a:b"`},
		{`back\slash`, false, `"back\\slash"`},
		{" padded", false, `" padded"`},
		{"", false, `""`},
		{`"lead`, false, `"\"lead"`},
	}
	for _, tt := range tests {
		got, err := formatter.FormatKey(tt.key, tt.quoted)
		require.NoError(t, err)
		require.Equal(t, tt.expected, got)
	}

	_, err := formatter.FormatKey("a\nb", false)
	require.Error(t, err)
}
