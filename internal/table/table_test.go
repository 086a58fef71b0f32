package table_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Alia5/webkeys/internal/table"
	toml "github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

var recordA = table.Record{Scancode: 11, Key: "A", Code: "KeyA", ASCII: []int{65}}

func TestBuild(t *testing.T) {
	tbl := table.Build()
	require.Len(t, tbl.Keys, 163)
	for i, r := range tbl.Keys {
		assert.Equal(t, uint16(i+1), r.Scancode)
	}
	assert.Equal(t, recordA, tbl.Keys[10])
	assert.Equal(t, table.Record{Scancode: 62, Key: "Snapshot"}, tbl.Keys[61])
	assert.Equal(t, table.Record{Scancode: 124, Key: "Minus", Code: "Minus", ASCII: []int{63, 169, 173, 189}}, tbl.Keys[123])
}

func TestLookups(t *testing.T) {
	type testCase struct {
		name     string
		lookup   func() (table.Table, error)
		expected []table.Record
	}
	cases := []testCase{
		{name: "scancode", lookup: func() (table.Table, error) { return table.ByScancode(11) }, expected: []table.Record{recordA}},
		{name: "key", lookup: func() (table.Table, error) { return table.ByKey("A") }, expected: []table.Record{recordA}},
		{name: "ascii", lookup: func() (table.Table, error) { return table.ByASCII(65) }, expected: []table.Record{recordA}},
		{name: "code", lookup: func() (table.Table, error) { return table.ByCode("KeyA") }, expected: []table.Record{recordA}},
		{
			name:   "shared code",
			lookup: func() (table.Table, error) { return table.ByCode("Backquote") },
			expected: []table.Record{
				{Scancode: 113, Key: "Grave", Code: "Backquote", ASCII: []int{60, 163, 192, 223}},
				{Scancode: 115, Key: "Kanji", Code: "Backquote", ASCII: []int{244}},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := tc.lookup()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, tbl.Keys)
		})
	}
}

func TestLookupMisses(t *testing.T) {
	type testCase struct {
		name   string
		lookup func() (table.Table, error)
		msg    string
	}
	cases := []testCase{
		{name: "scancode zero", lookup: func() (table.Table, error) { return table.ByScancode(0) }, msg: "scancode SC0: not found"},
		{name: "scancode past max", lookup: func() (table.Table, error) { return table.ByScancode(9999) }, msg: "scancode SC9999: not found"},
		{name: "key", lookup: func() (table.Table, error) { return table.ByKey("Hyper") }, msg: `key "Hyper": not found`},
		{name: "ascii", lookup: func() (table.Table, error) { return table.ByASCII(0) }, msg: "ascii 0: not found"},
		{name: "code", lookup: func() (table.Table, error) { return table.ByCode("Nope") }, msg: `code "Nope": not found`},
		{name: "code without key", lookup: func() (table.Table, error) { return table.ByCode("Lang1") }, msg: `code "Lang1" has no virtual key: not found`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.lookup()
			assert.ErrorIs(t, err, table.ErrNotFound)
			assert.EqualError(t, err, tc.msg)
		})
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]table.Format{
		"text": table.FormatText,
		"JSON": table.FormatJSON,
		"yml":  table.FormatYAML,
		"yaml": table.FormatYAML,
		"toml": table.FormatTOML,
	} {
		got, err := table.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := table.ParseFormat("xml")
	assert.ErrorIs(t, err, table.ErrUnsupportedFormat)
}

func TestEncodeText(t *testing.T) {
	tbl, err := table.ByKey("A")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, table.Encode(&buf, table.FormatText, tbl))
	assert.Equal(t, "SCANCODE  KEY  CODE  ASCII\n11        A    KeyA  65\n", buf.String())

	buf.Reset()
	require.NoError(t, table.Encode(&buf, table.FormatText, table.Table{Keys: []table.Record{{Scancode: 78, Key: "Compose"}}}))
	assert.Equal(t, "SCANCODE  KEY      CODE  ASCII\n78        Compose  -     -\n", buf.String())
}

func TestEncodeJSON(t *testing.T) {
	tbl, err := table.ByKey("A")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, table.Encode(&buf, table.FormatJSON, tbl))
	assert.JSONEq(t, `{"keys":[{"scancode":11,"key":"A","code":"KeyA","ascii":[65]}]}`, buf.String())
}

func TestEncodeDecodes(t *testing.T) {
	tbl := table.Build()

	type testCase struct {
		format table.Format
		decode func([]byte, any) error
	}
	cases := []testCase{
		{format: table.FormatJSON, decode: json.Unmarshal},
		{format: table.FormatYAML, decode: yaml.Unmarshal},
		{format: table.FormatTOML, decode: toml.Unmarshal},
	}
	for _, tc := range cases {
		t.Run(string(tc.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, table.Encode(&buf, tc.format, tbl))

			var got table.Table
			require.NoError(t, tc.decode(buf.Bytes(), &got))
			assert.Equal(t, tbl, got)
		})
	}

	assert.ErrorIs(t, table.Encode(&bytes.Buffer{}, table.Format("xml"), tbl), table.ErrUnsupportedFormat)
}

func TestFingerprint(t *testing.T) {
	const shipped = "0b5e393f735bc390df70b7c8d961c199971d1335ff97645367c5cabc5f1f702b"
	assert.Equal(t, shipped, table.Fingerprint(), "scancode table changed; clients relying on the numbering must be updated")
	assert.Equal(t, table.Fingerprint(), table.Fingerprint())
}
