package nyml_test

import (
	"bytes"
	"flag"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-nyml"
	"github.com/KimNorgaard/go-nyml/internal/testutil"
)

var update = flag.Bool("update", false, "update golden files")

// checkGolden compares actual with the golden file of input. With -update
// the golden file is rewritten first.
func checkGolden(t *testing.T, input, actual string) {
	t.Helper()
	goldenName := testutil.GoldenName(input)

	// The update flag can be used to automatically update the golden file.
	// To use it, run: go test -v . -update
	if *update {
		err := os.WriteFile(testutil.SourcePath(goldenName), []byte(actual), 0o644)
		require.NoError(t, err)
		return
	}

	expected, err := testutil.ReadTestData(goldenName)
	require.NoError(t, err, "Golden file not found. Run with -update to create it.")
	expected = bytes.TrimSuffix(expected, []byte("\n"))

	require.Equal(t, string(expected), actual, "Parser output does not match golden file.")
}

func TestGolden(t *testing.T) {
	files, err := testutil.Inputs("v1")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := testutil.ReadTestData(file)
			require.NoError(t, err)

			var actual string
			doc, err := nyml.ParseDocument(src)
			if err != nil {
				// For files that are expected to fail parsing,
				// the golden file contains the error message.
				actual = err.Error()
			} else {
				actual = doc.String()
			}
			checkGolden(t, file, actual)
		})
	}
}

func TestGoldenV2(t *testing.T) {
	files, err := testutil.Inputs("v2")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := testutil.ReadTestData(file)
			require.NoError(t, err)

			var actual string
			list, err := nyml.ParseV2(src)
			if err != nil {
				actual = err.Error()
			} else {
				actual = list.String()
			}
			checkGolden(t, file, actual)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	files, err := testutil.Inputs("v1")
	require.NoError(t, err)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := testutil.ReadTestData(file)
			require.NoError(t, err)

			m1, err := nyml.Parse(src)
			if err != nil {
				t.Skip("invalid input")
			}

			// Parse is the last-wins collapse of the entries form.
			doc, err := nyml.ParseDocument(src)
			require.NoError(t, err)
			require.Empty(t, cmp.Diff(nyml.Collapse(doc, nyml.StrategyLast), m1))

			out, err := nyml.Marshal(m1)
			require.NoError(t, err)

			m2, err := nyml.Parse(out)
			require.NoError(t, err, "Parse failed on our own output:\n%s", out)
			require.Empty(t, cmp.Diff(m1, m2), "Value changed after a marshal/parse round trip:\n%s", out)
		})
	}
}

func TestRoundTripV2(t *testing.T) {
	files, err := testutil.Inputs("v2")
	require.NoError(t, err)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := testutil.ReadTestData(file)
			require.NoError(t, err)

			l1, err := nyml.ParseV2(src)
			if err != nil {
				t.Skip("invalid input")
			}

			out, err := nyml.MarshalV2(l1)
			require.NoError(t, err)

			l2, err := nyml.ParseV2(out)
			require.NoError(t, err, "ParseV2 failed on our own output:\n%s", out)
			require.Equal(t, l1.String(), l2.String())
		})
	}
}
