package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/shamaton/msgpack/v2"
	"github.com/stretchr/testify/require"
	"github.com/tuannh982/go-collection/collection"
)

func run(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Run(args, strings.NewReader(input), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		args   []string
		output string
	}{
		{"count", `[1,2,3]`, []string{"count"}, "3\n"},
		{"keys", `{"a":1,"3":2}`, []string{"keys"}, `["a","3"]` + "\n"},
		{"first", `{"a":{"b":1},"c":2}`, []string{"first"}, `{"b":1}` + "\n"},
		{"last", `{"a":{"b":1},"c":2}`, []string{"last"}, "2\n"},
		{"last of empty", `[]`, []string{"last"}, "null\n"},
		{"values", `{"a":1,"b":2}`, []string{"values"}, "[1,2]\n"},
		{"flatten", `[[1,2],[3,[4]]]`, []string{"flatten"}, "[1,2,3,4]\n"},
		{"merge", `[[1,2],{"0":3,"x":4}]`, []string{"merge"}, `{"0":1,"1":2,"2":3,"x":4}` + "\n"},
		{"fetch", `[{"a":1},{"b":2},{"a":3}]`, []string{"fetch", "-k", "a"}, "[1,3]\n"},
		{"fetch path", `[{"u":{"n":"x"}},{"u":{"n":"y"}}]`, []string{"fetch", "--key", "u.n"}, `["x","y"]` + "\n"},
		{"pretty", `{"a":1}`, []string{"-p", "values"}, "[\n    1\n]\n"},
		{"yaml", `{"a":1,"b":[2]}`, []string{"-o", "yaml", "values"}, "- 1\n- - 2\n"},
		{"yaml scalar", `[1,2]`, []string{"-o", "yaml", "count"}, "2\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, tc.input, tc.args...)
			require.Nil(t, err)
			require.Equal(t, tc.output, out)
		})
	}
}

func TestRunMsgpack(t *testing.T) {
	out, _, err := run(t, `{"a":1,"b":2}`, "-o", "msgpack", "values")
	require.Nil(t, err)
	var values []int
	require.Nil(t, msgpack.Unmarshal([]byte(out), &values))
	require.Equal(t, []int{1, 2}, values)
}

func TestRunInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	require.Nil(t, os.WriteFile(path, []byte(`[[1],[2]]`), 0o600))
	out, _, err := run(t, "", "-i", path, "flatten")
	require.Nil(t, err)
	require.Equal(t, "[1,2]\n", out)

	_, _, err = run(t, "", "-i", filepath.Join(t.TempDir(), "missing.json"), "count")
	require.NotNil(t, err)
}

func TestRunVerbose(t *testing.T) {
	_, logs, err := run(t, `[{"a":1},{"b":2}]`, "fetch", "-k", "a")
	require.Nil(t, err)
	require.Equal(t, "", logs)

	_, logs, err = run(t, `[{"a":1},{"b":2}]`, "-v", "fetch", "-k", "a")
	require.Nil(t, err)
	require.Contains(t, logs, "level=debug")
	require.Contains(t, logs, "segment a not found")
}

func TestRunErrors(t *testing.T) {
	_, _, err := run(t, `"x"`, "count")
	require.True(t, errors.Is(err, collection.ErrTypeMismatch))

	_, _, err = run(t, `[1,[2]]`, "merge")
	require.True(t, errors.Is(err, collection.ErrTypeMismatch))

	_, _, err = run(t, `[]`)
	require.NotNil(t, err)

	_, _, err = run(t, `[]`, "fetch")
	require.NotNil(t, err)

	_, _, err = run(t, `[]`, "-o", "xml", "count")
	require.NotNil(t, err)

	_, _, err = run(t, `[]`, "--help")
	var flagsErr *flags.Error
	require.True(t, errors.As(err, &flagsErr))
	require.Equal(t, flags.ErrHelp, flagsErr.Type)
}
