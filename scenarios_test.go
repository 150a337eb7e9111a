package linediff

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type scenario struct {
	Name   string   `yaml:"name"`
	A      []string `yaml:"a"`
	B      []string `yaml:"b"`
	Script []string `yaml:"script"`
}

func loadScenarios(t *testing.T, path string) []scenario {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var scenarios []scenario
	require.NoError(t, yaml.Unmarshal(data, &scenarios))
	require.NotEmpty(t, scenarios)
	return scenarios
}

// parseEdit parses "= old new line", "- old line" or "+ new line".
func parseEdit(s string) (Edit, error) {
	fieldsN := 3
	if strings.HasPrefix(s, "= ") {
		fieldsN = 4
	}
	parts := strings.SplitN(s, " ", fieldsN)
	if len(parts) != fieldsN {
		return Edit{}, fmt.Errorf("malformed edit %q", s)
	}

	first, err := strconv.Atoi(parts[1])
	if err != nil {
		return Edit{}, fmt.Errorf("edit %q: %w", s, err)
	}

	switch parts[0] {
	case "=":
		second, err := strconv.Atoi(parts[2])
		if err != nil {
			return Edit{}, fmt.Errorf("edit %q: %w", s, err)
		}
		return EqualEdit(first, second, parts[3]), nil
	case "-":
		return DeleteEdit(first, parts[2]), nil
	case "+":
		return InsertEdit(first, parts[2]), nil
	default:
		return Edit{}, fmt.Errorf("unknown op in edit %q", s)
	}
}

func TestDiff_GoldenScenarios(t *testing.T) {
	for _, sc := range loadScenarios(t, "testdata/scenarios.yaml") {
		t.Run(sc.Name, func(t *testing.T) {
			var want Script
			for _, s := range sc.Script {
				e, err := parseEdit(s)
				require.NoError(t, err)
				want = append(want, e)
			}

			got := Diff(sc.A, sc.B)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Diff(%q, %q) mismatch (-want +got):\n%s", sc.A, sc.B, diff)
			}
			require.NoError(t, got.Validate(sc.A, sc.B))
		})
	}
}
