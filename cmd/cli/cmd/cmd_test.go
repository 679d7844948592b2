package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capacity-cost/internal/errors"
)

// execute runs the root command once. Flag values persist between runs of
// the same subcommand, so each test drives a different one.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	cfg := filepath.Join(t.TempDir(), "absent.yaml")
	rootCmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCompareJSON(t *testing.T) {
	out, err := execute(t, "compare",
		"--viewers", "300", "--builders", "30", "--license-cost", "14",
		"--tier", "F32=2640", "--tier", "F64=5280", "--tier", "F128=9000", "--tier", "F2=1",
		"--format", "json")
	require.NoError(t, err)

	var report struct {
		Summary struct {
			Rows []struct {
				Label string `json:"label"`
			} `json:"rows"`
			Recommendation struct {
				Label string `json:"label"`
				Text  string `json:"text"`
			} `json:"recommendation"`
		} `json:"summary"`
		Rejected  []string `json:"rejected"`
		LimitNote string   `json:"limit_note"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report), out)

	assert.Len(t, report.Summary.Rows, 3)
	assert.Equal(t, []string{"F2"}, report.Rejected)
	assert.NotEmpty(t, report.LimitNote)
	assert.Equal(t, "F64", report.Summary.Recommendation.Label)
	assert.Equal(t, "F64 — €68,400 / year", report.Summary.Recommendation.Text)
}

func TestLicensingMarkdown(t *testing.T) {
	out, err := execute(t, "licensing", "--viewers", "500", "--builders", "40", "--hide-ppu", "--format", "md")
	require.NoError(t, err)

	assert.Contains(t, out, "## License Impact: 500 viewers + 40 builders")
	assert.Contains(t, out, "vs Pro Only")
	assert.NotContains(t, out, "PPU only")
}

func TestSkus(t *testing.T) {
	out, err := execute(t, "skus", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "F2 (default)")
	assert.Contains(t, out, "F2048")
	assert.Contains(t, out, "$10,278")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "capacity-cost version "+Version+"\n", out)
}

func TestConfigShowYAML(t *testing.T) {
	out, err := execute(t, "config", "show", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "max_tiers: 3")
	assert.Contains(t, out, "period: yearly")
}

func TestParseTierFlag(t *testing.T) {
	c, err := parseTierFlag(" F64 = 5280")
	require.NoError(t, err)
	assert.Equal(t, "F64", c.SKU)
	assert.Equal(t, "5280", c.MonthlyCost.String())

	c, err = parseTierFlag("F8=lots")
	require.NoError(t, err)
	assert.True(t, c.MonthlyCost.IsZero())

	for _, bad := range []string{"F64", "=100", ""} {
		_, err := parseTierFlag(bad)
		require.Error(t, err, bad)
		assert.True(t, errors.IsType(err, errors.TypeInput))
	}
}
