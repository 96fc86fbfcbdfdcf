package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/precatorio-engine/api"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdirForTest(t, t.TempDir())

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCalculate_FlagsConsole(t *testing.T) {
	out, err := execute(t, "calculate",
		"--principal", "100000",
		"--base", "2021-05-10",
		"--issuance", "2022-03-20",
		"--final", "2026-01-29")
	require.NoError(t, err)

	assert.Contains(t, out, "REGIME CONSTITUCIONAL: EC 114")
	assert.Contains(t, out, "VALOR TOTAL DO PRECATÓRIO: R$ 106.213,70")
}

func TestCalculate_JSONOutput(t *testing.T) {
	out, err := execute(t, "calculate", "-f", "json",
		"--principal", "250000",
		"--base", "2019-03-01",
		"--issuance", "2020-05-15",
		"--final", "2022-06-30")
	require.NoError(t, err)

	var res api.ResultDTO
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "CF", res.Regime)
	assert.Equal(t, 260626.71, res.Total)
}

func TestCalculate_InputFileWithOverride(t *testing.T) {
	// GIVEN: A YAML case file
	// WHEN: Calculating from it with a --final override and csv output
	// THEN: The override wins over the file
	path := filepath.Join(t.TempDir(), "case.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
valor_homologado: 80000
data_base: "2025-01-15"
data_oficio: "2025-10-01"
data_final: "2030-01-01"
`), 0o644))

	out, err := execute(t, "calculate", "--input", path, "--final", "2026-06-30", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "total,,,,1163.84,18.63,1182.47")
}

func TestCalculate_Errors(t *testing.T) {
	_, err := execute(t, "calculate", "--principal", "0",
		"--base", "2021-05-10", "--issuance", "2022-03-20", "--final", "2026-01-29")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Valor homologado deve ser maior que zero")

	_, err = execute(t, "calculate", "--principal", "10", "--base", "2021-05-10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data_oficio")

	_, err = execute(t, "calculate", "--format", "pdf", "--principal", "10",
		"--base", "2021-05-10", "--issuance", "2022-03-20", "--final", "2026-01-29")
	assert.Error(t, err)
}

func TestRegime(t *testing.T) {
	out, err := execute(t, "regime", "2021-12-16")
	require.NoError(t, err)
	assert.Contains(t, out, "Regime: EC 114")
	assert.Contains(t, out, "01/04/2021 até 31/12/2022")

	_, err = execute(t, "regime", "16/12/2021")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "precatorio dev")
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+) for older toolchains:
// it changes the working directory and restores it when the test ends.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
