package validate

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/nightconcept/initializr-go/internal/core/hasher"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func runValidateCommand(t *testing.T, appArgs ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := &cli.App{
		Name:      "initz",
		Writer:    &out,
		ErrWriter: &errOut,
		Commands:  []*cli.Command{ValidateCmd},
		// Prevent os.Exit from being called by urfave/cli during tests
		ExitErrHandler: func(*cli.Context, error) {},
	}
	err := app.Run(append([]string{"initz", "validate"}, appArgs...))
	return out.String(), errOut.String(), err
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validCatalog = `
[dependencies.web]
group_id = "org.springframework.boot"
artifact_id = "spring-boot-starter-web"

[dependencies.cloud]
group_id = "org.springframework.cloud"
artifact_id = "spring-cloud-starter"
bom = "spring-cloud"

[boms.spring-cloud]
group_id = "org.springframework.cloud"
artifact_id = "spring-cloud-dependencies"
version = "2023.0.0"
`

func TestValidateCommand_Valid(t *testing.T) {
	path := writeCatalog(t, validCatalog)

	output, _, err := runValidateCommand(t, path)
	require.NoError(t, err)
	assert.Contains(t, output, "catalog ok: 2 dependencies, 1 boms, 0 repositories")
	assert.Contains(t, output, "digest "+hasher.CalculateSHA256([]byte(validCatalog)))
}

func TestValidateCommand_ReportsProblems(t *testing.T) {
	path := writeCatalog(t, `
[dependencies.odd]
group_id = "com.example"
artifact_id = "odd"
scope = "system"

[dependencies.foo]
group_id = "com.example"
artifact_id = "foo"
bom = "missing-bom"
`)

	_, errOutput, err := runValidateCommand(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has 2 problem(s)")
	assert.Contains(t, errOutput, "error:")
	assert.Contains(t, errOutput, `"missing-bom"`)
	assert.Contains(t, errOutput, "unknown dependency scope")
}

func TestValidateCommand_DigestMismatch(t *testing.T) {
	path := writeCatalog(t, validCatalog)

	_, _, err := runValidateCommand(t, "--catalog-sha256", "sha256:00", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "digest mismatch")
}

func TestValidateCommand_ReportsBOMCycle(t *testing.T) {
	path := writeCatalog(t, `
[boms.a-bom]
group_id = "com.example"
artifact_id = "a-bom"
version = "1.0.0"
additional_boms = ["b-bom"]

[boms.b-bom]
group_id = "com.example"
artifact_id = "b-bom"
version = "1.0.0"
additional_boms = ["a-bom"]
`)

	output, errOutput, err := runValidateCommand(t, path)
	require.Error(t, err)
	assert.NotContains(t, output, "catalog ok")
	assert.Contains(t, err.Error(), "has 1 problem(s)")
	assert.Contains(t, errOutput, "a-bom -> b-bom -> a-bom")
}
