package list

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/nightconcept/initializr-go/internal/core/snapshot"
)

func TestMain(m *testing.M) {
	// Disable color output for consistent test results
	color.NoColor = true
	os.Exit(m.Run())
}

// runListCommand executes the list command and captures its output.
func runListCommand(t *testing.T, appArgs ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := &cli.App{
		Name:      "initz",
		Writer:    &out,
		ErrWriter: &out,
		Commands:  []*cli.Command{ListCmd},
		// Prevent os.Exit from being called by urfave/cli during tests
		ExitErrHandler: func(*cli.Context, error) {},
	}
	err := app.Run(append([]string{"initz", "list"}, appArgs...))
	return out.String(), err
}

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, snapshot.FileName), []byte(content), 0644))
	return dir
}

func TestListCommand_FullBuild(t *testing.T) {
	dir := writeSnapshot(t, `
api_version = "1"
build_system = "maven"
platform_version = "3.2.0"
catalog_digest = "sha256:abc"

[parent]
group_id = "com.example"
artifact_id = "acme-parent"
version = "1.0.0"

[properties]
"project.build.sourceEncoding" = "UTF-8"

[[version_properties]]
name = "spring-cloud.version"
value = "2023.0.0"

[[dependencies]]
id = "web"
group_id = "org.springframework.boot"
artifact_id = "spring-boot-starter-web"
type = "compile"

[[dependencies]]
id = "jackson"
group_id = "com.fasterxml.jackson.core"
artifact_id = "jackson-databind"
version = "2.17.0"
type = "runtime"

[[boms]]
id = "spring-cloud"
group_id = "org.springframework.cloud"
artifact_id = "spring-cloud-dependencies"
version = "${spring-cloud.version}"

[[repositories]]
id = "spring-snapshots"
name = "Spring Snapshots"
url = "https://repo.spring.io/snapshot"
snapshots_enabled = true
`)

	output, err := runListCommand(t, dir)
	require.NoError(t, err)

	assert.Contains(t, output, "maven@3.2.0")
	assert.Contains(t, output, "catalog sha256:abc")
	assert.Contains(t, output, "parent: com.example:acme-parent 1.0.0")
	assert.Contains(t, output, "web managed org.springframework.boot:spring-boot-starter-web compile")
	assert.Contains(t, output, "jackson 2.17.0 com.fasterxml.jackson.core:jackson-databind runtime")
	assert.Contains(t, output, "spring-cloud ${spring-cloud.version} org.springframework.cloud:spring-cloud-dependencies")
	assert.Contains(t, output, "spring-cloud.version 2023.0.0")
	assert.Contains(t, output, "spring-snapshots https://repo.spring.io/snapshot (snapshots)")
	assert.Contains(t, output, "project.build.sourceEncoding UTF-8")
}

func TestListCommand_NoDependencies(t *testing.T) {
	dir := writeSnapshot(t, `
api_version = "1"
build_system = "gradle"
platform_version = "3.2.0"
`)
	output, err := runListCommand(t, dir)
	require.NoError(t, err)
	assert.Contains(t, output, "gradle@3.2.0")
	assert.Contains(t, output, "dependencies:")
	assert.Contains(t, output, "No dependencies recorded.")
	assert.NotContains(t, output, "parent:")
	assert.NotContains(t, output, "boms:")
}

func TestListCommand_WarnsOnUnknownType(t *testing.T) {
	dir := writeSnapshot(t, `
api_version = "1"
build_system = "maven"
platform_version = "3.2.0"

[[dependencies]]
id = "web"
group_id = "org.springframework.boot"
artifact_id = "spring-boot-starter-web"
type = "compile"

[[dependencies]]
id = "legacy"
group_id = "com.example"
artifact_id = "legacy"
type = "system"
`)

	output, err := runListCommand(t, dir)
	require.NoError(t, err)
	assert.Contains(t, output, `Warning: dependency legacy has unknown type "system"`)
	assert.NotContains(t, output, "dependency web has unknown type")
}

func TestListCommand_SnapshotNotFound(t *testing.T) {
	_, err := runListCommand(t, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), snapshot.FileName+" not found")
}

func TestListCommand_InvalidSnapshot(t *testing.T) {
	dir := writeSnapshot(t, "[parent\ngroup_id = 1")
	_, err := runListCommand(t, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error loading "+snapshot.FileName)
}
