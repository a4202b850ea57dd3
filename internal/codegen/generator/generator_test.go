package generator

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Past9/stm32-api-generator/internal/codegen/meta"
	"github.com/Past9/stm32-api-generator/internal/output"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGenerator(t *testing.T) (*Generator, string) {
	t.Helper()
	dir := t.TempDir()
	out, err := output.New(dir, false, testLogger())
	require.NoError(t, err)
	return New(out, testLogger()), dir
}

func TestGenAllEmitsCrateTree(t *testing.T) {
	g, dir := newGenerator(t)
	err := g.GenAll(&meta.Metadata{
		DeviceName:   "STM32F303",
		GpioPorts:    []string{"gpio_a", "gpio_b"},
		SpiInstances: []string{"SPI1"},
	})
	require.NoError(t, err)

	for _, f := range []string{
		filepath.Join("src", "gpio", "mod.rs"),
		filepath.Join("src", "gpio", "gpio_a.rs"),
		filepath.Join("src", "gpio", "gpio_b.rs"),
		filepath.Join("src", "spi", "mod.rs"),
		filepath.Join("src", "spi", "spi1.rs"),
		filepath.Join("src", "lib.rs"),
		"Cargo.toml",
		".rustfmt.toml",
	} {
		assert.FileExists(t, filepath.Join(dir, f))
	}

	lib, err := os.ReadFile(filepath.Join(dir, "src", "lib.rs"))
	require.NoError(t, err)
	assert.Contains(t, string(lib), "pub mod gpio;")
	assert.Contains(t, string(lib), "pub mod spi;")

	cargo, err := os.ReadFile(filepath.Join(dir, "Cargo.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(cargo), `name = "stm32f303-api"`)
}

func TestGenAllFamilyFailureDoesNotStopOtherFamily(t *testing.T) {
	g, dir := newGenerator(t)
	err := g.GenAll(&meta.Metadata{
		DeviceName:   "STM32F303",
		GpioPorts:    []string{"Port-A", "PortA"}, // collide on port_a
		SpiInstances: []string{"SPI1"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gpio")

	// The SPI family and the scaffolding still generate.
	assert.FileExists(t, filepath.Join(dir, "src", "spi", "mod.rs"))
	assert.FileExists(t, filepath.Join(dir, "src", "lib.rs"))
	assert.NoFileExists(t, filepath.Join(dir, "src", "gpio", "mod.rs"))
}

func TestGenerateFamilyEmitsStandaloneCrate(t *testing.T) {
	g, dir := newGenerator(t)
	err := g.GenerateFamily("gpio", &meta.Metadata{
		DeviceName: "STM32F303",
		GpioPorts:  []string{"gpio_a"},
	})
	require.NoError(t, err)

	// A single-family run must still be a buildable crate.
	assert.FileExists(t, filepath.Join(dir, "Cargo.toml"))
	assert.FileExists(t, filepath.Join(dir, ".rustfmt.toml"))
	assert.FileExists(t, filepath.Join(dir, "src", "gpio", "mod.rs"))
	assert.FileExists(t, filepath.Join(dir, "src", "gpio", "gpio_a.rs"))

	lib, err := os.ReadFile(filepath.Join(dir, "src", "lib.rs"))
	require.NoError(t, err)
	assert.Contains(t, string(lib), "pub mod gpio;")
	assert.NotContains(t, string(lib), "pub mod spi;")
	assert.NoFileExists(t, filepath.Join(dir, "src", "spi", "mod.rs"))
}

func TestGenerateFamilyRejectsUnknownFamily(t *testing.T) {
	g, _ := newGenerator(t)
	err := g.GenerateFamily("uart", &meta.Metadata{DeviceName: "STM32F303"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uart")
}

func TestCrateName(t *testing.T) {
	assert.Equal(t, "stm32f303-api", CrateName("STM32F303"))
}
