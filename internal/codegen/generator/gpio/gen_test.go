package gpio

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Past9/stm32-api-generator/internal/codegen/common"
	"github.com/Past9/stm32-api-generator/internal/codegen/hwenum"
	"github.com/Past9/stm32-api-generator/internal/codegen/meta"
	"github.com/Past9/stm32-api-generator/internal/output"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func genInto(t *testing.T, md *meta.Metadata) (string, error) {
	t.Helper()
	dir := t.TempDir()
	out, err := output.New(dir, false, testLogger())
	require.NoError(t, err)
	return dir, Generate(testLogger(), out, md)
}

func TestCatalogIsValid(t *testing.T) {
	if err := hwenum.ValidateAll(Enums); err != nil {
		t.Fatalf("catalog invalid: %v", err)
	}
}

func catalogEnum(t *testing.T, name string) hwenum.Enum {
	t.Helper()
	for _, e := range Enums {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("enum %s not in catalog", name)
	return hwenum.Enum{}
}

func TestPullDirectionEncodings(t *testing.T) {
	e := catalogEnum(t, "PullDirection")
	want := map[string]uint32{"Floating": 0, "Up": 1, "Down": 2}
	for name, value := range want {
		v, ok := e.Variant(name)
		if !ok {
			t.Fatalf("PullDirection has no variant %s", name)
		}
		if v.Value != value {
			t.Errorf("PullDirection.%s = %d, want %d", name, v.Value, value)
		}
	}
}

func TestOutputSpeedEncodingsAreNotSequential(t *testing.T) {
	e := catalogEnum(t, "OutputSpeed")
	want := map[string]uint32{"Low": 0, "Medium": 1, "High": 3}
	for name, value := range want {
		v, ok := e.Variant(name)
		if !ok {
			t.Fatalf("OutputSpeed has no variant %s", name)
		}
		if v.Value != value {
			t.Errorf("OutputSpeed.%s = %d, want %d", name, v.Value, value)
		}
	}
}

func TestOutputTypeEncodings(t *testing.T) {
	e := catalogEnum(t, "OutputType")
	pp, _ := e.Variant("PushPull")
	od, _ := e.Variant("OpenDrain")
	if pp.Value != 0 || od.Value != 1 {
		t.Errorf("OutputType encodings = %d/%d, want 0/1", pp.Value, od.Value)
	}
}

func TestDigitalValueBoolConversion(t *testing.T) {
	e := catalogEnum(t, "DigitalValue")
	require.NotNil(t, e.BoolConv)

	// true converts to High which encodes 1; false to Low which encodes 0.
	high, ok := e.Variant(e.BoolConv.TrueVariant)
	require.True(t, ok)
	assert.Equal(t, "High", high.Name)
	assert.Equal(t, uint32(1), high.Value)

	low, ok := e.Variant(e.BoolConv.FalseVariant)
	require.True(t, ok)
	assert.Equal(t, "Low", low.Name)
	assert.Equal(t, uint32(0), low.Value)
}

func TestGenerateEmitsSubmodulesInInputOrder(t *testing.T) {
	dir, err := genInto(t, &meta.Metadata{
		DeviceName: "STM32F303",
		GpioPorts:  []string{"PortA", "PortB"},
	})
	require.NoError(t, err)

	mod, err := os.ReadFile(filepath.Join(dir, "src", "gpio", "mod.rs"))
	require.NoError(t, err)
	content := string(mod)

	a := strings.Index(content, "pub mod port_a;")
	b := strings.Index(content, "pub mod port_b;")
	require.GreaterOrEqual(t, a, 0)
	require.GreaterOrEqual(t, b, 0)
	assert.Less(t, a, b, "declarations must keep input order")

	assert.Equal(t, 2, strings.Count(content, "pub mod "))

	assert.FileExists(t, filepath.Join(dir, "src", "gpio", "port_a.rs"))
	assert.FileExists(t, filepath.Join(dir, "src", "gpio", "port_b.rs"))
}

func TestGenerateEmptyPortListStillEmitsEnums(t *testing.T) {
	dir, err := genInto(t, &meta.Metadata{DeviceName: "STM32F303"})
	require.NoError(t, err)

	mod, err := os.ReadFile(filepath.Join(dir, "src", "gpio", "mod.rs"))
	require.NoError(t, err)
	content := string(mod)

	assert.NotContains(t, content, "pub mod ")
	for _, e := range Enums {
		assert.Contains(t, content, "pub enum "+e.Name+" {")
	}
}

func TestGenerateCollisionFailsBeforePublishing(t *testing.T) {
	dir, err := genInto(t, &meta.Metadata{
		DeviceName: "STM32F303",
		GpioPorts:  []string{"Port-A", "PortA"},
	})
	require.Error(t, err)

	var collision *common.NameCollisionError
	require.True(t, errors.As(err, &collision))
	assert.Contains(t, err.Error(), "Port-A")
	assert.Contains(t, err.Error(), "PortA")

	assert.NoFileExists(t, filepath.Join(dir, "src", "gpio", "mod.rs"))
}

func TestGenerateIsDeterministic(t *testing.T) {
	md := &meta.Metadata{DeviceName: "STM32F303", GpioPorts: []string{"PortA", "PortB"}}

	dir1, err := genInto(t, md)
	require.NoError(t, err)
	dir2, err := genInto(t, md)
	require.NoError(t, err)

	mod1, err := os.ReadFile(filepath.Join(dir1, "src", "gpio", "mod.rs"))
	require.NoError(t, err)
	mod2, err := os.ReadFile(filepath.Join(dir2, "src", "gpio", "mod.rs"))
	require.NoError(t, err)
	assert.Equal(t, string(mod1), string(mod2))
}

func TestGeneratedEnumsCarryExplicitEncodings(t *testing.T) {
	dir, err := genInto(t, &meta.Metadata{DeviceName: "STM32F303"})
	require.NoError(t, err)

	mod, err := os.ReadFile(filepath.Join(dir, "src", "gpio", "mod.rs"))
	require.NoError(t, err)
	content := string(mod)

	assert.Contains(t, content, "Self::Down => 0b10,")
	assert.Contains(t, content, "Self::High => 0b11,")
	assert.Contains(t, content, "true => Self::High,")
	assert.Contains(t, content, "false => Self::Low,")
}
