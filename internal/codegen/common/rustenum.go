package common

import (
	"strings"
	"text/template"

	"github.com/Past9/stm32-api-generator/internal/codegen/hwenum"
)

// Generated Rust uses two-space indentation to match the .rustfmt.toml
// emitted alongside the crate.
const enumTemplate = `{{if .Doc}}/// {{.Doc}}
{{end}}#[derive(Clone, Copy, PartialEq, Eq, Debug)]
pub enum {{.Name}} {
{{range .Variants}}{{if .Doc}}  /// {{.Doc}}
{{end}}  {{.Name}},
{{end}}}
{{if or .Encoded .BoolConv}}impl {{.Name}} {
{{if .Encoded}}  /// The exact bits written to the register bit-field for this variant.
  pub fn val(&self) -> u32 {
    match self {
{{range .Variants}}      Self::{{.Name}} => {{.Literal}},
{{end}}    }
  }
{{end}}{{if .BoolConv}}
  /// By convention ` + "`true`" + ` converts to ` + "`{{.BoolConv.TrueVariant}}`" + ` (logic-high).
  pub fn from_bool(value: bool) -> Self {
    match value {
      true => Self::{{.BoolConv.TrueVariant}},
      false => Self::{{.BoolConv.FalseVariant}},
    }
  }

  pub fn as_bool(&self) -> bool {
    match self {
      Self::{{.BoolConv.TrueVariant}} => true,
      Self::{{.BoolConv.FalseVariant}} => false,
    }
  }
{{end}}}
{{end}}`

var enumTmpl = template.Must(template.New("enum").Parse(enumTemplate))

// RenderEnum emits the Rust declaration of one hardware enumeration,
// including its value accessor and any boolean conversion helpers. The
// catalog must already be validated.
func RenderEnum(e hwenum.Enum) (string, error) {
	var b strings.Builder
	if err := enumTmpl.Execute(&b, e); err != nil {
		return "", err
	}
	return b.String(), nil
}
