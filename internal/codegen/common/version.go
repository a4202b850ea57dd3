package common

import (
	"fmt"
	"strings"
)

// Version is set at build time:
// -ldflags "-X github.com/Past9/stm32-api-generator/internal/codegen/common.Version=x.y.z"
var Version = ""

// GetVersion returns the build-time version, or "0.0.1-dev" for
// development builds where no version was injected.
func GetVersion() (string, error) {
	if Version == "" {
		return "0.0.1-dev", nil
	}
	version := strings.TrimPrefix(Version, "v")
	base := strings.SplitN(version, "-", 2)[0]
	if !strings.Contains(base, ".") {
		return "", fmt.Errorf("invalid version format: %s (expected x.y.z)", Version)
	}
	return version, nil
}

// FileHeader returns the comment prepended to every generated source file.
// It carries no tool version, keeping regenerated files byte-stable.
func FileHeader() string {
	return "// Generated by stm32gen from an SVD device description. DO NOT EDIT.\n"
}
