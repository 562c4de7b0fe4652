package util

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
)

// GetProjectRootDir returns the root directory of the module. PROJECT_ROOT_DIR
// takes precedence, otherwise the location of this source file is used.
func GetProjectRootDir() string {
	if val, ok := os.LookupEnv("PROJECT_ROOT_DIR"); ok {
		return val
	}

	_, b, _, _ := runtime.Caller(0)

	return filepath.Join(filepath.Dir(b), "../..")
}

// RunningInTest reports whether the current binary was built by "go test".
func RunningInTest() bool {
	return strings.HasSuffix(os.Args[0], ".test")
}

// LogLevelFromString parses s, falling back to the debug level for unknown values.
func LogLevelFromString(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.DebugLevel
	}

	return level
}
