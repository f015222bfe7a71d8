package cli

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/evoglot/evoglot/internal/compiler"
	"github.com/evoglot/evoglot/internal/language"
)

// CLI error codes (E001-E006). Definition validation codes (E1xx) come
// from the compiler package.
const (
	ErrCodeGeneric     = "E001"
	ErrCodeFileRead    = "E002"
	ErrCodeCompile     = "E003"
	ErrCodeBuild       = "E004"
	ErrCodeLexicon     = "E005"
	ErrCodeBadWord     = "E006"
)

// loadDefinition reads and compiles a CUE language definition file.
func loadDefinition(path string) (*compiler.Definition, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("read definition %s", path), err)
	}

	def, err := compiler.CompileString(string(source))
	if err != nil {
		return nil, WrapExitError(ExitFailure, fmt.Sprintf("compile definition %s", path), err)
	}
	return def, nil
}

// loadLanguage compiles a definition file and builds the language with
// the given seed.
func loadLanguage(path string, seed int64) (*language.Language, error) {
	def, err := loadDefinition(path)
	if err != nil {
		return nil, err
	}

	if seed == 0 {
		seed = 1
	}
	lang, err := compiler.Build(def, language.WithRandom(rand.New(rand.NewSource(seed))))
	if err != nil {
		return nil, WrapExitError(ExitFailure, fmt.Sprintf("build language from %s", path), err)
	}
	return lang, nil
}
