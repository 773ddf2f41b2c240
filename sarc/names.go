package sarc

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"

	"github.com/joshuapare/sarckit/pkg/types"
)

var separatorRun = regexp.MustCompile(`[\\/]+`)

// NormalizeName collapses every run of '/' or '\' into a single '/'.
func NormalizeName(name string) string {
	return separatorRun.ReplaceAllString(name, "/")
}

// validateName rejects names the name table cannot represent.
func validateName(name string) error {
	if name == "" {
		return types.Errorf(types.ErrKindConfig, "empty entry name")
	}
	if strings.IndexByte(name, 0) >= 0 {
		return types.Errorf(types.ErrKindConfig, "entry name %q contains a NUL byte", name)
	}
	return nil
}

// DisplayName returns name as valid UTF-8. Names stored by older tools in
// Shift-JIS are decoded; anything else undecodable is replaced with U+FFFD.
// The raw name is still what hashes and serializes.
func DisplayName(name string) string {
	if utf8.ValidString(name) {
		return name
	}
	if decoded, err := japanese.ShiftJIS.NewDecoder().String(name); err == nil && utf8.ValidString(decoded) {
		return decoded
	}
	return strings.ToValidUTF8(name, "�")
}
