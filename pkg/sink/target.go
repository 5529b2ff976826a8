// Package sink decides where rendered output goes and writes it there.
package sink

import (
	"fmt"

	"github.com/anton-fomin/inject-env/pkg/domain"
)

// Mode identifies one of the four output actions.
type Mode int

const (
	// ModeStdout prints the rendered text followed by a newline.
	ModeStdout Mode = iota
	// ModeOverwrite replaces the whole target file with the rendered text.
	ModeOverwrite
	// ModeReplace substitutes every occurrence of a token inside the target file.
	ModeReplace
	// ModeInvalid is a replacement token without a target file.
	ModeInvalid
)

func (m Mode) String() string {
	switch m {
	case ModeStdout:
		return "stdout"
	case ModeOverwrite:
		return "overwrite"
	case ModeReplace:
		return "replace"
	case ModeInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Target is the resolved output destination.
// Path is set for ModeOverwrite and ModeReplace, Token only for ModeReplace.
type Target struct {
	Mode  Mode
	Path  string
	Token string
}

// Resolve maps the optional output path and replacement token onto a Target.
// Invalid combinations are reported here, before any file is touched.
func Resolve(outPath, replaceToken *string) (Target, error) {
	switch {
	case outPath != nil && replaceToken != nil:
		if *replaceToken == "" {
			return Target{Mode: ModeInvalid, Path: *outPath}, domain.ErrEmptyReplaceToken
		}
		return Target{Mode: ModeReplace, Path: *outPath, Token: *replaceToken}, nil
	case outPath != nil:
		return Target{Mode: ModeOverwrite, Path: *outPath}, nil
	case replaceToken != nil:
		return Target{Mode: ModeInvalid, Token: *replaceToken}, domain.ErrReplaceWithoutOut
	default:
		return Target{Mode: ModeStdout}, nil
	}
}
