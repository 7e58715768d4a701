package relabel

import (
	"fmt"

	selinux "github.com/opencontainers/selinux/go-selinux"
)

// CopyType returns the dest security context with its type component
// replaced by the type of the src security context. Every other component of
// dest stays untouched, which makes this the single recombination primitive
// of the package: the source contributes the type, the target contributes
// the rest. The name follows selinux.CopyLevel.
func CopyType(src, dest string) (string, error) {
	if src == "" || dest == "" {
		return "", fmt.Errorf("%w: empty context", ErrContextParse)
	}

	srcCon, err := selinux.NewContext(src)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrContextParse, src, err)
	}

	destCon, err := selinux.NewContext(dest)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrContextParse, dest, err)
	}

	destCon["type"] = srcCon["type"]

	return destCon.Get(), nil
}
