package split

import (
	"fmt"
	"strings"
	"unicode"
)

// ext is appended to each record's identifier to make its file name
const ext = ".fasta"

// fileName returns the name of the file for a record with the passed
// identifier. Identifiers come straight from the input, so anything
// that could escape the output directory or isn't a legal file name
// is rejected rather than rewritten
func fileName(id string) (string, error) {
	switch id {
	case "":
		return "", fmt.Errorf("%w: empty identifier", ErrInvalidIdentifier)
	case ".", "..":
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}

	if strings.ContainsAny(id, `/\`) {
		return "", fmt.Errorf("%w: %q contains a path separator", ErrInvalidIdentifier, id)
	}

	if strings.IndexFunc(id, unicode.IsControl) >= 0 {
		return "", fmt.Errorf("%w: %q contains a control character", ErrInvalidIdentifier, id)
	}

	return id + ext, nil
}
