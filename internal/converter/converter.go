// =============================================================================
// Bulk Claim Converter - Converter Selection
// =============================================================================
//
// The converter registry and the extension handling around it. The registry
// is a fixed, ordered list of converters probed in turn with Handles: no
// reflection, no dynamic discovery, so the "no converter found" failure is
// deterministic and the set of supported formats is auditable in one place.
//
// =============================================================================

package converter

import (
	"fmt"
	"io"
	"strings"

	"github.com/openlegalaid/bulkclaim/internal/claims"
)

// FileConverter parses one source format into its format-specific submission
// tree. Implementations are stateless: one instance serves concurrent
// conversions.
type FileConverter interface {
	// Handles reports whether this converter owns the given extension.
	Handles(ext claims.FileExtension) bool

	// Convert consumes the raw file stream and produces the format tree.
	// A failure means the whole file is rejected; there is no partial tree.
	Convert(r io.Reader) (claims.FileSubmission, error)
}

// Registry is the fixed set of registered converters, probed in order.
type Registry struct {
	converters []FileConverter
}

// NewRegistry builds a registry over the given converters.
func NewRegistry(converters ...FileConverter) *Registry {
	return &Registry{converters: converters}
}

// ConverterFor returns the first converter declaring support for the
// extension. With a complete registry every recognized extension has an
// owner, so a miss indicates a registration bug.
func (r *Registry) ConverterFor(ext claims.FileExtension) (FileConverter, error) {
	for _, c := range r.converters {
		if c.Handles(ext) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("no converter registered for extension %s", ext)
}

// InferExtension derives the file extension from a filename: the substring
// after the last dot, uppercased, matched against the fixed extension set.
func InferExtension(filename string) (claims.FileExtension, error) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return "", fmt.Errorf("filename %q has no extension", filename)
	}

	ext, ok := claims.ParseFileExtension(filename[idx+1:])
	if !ok {
		return "", fmt.Errorf("unsupported extension on filename %q", filename)
	}
	return ext, nil
}
