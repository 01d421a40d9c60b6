package commentcode

import "github.com/sentineltools/commentcode/internal/cerr"

// ResourceLoadFailure and ShapeMismatch are defined once in internal/cerr
// (so the lower-level tokenizer/feature/model packages can return them
// without importing this package) and re-exported here under the
// names §7 uses.
type (
	ResourceLoadFailure = cerr.ResourceLoadFailure
	ShapeMismatch       = cerr.ShapeMismatch
)
