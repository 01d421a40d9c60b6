package commentcode

import "github.com/gofrs/uuid"

// IssueMessage is the fixed message the detector emits for every
// positively-classified comment batch (§4.8).
const IssueMessage = "This block of commented-out lines of code should be removed."

// RuleKey identifies this detector to the host (§6).
const RuleKey = "S125"

// Span is a 0-based-column text span, per the host's output
// convention (§6) — note this differs from Pos, which is 1-based and
// describes *input* positions.
type Span struct {
	StartLine, StartCol int
	EndLine, EndCol     int
}

// spanFromBatch computes the reported span of a batch: first
// trivium's start to last trivium's end, with columns shifted to
// 0-based (§4.8 step 7).
func spanFromBatch(b Batch) Span {
	start, end := b.Span()
	return Span{
		StartLine: start.Line,
		StartCol:  start.Col - 1,
		EndLine:   end.Line,
		EndCol:    end.Col - 1,
	}
}

// Issue is one detector finding.
type Issue struct {
	RuleKey string
	File    string
	Span    Span
	Message string
	Cost    int
}

// RunMetadata identifies one CLI invocation for findings-store
// correlation (§3 ADDED, §10). It has no role in classification.
type RunMetadata struct {
	ID uuid.UUID
}

// NewRunMetadata mints a fresh run identifier.
func NewRunMetadata() (RunMetadata, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return RunMetadata{}, err
	}
	return RunMetadata{ID: id}, nil
}
