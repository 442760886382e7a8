package otable

import "github.com/pkg/errors"

// ErrStructure is matched (via errors.Is) by every error that NewTable
// returns for a malformed set of columns.
var ErrStructure = errors.New("invalid table structure")

// structureError is a construction-time error that also matches
// ErrStructure.
type structureError struct {
	msg string
}

func (e *structureError) Error() string {
	return e.msg
}

func (e *structureError) Is(target error) bool {
	return target == ErrStructure
}

// Structural errors, raised once by NewTable.
var (
	ErrDuplicateColumn error = &structureError{"duplicate column name"}
	ErrLengthMismatch  error = &structureError{"columns have different lengths"}
	ErrNoColumns       error = &structureError{"at least one column required"}
	ErrNilColumn       error = &structureError{"nil column"}
)

// Per-cell and lookup errors.
var (
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrNoSuchAttribute      = errors.New("no such attribute")
	ErrNoSuchColumn         = errors.New("no such column")
	ErrReadOnlyColumn       = errors.New("column is read-only")
	ErrTypeMismatch         = errors.New("value has the wrong type")
	ErrUnaddressable        = errors.New("object cannot be assigned through")
	ErrConflictingAccessors = errors.New("only one of attribute, derive or accessor may be given")
	ErrCardinalityMismatch  = errors.New("cardinality mismatch")
)

func outOfRange(what string, index, length int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "%s %d (length %d)", what, index, length)
}
