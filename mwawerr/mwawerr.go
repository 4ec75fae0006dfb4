// Package mwawerr defines the error taxonomy shared by every decoding
// component: readers, per-format parsers, and the listener.
//
// Per the propagation policy, most kinds are recoverable by the caller
// that produced them (a parser logs and substitutes a default value);
// only UnsupportedVersion, UnsupportedEncryption and WrongPassword
// abort the whole parse once they reach the library boundary (see
// Kind.Recoverable).
package mwawerr

import "fmt"

// Kind classifies a decoding failure.
type Kind int

const (
	// Generic is an unclassified failure.
	Generic Kind = iota
	// Truncated means a reader or parser hit EOF mid-record.
	Truncated
	// UnsupportedVersion means the header check rejected the file.
	UnsupportedVersion
	// MalformedZone means a size or checksum mismatch was found in a
	// structured record.
	MalformedZone
	// MissingReference means a PLC referenced a catalog entry that does
	// not exist.
	MissingReference
	// StateViolation means a Listener operation was called in a state
	// where it makes no sense.
	StateViolation
	// UnsupportedEncryption means the document is encrypted in a way
	// the library cannot decrypt (only cleartext and RC4 are read).
	UnsupportedEncryption
	// WrongPassword means a supplied password failed verification.
	WrongPassword
)

func (k Kind) String() string {
	switch k {
	case Truncated:
		return "truncated"
	case UnsupportedVersion:
		return "unsupported-version"
	case MalformedZone:
		return "malformed-zone"
	case MissingReference:
		return "missing-reference"
	case StateViolation:
		return "state-violation"
	case UnsupportedEncryption:
		return "unsupported-encryption"
	case WrongPassword:
		return "wrong-password"
	default:
		return "generic"
	}
}

// Error wraps an underlying cause with a Kind and the operation that
// produced it, following the teacher's fmt.Errorf("%w", ...) wrapping
// idiom but keeping the kind machine-readable.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error for the given kind and operation name.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Is lets errors.Is match by kind: it reports true when target is an
// *Error (such as one from Sentinel or New) with the same Kind.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// Sentinel returns a bare *Error carrying only a Kind, suitable for use
// with errors.Is as a comparison target, e.g. errors.Is(err, mwawerr.Sentinel(mwawerr.Truncated)).
func Sentinel(kind Kind) *Error {
	return &Error{Kind: kind}
}

// Recoverable reports whether the propagation policy (spec §7) treats
// this kind as locally recoverable (log-and-default) rather than a
// top-level abort.
func (k Kind) Recoverable() bool {
	switch k {
	case UnsupportedVersion, UnsupportedEncryption, WrongPassword:
		return false
	default:
		return true
	}
}
