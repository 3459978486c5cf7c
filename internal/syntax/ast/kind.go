package ast

// Kind is the kind of a term in the tree.
type Kind int

// Term kinds, the line comment is the "kind" discriminator used by
// the JSON representation of the tree.
//
//go:generate stringer -type Kind -linecomment
const (
	KindInvalid  Kind = iota // Invalid
	KindInt                  // Int
	KindStr                  // Str
	KindBool                 // Bool
	KindVar                  // Var
	KindFunction             // Function
	KindCall                 // Call
	KindLet                  // Let
	KindBinary               // Binary
	KindIf                   // If
	KindTuple                // Tuple
	KindFirst                // First
	KindSecond               // Second
	KindPrint                // Print
)

// MarshalText implements [encoding.TextMarshaler] for [Kind].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind returns the [Kind] whose discriminator is s.
//
// "Fn" is accepted as an alias for [KindFunction]. If s is not a known
// discriminator, [KindInvalid] and false are returned.
func ParseKind(s string) (Kind, bool) {
	if s == "Fn" {
		return KindFunction, true
	}

	for kind := KindInt; kind <= KindPrint; kind++ {
		if kind.String() == s {
			return kind, true
		}
	}

	return KindInvalid, false
}
