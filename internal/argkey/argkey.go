// Package argkey derives deterministic string keys from call arguments.
//
// A key is the encoded positional arguments, the encoded named arguments
// sorted by name, and, in type-sensitive mode, the runtime types of every
// argument in the same order. Encoding is pure: equal inputs produce
// byte-identical keys across calls and processes. Keys longer than
// maxKeyLen collapse to their SHA-256 hex digest.
package argkey

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrUnhashable reports an argument that cannot participate in a cache
// key: functions, channels, cyclic structures, and other values without
// a canonical encoding.
var ErrUnhashable = errors.New("argkey: unhashable argument")

// maxKeyLen caps the literal key length; longer encodings are digested.
const maxKeyLen = 128

// Section and element separators. Strings are quoted before they enter
// the key, so neither byte can occur unescaped inside an encoded value.
const (
	unitSep   = '\x1f'
	recordSep = '\x1e'
)

// Normalize returns the canonical key for one call with the given
// positional and named arguments.
//
// In the default mode, values that compare equal across numeric kinds
// share a key: the integer 1 and the float 1.0 both render as "1".
// With typed set, the runtime type of every argument is appended, so
// int(1) and float64(1) produce distinct keys.
//
// Named arguments are keyed by sorted name; the order of the supplied
// map never matters. A nil and an empty map are equivalent.
func Normalize(args []any, named map[string]any, typed bool) (string, error) {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, v := range args {
		if i > 0 {
			b.WriteByte(unitSep)
		}
		if err := encodeValue(&b, v); err != nil {
			return "", fmt.Errorf("positional argument %d: %w", i, err)
		}
	}
	// The record separator is written unconditionally: every literal key
	// contains it, so a literal key can never look like a hex digest.
	b.WriteByte(recordSep)
	for i, name := range names {
		if i > 0 {
			b.WriteByte(unitSep)
		}
		b.WriteString(strconv.Quote(name))
		b.WriteByte('=')
		if err := encodeValue(&b, named[name]); err != nil {
			return "", fmt.Errorf("named argument %q: %w", name, err)
		}
	}

	if typed {
		b.WriteByte(recordSep)
		n := 0
		writeType := func(v any) {
			if n > 0 {
				b.WriteByte(unitSep)
			}
			fmt.Fprintf(&b, "%T", v)
			n++
		}
		for _, v := range args {
			writeType(v)
		}
		for _, name := range names {
			writeType(named[name])
		}
	}

	key := b.String()
	if len(key) > maxKeyLen {
		sum := sha256.Sum256([]byte(key))
		return hex.EncodeToString(sum[:]), nil
	}
	return key, nil
}

// encodeValue appends one argument's canonical encoding to b.
// Scalars render directly; strings and Stringers are Go-quoted so
// separator bytes cannot appear unescaped; everything else goes through
// canonical JSON (encoding/json sorts map keys).
func encodeValue(b *strings.Builder, v any) error {
	switch x := v.(type) {
	case nil:
		b.WriteString("null")
	case string:
		b.WriteString(strconv.Quote(x))
	case bool:
		b.WriteString(strconv.FormatBool(x))
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		fmt.Fprintf(b, "%d", x)
	case float32:
		writeFloat(b, float64(x))
	case float64:
		writeFloat(b, x)
	case complex64, complex128:
		fmt.Fprintf(b, "%v", x)
	case fmt.Stringer:
		b.WriteString(strconv.Quote(x.String()))
	default:
		data, err := json.Marshal(x)
		if err != nil {
			return fmt.Errorf("%w: %T (%v)", ErrUnhashable, v, err)
		}
		b.Write(data)
	}
	return nil
}

// writeFloat renders integral floats exactly like the matching integer,
// mirroring numeric equality in the default mode (1.0 and 1 share a key).
func writeFloat(b *strings.Builder, f float64) {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < 1<<62 {
		b.WriteString(strconv.FormatInt(int64(f), 10))
		return
	}
	b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
}
