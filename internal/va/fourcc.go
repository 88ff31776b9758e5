package va

import "fmt"

// FourCC is a four character pixel format code stored little endian, so the
// first character occupies the lowest byte.
type FourCC uint32

// MakeFourCC builds a code from its four characters.
func MakeFourCC(a, b, c, d byte) FourCC {
	return FourCC(uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24)
}

// String renders the code's characters in storage order, stopping at the
// first NUL byte.
func (f FourCC) String() string {
	b := [4]byte{byte(f), byte(f >> 8), byte(f >> 16), byte(f >> 24)}
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b[:])
}

// MarshalYAML emits the character form when the code has four printable
// characters, the numeric form otherwise.
func (f FourCC) MarshalYAML() (any, error) {
	s := f.String()
	if len(s) == 4 && printable(s) {
		return s, nil
	}
	return uint32(f), nil
}

// UnmarshalYAML accepts either the four character form or the numeric form.
func (f *FourCC) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case string:
		if len(v) != 4 {
			return fmt.Errorf("fourcc %q: want exactly 4 characters", v)
		}
		*f = MakeFourCC(v[0], v[1], v[2], v[3])
	case int:
		*f = FourCC(uint32(v))
	case int64:
		*f = FourCC(uint32(v))
	case uint64:
		*f = FourCC(uint32(v))
	case float64:
		*f = FourCC(uint32(v))
	default:
		return fmt.Errorf("fourcc: unsupported value %v", raw)
	}
	return nil
}

func printable(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
