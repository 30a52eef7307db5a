package codec

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// castUint8 narrows a tensor backing slice to uint8.
//
// The cast wraps and never clamps. Integers keep their low eight bits, so 256
// becomes 0 and -1 becomes 255. Floats are truncated toward zero and then
// reduced modulo 256, so 300.7 becomes 44. NaN and infinities become 0.
// Booleans become 0 or 1.
func castUint8(data interface{}) ([]uint8, error) {
	switch d := data.(type) {
	case []uint8:
		out := make([]uint8, len(d))
		copy(out, d)
		return out, nil
	case []int8:
		return wrapIntegers(d), nil
	case []int16:
		return wrapIntegers(d), nil
	case []int32:
		return wrapIntegers(d), nil
	case []int64:
		return wrapIntegers(d), nil
	case []int:
		return wrapIntegers(d), nil
	case []uint16:
		return wrapIntegers(d), nil
	case []uint32:
		return wrapIntegers(d), nil
	case []uint64:
		return wrapIntegers(d), nil
	case []uint:
		return wrapIntegers(d), nil
	case []float32:
		out := make([]uint8, len(d))
		for i, v := range d {
			out[i] = wrapFloat32(v)
		}
		return out, nil
	case []float64:
		out := make([]uint8, len(d))
		for i, v := range d {
			out[i] = wrapFloat64(v)
		}
		return out, nil
	case []bool:
		out := make([]uint8, len(d))
		for i, v := range d {
			if v {
				out[i] = 1
			}
		}
		return out, nil
	}
	return nil, errors.Errorf("unsupported element type %T", data)
}

func wrapIntegers[T integer](in []T) []uint8 {
	out := make([]uint8, len(in))
	for i, v := range in {
		out[i] = uint8(v)
	}
	return out
}

func wrapFloat64(v float64) uint8 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(v), 256)
	if m < 0 {
		m += 256
	}
	return uint8(m)
}

func wrapFloat32(v float32) uint8 {
	if math32.IsNaN(v) || math32.IsInf(v, 0) {
		return 0
	}
	m := math32.Mod(math32.Trunc(v), 256)
	if m < 0 {
		m += 256
	}
	return uint8(m)
}
