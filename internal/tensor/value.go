package tensor

import (
	"fmt"
	"math"
)

// Value is a runtime-typed scalar: a single component or index entry tagged
// with its DataType. Arithmetic between values dispatches on the tag and
// produces a result of the same tag; mixing values of different tags is a
// usage error and panics.
type Value struct {
	dtype DataType
	bits  uint64
}

// ValueOf wraps a Go numeric value in a runtime-typed Value.
func ValueOf[T ComponentType](v T) Value {
	switch x := any(v).(type) {
	case uint8:
		return Value{Uint8, uint64(x)}
	case uint16:
		return Value{Uint16, uint64(x)}
	case uint32:
		return Value{Uint32, uint64(x)}
	case uint64:
		return Value{Uint64, x}
	case int8:
		return signedValue(Int8, int64(x))
	case int16:
		return signedValue(Int16, int64(x))
	case int32:
		return signedValue(Int32, int64(x))
	case int64:
		return signedValue(Int64, x)
	case float32:
		return Value{Float32, uint64(math.Float32bits(x))}
	case float64:
		return Value{Float64, math.Float64bits(x)}
	default:
		panic("unsupported type")
	}
}

// ZeroValue returns the zero of the given data type.
func ZeroValue(dt DataType) Value {
	return Value{dtype: dt}
}

// floatValue builds a floating-point Value of the given kind.
func floatValue(dt DataType, f float64) Value {
	if dt == Float32 {
		return Value{dt, uint64(math.Float32bits(float32(f)))}
	}
	return Value{dt, math.Float64bits(f)}
}

// signedValue builds a signed integer Value, truncating to the kind's width
// and keeping the bits sign-extended so comparisons stay cheap.
func signedValue(dt DataType, i int64) Value {
	shift := 64 - uint(8*dt.Size())
	return Value{dt, uint64(i << shift >> shift)}
}

// unsignedValue builds an unsigned integer Value, truncating to the kind's
// width.
func unsignedValue(dt DataType, u uint64) Value {
	if dt.Size() == 8 {
		return Value{dt, u}
	}
	mask := uint64(1)<<uint(8*dt.Size()) - 1
	return Value{dt, u & mask}
}

// valueFromBits reconstructs a Value from raw buffer bits.
func valueFromBits(dt DataType, raw uint64) Value {
	switch {
	case dt.IsSigned():
		return signedValue(dt, int64(raw))
	case dt.IsUnsigned():
		return unsignedValue(dt, raw)
	default:
		return Value{dt, raw}
	}
}

// DataType returns the value's runtime type tag.
func (v Value) DataType() DataType {
	return v.dtype
}

// Float64 returns the value converted to float64.
func (v Value) Float64() float64 {
	switch {
	case v.dtype == Float32:
		return float64(math.Float32frombits(uint32(v.bits)))
	case v.dtype == Float64:
		return math.Float64frombits(v.bits)
	case v.dtype.IsSigned():
		return float64(int64(v.bits))
	default:
		return float64(v.bits)
	}
}

// Int64 returns the value converted to int64.
func (v Value) Int64() int64 {
	switch {
	case v.dtype.IsFloat():
		return int64(v.Float64())
	default:
		return int64(v.bits)
	}
}

// Int returns the value converted to int.
func (v Value) Int() int {
	return int(v.Int64())
}

// Uint64 returns the value converted to uint64.
func (v Value) Uint64() uint64 {
	if v.dtype.IsFloat() {
		return uint64(v.Float64())
	}
	return v.bits
}

// Interface returns the value as its concrete Go type.
func (v Value) Interface() any {
	switch v.dtype {
	case Uint8:
		return uint8(v.bits)
	case Uint16:
		return uint16(v.bits)
	case Uint32:
		return uint32(v.bits)
	case Uint64:
		return v.bits
	case Int8:
		return int8(v.bits)
	case Int16:
		return int16(v.bits)
	case Int32:
		return int32(v.bits)
	case Int64:
		return int64(v.bits)
	case Float32:
		return math.Float32frombits(uint32(v.bits))
	case Float64:
		return math.Float64frombits(v.bits)
	default:
		panic("unknown data type")
	}
}

// mustMatch panics if the two values carry different type tags.
func (v Value) mustMatch(o Value, op string) {
	if v.dtype != o.dtype {
		panic(fmt.Sprintf("cannot %s values of type %s and %s", op, v.dtype, o.dtype))
	}
}

// Add returns v + o. Both values must have the same type tag.
func (v Value) Add(o Value) Value {
	v.mustMatch(o, "add")
	switch {
	case v.dtype.IsFloat():
		return floatValue(v.dtype, v.Float64()+o.Float64())
	case v.dtype.IsSigned():
		return signedValue(v.dtype, int64(v.bits)+int64(o.bits))
	default:
		return unsignedValue(v.dtype, v.bits+o.bits)
	}
}

// Mul returns v * o. Both values must have the same type tag.
func (v Value) Mul(o Value) Value {
	v.mustMatch(o, "multiply")
	switch {
	case v.dtype.IsFloat():
		return floatValue(v.dtype, v.Float64()*o.Float64())
	case v.dtype.IsSigned():
		return signedValue(v.dtype, int64(v.bits)*int64(o.bits))
	default:
		return unsignedValue(v.dtype, v.bits*o.bits)
	}
}

// Equal reports whether v and o hold the same value. Both values must have
// the same type tag.
func (v Value) Equal(o Value) bool {
	v.mustMatch(o, "compare")
	return v.bits == o.bits
}

// Less reports whether v orders before o. Both values must have the same
// type tag.
func (v Value) Less(o Value) bool {
	v.mustMatch(o, "compare")
	switch {
	case v.dtype.IsFloat():
		return v.Float64() < o.Float64()
	case v.dtype.IsSigned():
		return int64(v.bits) < int64(o.bits)
	default:
		return v.bits < o.bits
	}
}

// String returns a human-readable representation of the value.
func (v Value) String() string {
	return fmt.Sprintf("%v", v.Interface())
}
