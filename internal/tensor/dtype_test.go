package tensor

import "testing"

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Uint8, 1},
		{Uint16, 2},
		{Uint32, 4},
		{Uint64, 8},
		{Int8, 1},
		{Int16, 2},
		{Int32, 4},
		{Int64, 8},
		{Float32, 4},
		{Float64, 8},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Uint8, "uint8"},
		{Uint32, "uint32"},
		{Int32, "int32"},
		{Int64, "int64"},
		{Float32, "float32"},
		{Float64, "float64"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.str {
			t.Errorf("%s.String() = %q, want %q", tt.dtype, got, tt.str)
		}
	}
}

func TestDataTypeKinds(t *testing.T) {
	if !Float32.IsFloat() || Float32.IsSigned() || Float32.IsUnsigned() {
		t.Error("Float32 should be a float kind")
	}
	if !Int16.IsSigned() || Int16.IsFloat() || Int16.IsUnsigned() {
		t.Error("Int16 should be a signed kind")
	}
	if !Uint64.IsUnsigned() || Uint64.IsFloat() || Uint64.IsSigned() {
		t.Error("Uint64 should be an unsigned kind")
	}
}

func TestInferDataType(t *testing.T) {
	if dt := inferDataType(float32(0)); dt != Float32 {
		t.Errorf("inferDataType(float32) = %v, want Float32", dt)
	}
	if dt := inferDataType(float64(0)); dt != Float64 {
		t.Errorf("inferDataType(float64) = %v, want Float64", dt)
	}
	if dt := inferDataType(int32(0)); dt != Int32 {
		t.Errorf("inferDataType(int32) = %v, want Int32", dt)
	}
	if dt := inferDataType(uint8(0)); dt != Uint8 {
		t.Errorf("inferDataType(uint8) = %v, want Uint8", dt)
	}
}
