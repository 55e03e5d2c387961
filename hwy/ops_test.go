package hwy

import (
	"math"
	"testing"
)

func TestLoad(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	v := Load(data)

	if v.NumLanes() != MaxLanes[float32]() {
		t.Errorf("Load: got %d lanes, want %d", v.NumLanes(), MaxLanes[float32]())
	}

	for i := 0; i < v.NumLanes() && i < len(data); i++ {
		if v.Lane(i) != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.Lane(i), data[i])
		}
	}
}

func TestLoad_Short(t *testing.T) {
	v := Load([]int32{7, 8})
	for i := 0; i < v.NumLanes(); i++ {
		want := int32(0)
		switch i {
		case 0:
			want = 7
		case 1:
			want = 8
		}
		if v.Lane(i) != want {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.Lane(i), want)
		}
	}
}

func TestLoadFullStoreFull(t *testing.T) {
	n := MaxLanes[float64]()
	src := make([]float64, n+2)
	for i := range src {
		src[i] = float64(i) + 0.5
	}
	dst := make([]float64, n+2)
	dst[n] = -1

	StoreFull(LoadFull(src), dst)
	for i := 0; i < n; i++ {
		if dst[i] != src[i] {
			t.Errorf("StoreFull: lane %d: got %v, want %v", i, dst[i], src[i])
		}
	}
	if dst[n] != -1 {
		t.Errorf("StoreFull wrote past the register: got %v", dst[n])
	}
}

func TestLoadFull_Short(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("LoadFull on a short slice should panic")
		}
	}()
	LoadFull(make([]int64, MaxLanes[int64]()-1))
}

func TestStore_Short(t *testing.T) {
	v := Set[float32](3)
	dst := []float32{0, 0}
	Store(v, dst)
	for i, got := range dst {
		if got != 3 {
			t.Errorf("Store: lane %d: got %v, want 3", i, got)
		}
	}
}

func TestSet(t *testing.T) {
	v := Set[float32](42.0)

	if v.NumLanes() == 0 {
		t.Error("Set created empty vector")
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.Lane(i) != 42.0 {
			t.Errorf("Set: lane %d: got %v, want %v", i, v.Lane(i), 42.0)
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[int32]()

	if v.NumLanes() == 0 {
		t.Error("Zero created empty vector")
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.Lane(i) != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.Lane(i))
		}
	}
}

func TestIota(t *testing.T) {
	v := Iota[uint8]()
	for i := 0; i < v.NumLanes(); i++ {
		if v.Lane(i) != uint8(i) {
			t.Errorf("Iota: lane %d: got %v, want %v", i, v.Lane(i), i)
		}
	}
}

func TestNumLanes(t *testing.T) {
	width := CurrentWidth()
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"int8", Zero[int8]().NumLanes(), width},
		{"uint16", Zero[uint16]().NumLanes(), width / 2},
		{"float32", Zero[float32]().NumLanes(), width / 4},
		{"int32", Zero[int32]().NumLanes(), width / 4},
		{"float64", Zero[float64]().NumLanes(), width / 8},
		{"uint64", Zero[uint64]().NumLanes(), width / 8},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %d lanes, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		fn   func(a, b Vec[float32]) Vec[float32]
		want float32
	}{
		{"Add", Add[float32], 15},
		{"Sub", Sub[float32], 5},
		{"Mul", Mul[float32], 50},
		{"Div", Div[float32], 2},
		{"Min", Min[float32], 5},
		{"Max", Max[float32], 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Set[float32](10.0)
			b := Set[float32](5.0)
			result := tt.fn(a, b)

			for i := 0; i < result.NumLanes(); i++ {
				if result.Lane(i) != tt.want {
					t.Errorf("%s: lane %d: got %v, want %v", tt.name, i, result.Lane(i), tt.want)
				}
			}
			// Operands are values; the op must not modify them.
			if a.Lane(0) != 10 || b.Lane(0) != 5 {
				t.Errorf("%s modified its operands: a=%v b=%v", tt.name, a.Lane(0), b.Lane(0))
			}
		})
	}
}

func TestDiv_Int(t *testing.T) {
	a := Set[int32](-7)
	b := Set[int32](2)
	result := Div(a, b)

	for i := 0; i < result.NumLanes(); i++ {
		if result.Lane(i) != -3 {
			t.Errorf("Div: lane %d: got %v, want -3", i, result.Lane(i))
		}
	}
}

func TestNeg(t *testing.T) {
	v := Set[float32](42.0)
	result := Neg(v)

	for i := 0; i < result.NumLanes(); i++ {
		if result.Lane(i) != -42.0 {
			t.Errorf("Neg: lane %d: got %v, want -42.0", i, result.Lane(i))
		}
	}

	u := Neg(Set[uint8](1))
	if u.Lane(0) != 255 {
		t.Errorf("Neg uint8: got %v, want 255", u.Lane(0))
	}
}

func TestAbs(t *testing.T) {
	v := Set[float32](-42.0)
	result := Abs(v)

	for i := 0; i < result.NumLanes(); i++ {
		if result.Lane(i) != 42.0 {
			t.Errorf("Abs: lane %d: got %v, want 42.0", i, result.Lane(i))
		}
	}

	if got := Abs(Set[int16](-9)).Lane(0); got != 9 {
		t.Errorf("Abs int16: got %v, want 9", got)
	}
	if got := Abs(Set[uint32](9)).Lane(0); got != 9 {
		t.Errorf("Abs uint32: got %v, want 9", got)
	}
}

func TestSqrt(t *testing.T) {
	result := Sqrt(Set[float64](2))
	for i := 0; i < result.NumLanes(); i++ {
		if result.Lane(i) != math.Sqrt2 {
			t.Errorf("Sqrt: lane %d: got %v, want %v", i, result.Lane(i), math.Sqrt2)
		}
	}
}

func TestMulAdd(t *testing.T) {
	result := MulAdd(Set[int64](3), Set[int64](4), Set[int64](5))
	for i := 0; i < result.NumLanes(); i++ {
		if result.Lane(i) != 17 {
			t.Errorf("MulAdd: lane %d: got %v, want 17", i, result.Lane(i))
		}
	}

	fma := FMA(Set[float64](3), Set[float64](4), Set[float64](5))
	if fma.Lane(0) != 17 {
		t.Errorf("FMA: got %v, want 17", fma.Lane(0))
	}
}

func TestComparisons(t *testing.T) {
	v := Iota[int32]()
	three := Set[int32](3)
	n := v.NumLanes()

	tests := []struct {
		name  string
		mask  Mask[int32]
		count int
	}{
		{"Equal", Equal(v, three), 1},
		{"NotEqual", NotEqual(v, three), n - 1},
		{"LessThan", LessThan(v, three), 3},
		{"LessEqual", LessEqual(v, three), 4},
		{"GreaterThan", GreaterThan(v, three), n - 4},
		{"GreaterEqual", GreaterEqual(v, three), n - 3},
	}
	for _, tt := range tests {
		if got := tt.mask.CountTrue(); got != tt.count {
			t.Errorf("%s: CountTrue got %d, want %d", tt.name, got, tt.count)
		}
	}

	if !Equal(v, v).AllTrue() {
		t.Error("Equal(v, v) should be all true")
	}
	if LessThan(v, Zero[int32]()).AnyTrue() {
		t.Error("LessThan(iota, 0) should be all false")
	}
}

func TestIsNaN(t *testing.T) {
	m := IsNaN(Set(float32(math.NaN())))
	if !m.AllTrue() {
		t.Error("IsNaN(NaN) should be all true")
	}
	if IsNaN(Set[float32](1)).AnyTrue() {
		t.Error("IsNaN(1) should be all false")
	}
}

func TestIfThenElse(t *testing.T) {
	v := Iota[float32]()
	mask := GreaterThan(v, Set[float32](1))
	result := IfThenElse(mask, Set[float32](100), Set[float32](-1))

	for i := 0; i < result.NumLanes(); i++ {
		want := float32(-1)
		if i > 1 {
			want = 100
		}
		if result.Lane(i) != want {
			t.Errorf("IfThenElse: lane %d: got %v, want %v", i, result.Lane(i), want)
		}
	}
}

func TestZeroIfNegative(t *testing.T) {
	v := Sub(Iota[int16](), Set[int16](2))
	result := ZeroIfNegative(v)

	for i := 0; i < result.NumLanes(); i++ {
		want := max(int16(i)-2, 0)
		if result.Lane(i) != want {
			t.Errorf("ZeroIfNegative: lane %d: got %v, want %v", i, result.Lane(i), want)
		}
	}
}

func TestBitwise(t *testing.T) {
	a := Set[uint32](0b1100)
	b := Set[uint32](0b1010)

	tests := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"And", And(a, b).Lane(0), 0b1000},
		{"Or", Or(a, b).Lane(0), 0b1110},
		{"Xor", Xor(a, b).Lane(0), 0b0110},
		{"Not", Not(a).Lane(0), ^uint32(0b1100)},
		{"AndNot", AndNot(a, b).Lane(0), 0b0010},
		{"ShiftLeft", ShiftLeft(a, 2).Lane(0), 0b110000},
		{"ShiftRight", ShiftRight(a, 2).Lane(0), 0b11},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %#b, want %#b", tt.name, tt.got, tt.want)
		}
	}

	if got := ShiftRight(Set[int8](-8), 1).Lane(0); got != -4 {
		t.Errorf("ShiftRight int8: got %v, want -4", got)
	}
}

func TestData(t *testing.T) {
	v := Set[int64](5)
	data := v.Data()
	if len(data) != v.NumLanes() {
		t.Fatalf("Data: got %d elements, want %d", len(data), v.NumLanes())
	}
	data[0] = 9
	if v.Lane(0) != 5 {
		t.Error("Data must return a copy")
	}
}

func BenchmarkAffine(b *testing.B) {
	five := Set[float32](5)
	v := Iota[float32]()
	b.ReportAllocs()
	for iter := 0; iter < b.N; iter++ {
		v = Div(MulAdd(v, five, five), five)
	}
}

func TestUnary(t *testing.T) {
	result := Unary(Iota[int32](), func(x int32) int32 { return x*x + 1 })
	for i := 0; i < result.NumLanes(); i++ {
		if want := int32(i*i + 1); result.Lane(i) != want {
			t.Errorf("Unary: lane %d: got %v, want %v", i, result.Lane(i), want)
		}
	}
}
