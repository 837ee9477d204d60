package codec

import "testing"

var (
	benchCode   uint16
	benchVector [3]float32
	benchTable  *Table
)

func BenchmarkBuildTable(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		benchTable = BuildTable()
	}
}

func BenchmarkPack(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		benchCode = Pack(1, 0, 0)
	}
}

func BenchmarkUnpack(b *testing.B) {
	table := BuildTable()

	b.ReportAllocs()
	for b.Loop() {
		benchVector = Unpack(255, table)
	}
}

func BenchmarkPackSlice(b *testing.B) {
	src := make([][3]float32, 1024)
	for i := range src {
		src[i] = [3]float32{float32(i), float32(-i), 1}
	}
	dst := make([]uint16, 0, len(src))

	b.ReportAllocs()
	b.SetBytes(int64(len(src) * 12))
	for b.Loop() {
		dst = PackSlice(dst[:0], src)
	}
}

func BenchmarkUnpackSlice(b *testing.B) {
	table := BuildTable()
	codes := make([]uint16, 1024)
	for i := range codes {
		codes[i] = uint16(i * 64)
	}
	dst := make([][3]float32, 0, len(codes))

	b.ReportAllocs()
	b.SetBytes(int64(len(codes) * 2))
	for b.Loop() {
		dst = UnpackSlice(dst[:0], codes, table)
	}
}
