package cuv

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cuv/blob"
	"github.com/arloliu/cuv/codec"
	"github.com/arloliu/cuv/errs"
	"github.com/arloliu/cuv/format"
)

func TestNew(t *testing.T) {
	v := New(1, 0, 0)
	require.Equal(t, [3]float32{1, 0, 0}, v.Decode())
	require.Equal(t, uint16(255), v.Code())
}

func TestFromArray(t *testing.T) {
	original := [3]float32{1, 0, 0}
	v := FromArray(original)
	require.Equal(t, original, v.Decode())
	require.Equal(t, New(0.3, -0.4, 0.5), FromArray([3]float32{0.3, -0.4, 0.5}))
}

func TestFromCode(t *testing.T) {
	v := FromCode(255)
	require.Equal(t, uint16(255), v.Code())
	require.Equal(t, [3]float32{1, 0, 0}, v.Decode())

	for _, code := range []uint16{0, 1, 0x1fff, 0x8000, 0xffff} {
		require.Equal(t, code, FromCode(code).Code())
	}
}

func TestVec_DecodeWith(t *testing.T) {
	table := codec.BuildTable()

	for _, code := range []uint16{0, 255, 16511, 32768, 57344, 65535} {
		v := FromCode(code)
		require.Equal(t, v.Decode(), v.DecodeWith(table))
	}
}

func TestVec_DegenerateInputs(t *testing.T) {
	v := New(float32(math.Inf(-1)), 0, 0)
	require.Equal(t, uint16(32768), v.Code())

	xyz := v.Decode()
	require.Equal(t, [3]float32{0, 0, 1}, xyz)
	require.True(t, math.Signbit(float64(xyz[0])))
	require.False(t, math.Signbit(float64(xyz[1])))

	require.Equal(t, uint16(0), New(0, 0, 0).Code())
	require.Equal(t, uint16(0), New(float32(math.NaN()), 0, 0).Code())
}

func TestVec_String(t *testing.T) {
	require.Equal(t, "Vec(0x00ff)[1 0 0]", New(1, 0, 0).String())
}

func TestSharedTable(t *testing.T) {
	const goroutines = 16

	tables := make([]*codec.Table, goroutines)
	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tables[i] = SharedTable()
		}()
	}
	wg.Wait()

	for _, table := range tables {
		require.Same(t, tables[0], table)
	}
	require.Equal(t, *codec.BuildTable(), *tables[0])
}

func TestVec_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := g; c < 1<<16; c += 8 {
				xyz := FromCode(uint16(c)).Decode()
				norm := math.Sqrt(float64(xyz[0])*float64(xyz[0]) + float64(xyz[1])*float64(xyz[1]) + float64(xyz[2])*float64(xyz[2]))
				if math.Abs(norm-1) > 1e-6 {
					t.Errorf("code %d: norm %v", c, norm)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestEncodeDecodeVectors(t *testing.T) {
	vs := [][3]float32{{1, 0, 0}, {0, -1, 0}, {0, 0, 1}, {-3, 0, 0}}

	for _, comp := range []format.CompressionType{format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(comp.String(), func(t *testing.T) {
			data, err := EncodeVectors(vs, blob.WithCompression(comp), blob.WithBigEndian())
			require.NoError(t, err)

			got, err := DecodeVectors(data)
			require.NoError(t, err)
			require.Equal(t, [][3]float32{{1, 0, 0}, {0, -1, 0}, {0, 0, 1}, {-1, 0, 0}}, got)
		})
	}
}

func TestEncodeDecodeVectors_Errors(t *testing.T) {
	_, err := EncodeVectors(nil, blob.WithCompression(0))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	_, err = DecodeVectors([]byte{1, 2, 3})
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	encoder, err := NewEncoder()
	require.NoError(t, err)
	require.NoError(t, encoder.AddCode(New(0, 1, 0).Code()))
	data, err := encoder.Finish()
	require.NoError(t, err)

	decoder, err := NewDecoder(data)
	require.NoError(t, err)
	b, err := decoder.Decode()
	require.NoError(t, err)
	require.Equal(t, 1, b.Len())
}
