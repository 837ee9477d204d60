package encoding

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cuv/endian"
	"github.com/arloliu/cuv/errs"
)

func engines() map[string]endian.EndianEngine {
	return map[string]endian.EndianEngine{
		"little": endian.GetLittleEndianEngine(),
		"big":    endian.GetBigEndianEngine(),
	}
}

func TestCodeRawEncoder_Write(t *testing.T) {
	for name, engine := range engines() {
		t.Run(name, func(t *testing.T) {
			encoder := NewCodeRawEncoder(engine)
			defer encoder.Finish()

			codes := []uint16{0, 255, 0x8000, 0xe000, 0xffff}
			for _, code := range codes {
				encoder.Write(code)
			}

			require.Equal(t, len(codes), encoder.Len())
			require.Equal(t, len(codes)*CodeSize, encoder.Size())

			decoder := NewCodeRawDecoder(engine)
			require.Equal(t, codes, slices.Collect(decoder.All(encoder.Bytes(), encoder.Len())))
		})
	}
}

func TestCodeRawEncoder_ByteOrder(t *testing.T) {
	little := NewCodeRawEncoder(endian.GetLittleEndianEngine())
	defer little.Finish()
	big := NewCodeRawEncoder(endian.GetBigEndianEngine())
	defer big.Finish()

	little.Write(0x80ff)
	big.Write(0x80ff)

	require.Equal(t, []byte{0xff, 0x80}, little.Bytes())
	require.Equal(t, []byte{0x80, 0xff}, big.Bytes())
}

func TestCodeRawEncoder_WriteSlice(t *testing.T) {
	for name, engine := range engines() {
		t.Run(name, func(t *testing.T) {
			encoder := NewCodeRawEncoder(engine)
			defer encoder.Finish()

			codes := make([]uint16, 20_000)
			for i := range codes {
				codes[i] = uint16(i * 7)
			}

			encoder.Write(42)
			encoder.WriteSlice(codes)
			encoder.WriteSlice(nil)

			want := append([]uint16{42}, codes...)
			require.Equal(t, len(want), encoder.Len())

			decoder := NewCodeRawDecoder(engine)
			count, err := decoder.Count(encoder.Bytes())
			require.NoError(t, err)
			require.Equal(t, len(want), count)
			require.Equal(t, want, decoder.DecodeSlice(nil, encoder.Bytes(), count))
		})
	}
}

func TestCodeRawEncoder_ResetAndFinish(t *testing.T) {
	encoder := NewCodeRawEncoder(endian.GetLittleEndianEngine())
	encoder.WriteSlice([]uint16{1, 2, 3})

	encoder.Reset()
	require.Zero(t, encoder.Len())
	require.Zero(t, encoder.Size())

	encoder.Write(9)
	require.Equal(t, []byte{9, 0}, encoder.Bytes())

	encoder.Finish()
	require.Panics(t, func() { encoder.Write(1) })
	require.Panics(t, func() { encoder.WriteSlice([]uint16{1}) })
}

func TestCodeRawEncoder_UseAfterFinish(t *testing.T) {
	encoder := NewCodeRawEncoder(endian.GetLittleEndianEngine())
	encoder.WriteSlice([]uint16{1, 2})
	encoder.Finish()

	const msg = "encoder already finished - cannot use after Finish()"
	require.PanicsWithValue(t, msg, func() { encoder.Write(1) })
	require.PanicsWithValue(t, msg, func() { encoder.WriteSlice([]uint16{1}) })
	require.PanicsWithValue(t, msg, func() { _ = encoder.Bytes() })
	require.PanicsWithValue(t, msg, func() { _ = encoder.Size() })
	require.PanicsWithValue(t, msg, func() { encoder.Reset() })

	require.Zero(t, encoder.Len())
	require.NotPanics(t, func() { encoder.Finish() })
}

func TestCodeRawDecoder_At(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	data := []byte{0xff, 0x00, 0x00, 0x80, 0x7f}
	decoder := NewCodeRawDecoder(engine)

	code, ok := decoder.At(data, 0, 2)
	require.True(t, ok)
	require.Equal(t, uint16(255), code)

	code, ok = decoder.At(data, 1, 2)
	require.True(t, ok)
	require.Equal(t, uint16(0x8000), code)

	_, ok = decoder.At(data, 2, 2)
	require.False(t, ok)
	_, ok = decoder.At(data, -1, 2)
	require.False(t, ok)
	_, ok = decoder.At(data, 2, 3)
	require.False(t, ok, "truncated trailing code")
}

func TestCodeRawDecoder_Truncated(t *testing.T) {
	decoder := NewCodeRawDecoder(endian.GetLittleEndianEngine())
	data := []byte{0x01, 0x00, 0x02}

	_, err := decoder.Count(data)
	require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)

	require.Equal(t, []uint16{1}, slices.Collect(decoder.All(data, 5)))
}

func TestCodeRawDecoder_EarlyStop(t *testing.T) {
	decoder := NewCodeRawDecoder(endian.GetLittleEndianEngine())
	data := []byte{1, 0, 2, 0, 3, 0}

	var got []uint16
	for code := range decoder.All(data, 3) {
		got = append(got, code)
		if len(got) == 2 {
			break
		}
	}

	require.Equal(t, []uint16{1, 2}, got)
}
