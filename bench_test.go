package huffzip

import (
	"bytes"
	"io"
	"testing"
)

func benchData(n int) []byte {
	pattern := []byte("the quick brown fox jumps over the lazy dog 0123456789\n")
	buf := make([]byte, 0, n+len(pattern))
	for len(buf) < n {
		buf = append(buf, pattern...)
	}
	return buf[:n]
}

func BenchmarkCompress(b *testing.B) {
	data := benchData(1 << 20)

	var sized bytes.Buffer
	if err := Compress(bytes.NewReader(data), &sized); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Compress(bytes.NewReader(data), io.Discard); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportMetric(float64(len(data))/float64(sized.Len()), "ratio")
}

func BenchmarkCompressCached(b *testing.B) {
	data := benchData(1 << 20)
	cache, err := NewCodecCache(4)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Compress(bytes.NewReader(data), io.Discard, WithCodecCache(cache)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	data := benchData(1 << 20)
	var blob bytes.Buffer
	if err := Compress(bytes.NewReader(data), &blob); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Decompress(bytes.NewReader(blob.Bytes()), io.Discard); err != nil {
			b.Fatal(err)
		}
	}
}
