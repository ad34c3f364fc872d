package huffzip_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/MeanZhang/huffzip"
)

// ExampleCompress demonstrates a compress/decompress round trip.
func ExampleCompress() {
	input := "banana banana banana"

	var compressed bytes.Buffer
	if err := huffzip.Compress(strings.NewReader(input), &compressed); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%d bytes compressed to %d\n", len(input), compressed.Len())

	var restored bytes.Buffer
	if err := huffzip.Decompress(&compressed, &restored); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(restored.String())

	// Output:
	// 20 bytes compressed to 18
	// banana banana banana
}

// ExampleWithProgress demonstrates observing operation progress.
func ExampleWithProgress() {
	data := strings.Repeat("progress ", 100)

	var compressed bytes.Buffer
	err := huffzip.Compress(strings.NewReader(data), &compressed,
		huffzip.WithProgress(func(percent int) {
			fmt.Printf("%d%%\n", percent)
		}))
	if err != nil {
		fmt.Println(err)
	}

	// Output:
	// 100%
}

// ExampleWithCodecCache demonstrates codec reuse across compressions.
func ExampleWithCodecCache() {
	cache, err := huffzip.NewCodecCache(16)
	if err != nil {
		fmt.Println(err)
		return
	}

	payload := "same distribution every time"
	for i := 0; i < 3; i++ {
		var compressed bytes.Buffer
		if err := huffzip.Compress(strings.NewReader(payload), &compressed,
			huffzip.WithCodecCache(cache)); err != nil {
			fmt.Println(err)
			return
		}
	}
	fmt.Printf("codecs built: %d\n", cache.Len())

	// Output:
	// codecs built: 1
}
