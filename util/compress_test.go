package util_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/downfa11-org/diskcompact/util"
)

// TestCompressDecompressRoundtrip verifies roundtrip compression/decompression
func TestCompressDecompressRoundtrip(t *testing.T) {
	testCases := [][]byte{
		[]byte("2"),
		[]byte("2333133121414131402"),
		bytes.Repeat([]byte("9081726354"), 2000),
	}

	for _, tc := range testCases {
		tc := tc
		for _, ct := range []string{"gzip", "lz4", "zstd", "none"} {
			ct := ct
			t.Run(fmt.Sprintf("%s_%dB", ct, len(tc)), func(t *testing.T) {
				compressed, err := util.Compress(tc, ct)
				if err != nil {
					t.Fatalf("compression failed: %v", err)
				}

				decompressed, err := util.Decompress(compressed, ct)
				if err != nil {
					t.Fatalf("decompression failed: %v", err)
				}

				if !bytes.Equal(decompressed, tc) {
					t.Fatalf("roundtrip failed: original=%d decompressed=%d", len(tc), len(decompressed))
				}
			})
		}
	}
}

func TestCompress_Unsupported(t *testing.T) {
	if _, err := util.Compress([]byte("1"), "snappy"); err == nil {
		t.Fatalf("expected error for unsupported codec")
	}
	if _, err := util.Decompress([]byte("1"), "brotli"); err == nil {
		t.Fatalf("expected error for unsupported codec")
	}
}

func TestDecompress_Corrupt(t *testing.T) {
	for _, ct := range []string{"gzip", "zstd"} {
		if _, err := util.Decompress([]byte("definitely not compressed"), ct); err == nil {
			t.Errorf("expected error decoding garbage as %s", ct)
		}
	}
}

func TestDetectCompression(t *testing.T) {
	tests := map[string]string{
		"input.txt":    "none",
		"input":        "none",
		"input.txt.gz": "gzip",
		"INPUT.GZ":     "gzip",
		"map.lz4":      "lz4",
		"map.zst":      "zstd",
		"map.zstd":     "zstd",
	}
	for path, want := range tests {
		if got := util.DetectCompression(path); got != want {
			t.Errorf("DetectCompression(%q) = %q; want %q", path, got, want)
		}
	}
}
