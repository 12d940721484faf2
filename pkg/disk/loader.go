package disk

import (
	"bytes"
	"fmt"

	"github.com/downfa11-org/diskcompact/util"
	"golang.org/x/exp/mmap"
)

// ReadFile maps path read-only, decompresses it and strips surrounding
// whitespace. compression "auto" picks the codec from the extension.
func ReadFile(path, compression string) ([]byte, error) {
	mapper, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open disk map %s: %w", path, err)
	}
	defer func() {
		if err := mapper.Close(); err != nil {
			util.Warn("failed to unmap %s: %v", path, err)
		}
	}()

	raw := make([]byte, mapper.Len())
	if len(raw) > 0 {
		if _, err := mapper.ReadAt(raw, 0); err != nil {
			return nil, fmt.Errorf("read disk map %s: %w", path, err)
		}
	}

	if compression == "auto" {
		compression = util.DetectCompression(path)
	}
	data, err := util.Decompress(raw, compression)
	if err != nil {
		return nil, fmt.Errorf("decompress disk map %s (%s): %w", path, compression, err)
	}
	return bytes.TrimSpace(data), nil
}

// LoadFile reads and parses the disk map stored at path.
func LoadFile(path, compression string) (*Medium, []byte, error) {
	data, err := ReadFile(path, compression)
	if err != nil {
		return nil, nil, err
	}
	m, err := Parse(string(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, data, nil
}
