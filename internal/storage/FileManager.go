package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"synthink/internal/storage/interfaces"
)

var keyPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// FileManager stores each snapshot key as one file in dir. Writes go to a
// temporary file that is synced and renamed over the previous snapshot.
type FileManager struct {
	dir        string
	compressor interfaces.CompressorInterface
}

// NewFileManager creates dir if needed. A nil compressor stores plain JSON.
func NewFileManager(dir string, compressor interfaces.CompressorInterface) (*FileManager, error) {
	if dir == "" {
		return nil, errors.New("storage directory must be provided")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &FileManager{dir: dir, compressor: compressor}, nil
}

func (f *FileManager) Path(key string) string {
	name := key + ".json"
	if f.compressor != nil {
		name += ".zst"
	}
	return filepath.Join(f.dir, name)
}

func (f *FileManager) Save(key string, data []byte) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("invalid snapshot key %q", key)
	}
	if f.compressor != nil {
		compressed, err := f.compressor.Compress(data)
		if err != nil {
			return err
		}
		data = compressed
	}
	return f.SaveToFile(f.Path(key), data)
}

func (f *FileManager) Load(key string) ([]byte, error) {
	if !keyPattern.MatchString(key) {
		return nil, fmt.Errorf("invalid snapshot key %q", key)
	}
	data, err := os.ReadFile(f.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if f.compressor == nil {
		return data, nil
	}
	return f.compressor.Decompress(data)
}

func (f *FileManager) SaveToFile(fileName string, data []byte) error {
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	if f.compressor != nil {
		f.compressor.Close()
	}
}
