package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	stateFileMode = 0o600
	stateDirMode  = 0o700
	stateDir      = ".config/tabzen"
)

// stateFile serializes access to one TOML file, within the process through a
// shared RWMutex and across processes through a sibling .lock file.
type stateFile struct {
	path        string
	tempPattern string
	lockPath    string
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

func newStateFile(cfg *viper.Viper, key, fileName string) (*stateFile, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	path := cfg.GetString(key)
	if path == "" {
		path = filepath.Join(homeDir, stateDir, fileName)
	}

	path, err = normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &stateFile{
		path:        path,
		tempPattern: "." + fileName + "-*.tmp",
		lockPath:    path + ".lock",
		mu:          lockForPath(path),
	}, nil
}

func (f *stateFile) Path() string {
	return f.path
}

func (f *stateFile) withReadLock(fn func() error) error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(f.path), stateDirMode); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	fileLock := flock.New(f.lockPath)
	if err := fileLock.RLock(); err != nil {
		return fmt.Errorf("lock %s: %w", filepath.Base(f.path), err)
	}
	defer func() { _ = fileLock.Unlock() }()

	return fn()
}

func (f *stateFile) withWriteLock(fn func() error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), stateDirMode); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	fileLock := flock.New(f.lockPath)
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", filepath.Base(f.path), err)
	}
	defer func() { _ = fileLock.Unlock() }()

	return fn()
}

// decode reports false when the file does not exist yet.
func (f *stateFile) decode(out any) (bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filepath.Base(f.path), err)
	}

	if err := toml.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", filepath.Base(f.path), err)
	}

	return true, nil
}

func (f *stateFile) encode(file any) error {
	name := filepath.Base(f.path)

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(f.path), f.tempPattern)
	if err != nil {
		return fmt.Errorf("create temp %s: %w", name, err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp %s: %w", name, err)
	}

	if err := tempFile.Chmod(stateFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp %s: %w", name, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp %s: %w", name, err)
	}

	if err := os.Rename(tempName, f.path); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}

	cleanup = false
	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve state path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
