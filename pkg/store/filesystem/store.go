package filesystem

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/mandelsoft/goutils/general"
	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/mandelsoft/zykov/pkg/store"
)

const SUFFIX = ".txt"

var log = logging.DynamicLogger(logging.DefaultContext(), store.REALM)

// Store keeps every graph definition in a file <name>.txt
// below a base directory.
type Store struct {
	lock sync.Mutex
	path string
	fs   vfs.FileSystem
}

var _ store.Store = (*Store)(nil)

func New(path string, fss ...vfs.FileSystem) (*Store, error) {
	fs := general.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...)

	err := fs.MkdirAll(path, 0o700)
	if err != nil && !errors.Is(err, vfs.ErrExist) {
		return nil, err
	}
	return &Store{path: path, fs: fs}, nil
}

func (s *Store) Store(name, expression string) error {
	if err := store.ValidateName(name); err != nil {
		return err
	}
	s.lock.Lock()
	defer s.lock.Unlock()

	log.Debug("writing graph {{name}}", "name", name)
	return vfs.WriteFile(s.fs, s.Path(name), []byte(expression), 0o600)
}

func (s *Store) Load(name string) (string, bool, error) {
	if err := store.ValidateName(name); err != nil {
		return "", false, err
	}
	s.lock.Lock()
	defer s.lock.Unlock()

	data, err := vfs.ReadFile(s.fs, s.Path(name))
	if err != nil {
		if errors.Is(err, vfs.ErrNotExist) {
			log.Debug("graph {{name}} not found", "name", name)
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

func (s *Store) List() ([]string, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	list, err := vfs.ReadDir(s.fs, s.path)
	if err != nil {
		if errors.Is(err, vfs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var result []string
	for _, e := range list {
		if e.IsDir() || !strings.HasSuffix(e.Name(), SUFFIX) {
			continue
		}
		n := strings.TrimSuffix(e.Name(), SUFFIX)
		if store.CheckName(n) {
			result = append(result, n)
		}
	}
	slices.Sort(result)
	return result, nil
}

func (s *Store) Delete(name string) (bool, error) {
	if err := store.ValidateName(name); err != nil {
		return false, err
	}
	s.lock.Lock()
	defer s.lock.Unlock()

	err := s.fs.Remove(s.Path(name))
	if err != nil {
		if errors.Is(err, vfs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	log.Debug("deleted graph {{name}}", "name", name)
	return true, nil
}

// Path returns the file path used for the given graph name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.path, name+SUFFIX)
}
