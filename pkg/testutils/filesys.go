package testutils

import (
	"path/filepath"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/projectionfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
)

// TestFileSystem returns a memory file system containing a copy of
// the given directory of the os file system below the same path.
// Modifications never reach the original files.
func TestFileSystem(path string) (vfs.FileSystem, error) {
	fs := memoryfs.New()

	src, err := projectionfs.New(osfs.OsFs, path)
	if err != nil {
		return nil, err
	}
	err = fs.MkdirAll(path, 0o700)
	if err != nil {
		return nil, err
	}
	err = copyDir(src, "/", fs, path)
	if err != nil {
		return nil, err
	}
	return fs, nil
}

// MemoryFileSystem returns a memory file system with the given
// files (path to content).
func MemoryFileSystem(files map[string]string) (vfs.FileSystem, error) {
	fs := memoryfs.New()
	for p, c := range files {
		err := fs.MkdirAll(filepath.Dir(p), 0o700)
		if err != nil {
			return nil, err
		}
		err = vfs.WriteFile(fs, p, []byte(c), 0o600)
		if err != nil {
			return nil, err
		}
	}
	return fs, nil
}

func copyDir(src vfs.FileSystem, from string, dst vfs.FileSystem, to string) error {
	list, err := vfs.ReadDir(src, from)
	if err != nil {
		return err
	}
	for _, e := range list {
		s := filepath.Join(from, e.Name())
		d := filepath.Join(to, e.Name())
		if e.IsDir() {
			err = dst.MkdirAll(d, 0o700)
			if err == nil {
				err = copyDir(src, s, dst, d)
			}
		} else {
			var data []byte
			data, err = vfs.ReadFile(src, s)
			if err == nil {
				err = vfs.WriteFile(dst, d, data, 0o600)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
