// Package replicate mirrors a template directory tree into a project
// directory.
package replicate

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/spf13/afero"
)

const (
	// HiddenSuffix marks template entries which are materialized as dotfiles:
	// "gitignore.hidden" becomes ".gitignore".
	HiddenSuffix = ".hidden"

	// DefaultDirPermissions is a mode of created directories.
	DefaultDirPermissions = os.FileMode(0755)
)

// FileModeFunc returns permissions of the destination file. relPath is a
// slash separated path of the source file relative to the replicated root.
type FileModeFunc func(relPath string, srcMode fs.FileMode) fs.FileMode

// SourceFileMode keeps source permissions, making the file writable by owner.
func SourceFileMode(_ string, srcMode fs.FileMode) fs.FileMode {
	return srcMode.Perm() | 0600
}

// Replicator copies directory trees between file systems.
type Replicator struct {
	// Src is a file system to read the template from.
	Src afero.Fs
	// Dst is a file system to create the project in.
	Dst afero.Fs
	// FileMode computes permissions of copied files. SourceFileMode is used
	// if it is not set.
	FileMode FileModeFunc
}

// DestinationName returns the materialized name of a template entry.
func DestinationName(name string) string {
	if len(name) > len(HiddenSuffix) && strings.HasSuffix(name, HiddenSuffix) {
		return "." + strings.TrimSuffix(name, HiddenSuffix)
	}
	return name
}

// Replicate recursively copies srcDir content into dstDir. dstDir and all
// missing parents are created. Files already copied are not removed
// if an error occurs.
func (r Replicator) Replicate(srcDir, dstDir string) error {
	return r.replicate(srcDir, dstDir, "")
}

func (r Replicator) replicate(srcDir, dstDir, relDir string) error {
	if err := r.Dst.MkdirAll(dstDir, DefaultDirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", dstDir, err)
	}

	entries, err := afero.ReadDir(r.Src, srcDir)
	if err != nil {
		return fmt.Errorf("failed to read directory %q: %w", srcDir, err)
	}

	for _, entry := range entries {
		srcPath := path.Join(srcDir, entry.Name())
		dstPath := filepath.Join(dstDir, DestinationName(entry.Name()))
		relPath := path.Join(relDir, entry.Name())

		if entry.IsDir() {
			if err := r.replicate(srcPath, dstPath, relPath); err != nil {
				return err
			}
			continue
		}

		mode := r.fileMode(relPath, entry.Mode())
		if err := r.copyFile(srcPath, dstPath, mode); err != nil {
			return err
		}
		log.Debugf("Copied %s to %s", srcPath, dstPath)
	}

	return nil
}

func (r Replicator) fileMode(relPath string, srcMode fs.FileMode) fs.FileMode {
	if r.FileMode == nil {
		return SourceFileMode(relPath, srcMode)
	}
	return r.FileMode(relPath, srcMode)
}

// copyFile copies file content as is.
func (r Replicator) copyFile(srcPath, dstPath string, mode fs.FileMode) error {
	src, err := r.Src.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", srcPath, err)
	}
	defer src.Close()

	dst, err := r.Dst.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", dstPath, err)
	}

	if _, err = io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("failed to copy %q to %q: %w", srcPath, dstPath, err)
	}
	if err = dst.Close(); err != nil {
		return fmt.Errorf("failed to write %q: %w", dstPath, err)
	}

	// The mode passed to OpenFile is masked by umask.
	if err = r.Dst.Chmod(dstPath, mode); err != nil {
		return fmt.Errorf("failed to change permissions of %q: %w", dstPath, err)
	}

	return nil
}
