package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const LocalURLPrefix = "/uploads"

type Local struct {
	root   string
	prefix string
}

func NewLocal(root, prefix string) (*Local, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Local{root: root, prefix: strings.TrimRight(prefix, "/")}, nil
}

func (l *Local) Root() string {
	return l.root
}

func (l *Local) Save(_ context.Context, dir, name string, r io.Reader) (string, error) {
	target := filepath.Join(l.root, dir, filepath.Base(name))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(target)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(target)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	return path.Join(l.prefix, dir, filepath.Base(name)), nil
}

// Delete removes a file previously returned by Save. Missing files and
// paths outside the upload root are ignored.
func (l *Local) Delete(_ context.Context, p string) error {
	rel := strings.TrimPrefix(p, l.prefix+"/")
	if rel == p || strings.Contains(rel, "..") {
		return nil
	}

	err := os.Remove(filepath.Join(l.root, filepath.FromSlash(rel)))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

var _ Store = (*Local)(nil)
