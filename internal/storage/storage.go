// Package storage keeps uploaded files (profile pictures, service images,
// contract documents) on local disk or in an S3 bucket.
package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/trainer-marketplace/internal/config"
)

const (
	DirProfilePictures = "profile-pictures"
	DirServiceImages   = "service-images"
	DirContractFiles   = "contract-files"
)

type Store interface {
	// Save stores r under dir with the given object name and returns the
	// path clients use to fetch it.
	Save(ctx context.Context, dir, name string, r io.Reader) (string, error)
	Delete(ctx context.Context, path string) error
}

// ObjectName gives an upload a unique name, keeping its extension.
func ObjectName(original string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(original))
}

func New(cfg *config.Config) (Store, error) {
	if cfg.StorageDriver == "s3" {
		return NewS3(cfg)
	}
	return NewLocal(cfg.UploadDir, LocalURLPrefix)
}
