package service

import (
	"context"
	"io"
	"log"

	"github.com/BruksfildServices01/trainer-marketplace/internal/storage"
)

// Upload is one file received from a multipart form.
type Upload struct {
	Name string
	Body io.Reader
}

// saveAll stores every upload in dir. On failure whatever was already
// written is removed again.
func saveAll(ctx context.Context, store storage.Store, dir string, uploads []Upload) ([]string, error) {
	paths := make([]string, 0, len(uploads))
	for _, u := range uploads {
		p, err := store.Save(ctx, dir, storage.ObjectName(u.Name), u.Body)
		if err != nil {
			removeAll(ctx, store, paths)
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func removeAll(ctx context.Context, store storage.Store, paths []string) {
	for _, p := range paths {
		if err := store.Delete(ctx, p); err != nil {
			log.Printf("storage_delete_failed path=%s err=%v", p, err)
		}
	}
}
