package service

import (
	"context"
	"net/http"

	"github.com/euscan/euscanwww/exception"
	"github.com/euscan/euscanwww/repository"
	"github.com/euscan/euscanwww/utils"
	"github.com/euscan/euscanwww/view"
	log "github.com/sirupsen/logrus"
)

const worldFileContentType = "text/plain; charset=utf-8"

// WorldArchiveService keeps a copy of every distinct uploaded world file in object storage.
type WorldArchiveService interface {
	IsEnabled() bool
	ArchiveWorld(ctx context.Context, data []byte) (string, error)
}

// NewWorldArchiveService returns a disabled service when worldFileRepository is nil.
func NewWorldArchiveService(worldFileRepository repository.WorldFileRepository) WorldArchiveService {
	return &worldArchiveServiceImpl{worldFileRepository: worldFileRepository}
}

type worldArchiveServiceImpl struct {
	worldFileRepository repository.WorldFileRepository
}

func (w worldArchiveServiceImpl) IsEnabled() bool {
	return w.worldFileRepository != nil
}

// ArchiveWorld stores data under world/<xxh3 of content> unless the object already exists.
func (w worldArchiveServiceImpl) ArchiveWorld(ctx context.Context, data []byte) (string, error) {
	if !w.IsEnabled() {
		return "", &exception.CustomError{
			Status:  http.StatusServiceUnavailable,
			Code:    exception.StorageDisabled,
			Message: exception.StorageDisabledMsg,
		}
	}
	key := WorldFileKey(data)

	if err := w.worldFileRepository.EnsureBucket(ctx); err != nil {
		return "", err
	}
	exists, err := w.worldFileRepository.FileExists(ctx, key)
	if err != nil {
		return "", err
	}
	if exists {
		log.Debugf("World file %s is already archived", key)
		return key, nil
	}
	if err := w.worldFileRepository.PutFile(ctx, key, data, worldFileContentType); err != nil {
		return "", err
	}
	log.Infof("Archived world file %s (%d bytes)", key, len(data))
	return key, nil
}

func WorldFileKey(data []byte) string {
	return view.WORLD_FILES_PREFIX + utils.GetEncodedXXHash128(data)
}
