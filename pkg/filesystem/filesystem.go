package filesystem

import (
	"github.com/gofrs/uuid"

	model "github.com/skybox-app/skybox/models"
	"github.com/skybox-app/skybox/pkg/conf"
	"github.com/skybox-app/skybox/pkg/storage"
	storagemock "github.com/skybox-app/skybox/pkg/storage/mock"
	"github.com/skybox-app/skybox/pkg/storage/qiniu"
	"github.com/skybox-app/skybox/pkg/storage/s3"
)

// FileSystem a user-scoped view of the node tree and its backing
// object store. Every operation is bounded to User's nodes.
type FileSystem struct {
	User *model.User

	// Handler object-storage provider adapter
	Handler storage.Handler
}

// NewFileSystem initializes a filesystem for the given owner with the
// configured storage provider
func NewFileSystem(user *model.User) (*FileSystem, error) {
	handler, err := DispatchHandler()
	if err != nil {
		return nil, err
	}

	return &FileSystem{
		User:    user,
		Handler: handler,
	}, nil
}

// DispatchHandler builds the storage provider adapter selected in the
// configuration file
func DispatchHandler() (storage.Handler, error) {
	switch conf.StorageConfig.Provider {
	case "qiniu":
		return qiniu.NewDriver(
			conf.StorageConfig.AccessKey,
			conf.StorageConfig.SecretKey,
			conf.StorageConfig.Bucket,
			conf.StorageConfig.CDNDomain,
		), nil
	case "s3":
		return s3.NewDriver(
			conf.StorageConfig.AccessKey,
			conf.StorageConfig.SecretKey,
			conf.StorageConfig.Bucket,
			conf.StorageConfig.Endpoint,
			conf.StorageConfig.Region,
			conf.StorageConfig.CDNDomain,
		)
	case "mock":
		return storagemock.NewDriver(conf.StorageConfig.CDNDomain), nil
	default:
		return nil, ErrUnknownProvider
	}
}

// newUID issues a node identifier independent of the database primary
// key, used as the node's segment in materialized paths
func newUID() string {
	id, err := uuid.NewV4()
	if err != nil {
		// exhausted entropy source, not recoverable here
		panic(err)
	}
	return id.String()
}
