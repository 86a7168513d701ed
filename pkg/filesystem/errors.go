package filesystem

import "github.com/skybox-app/skybox/pkg/serializer"

var (
	ErrObjectNotExist        = serializer.NewError(serializer.CodeNotFound, "Object not exist", nil)
	ErrParentNotExist        = serializer.NewError(serializer.CodeParentNotExist, "Destination folder not exist", nil)
	ErrFileExisted           = serializer.NewError(serializer.CodeObjectExist, "Object with the same name existed", nil)
	ErrFolderExisted         = serializer.NewError(serializer.CodeObjectExist, "Folder with the same name existed", nil)
	ErrIllegalObjectName     = serializer.NewError(serializer.CodeIllegalObjectName, "Invalid object name", nil)
	ErrCyclicMove            = serializer.NewError(serializer.CodeCyclicMove, "Cannot move a folder into itself", nil)
	ErrFolderCopyUnsupported = serializer.NewError(serializer.CodeUnsupportedOperation, "Folders cannot be copied", nil)
	ErrNoBackingObject       = serializer.NewError(serializer.CodeUnsupportedOperation, "Object has no stored content", nil)
	ErrStorageOperation      = serializer.NewError(serializer.CodeExternalStore, "Storage provider operation failed", nil)
	ErrDBListObjects         = serializer.NewError(serializer.CodeDBError, "Failed to list object records", nil)
	ErrDBDeleteObjects       = serializer.NewError(serializer.CodeDBError, "Failed to delete object records", nil)
	ErrInsertNodeRecord      = serializer.NewError(serializer.CodeDBError, "Failed to insert node record", nil)
	ErrTransaction           = serializer.NewError(serializer.CodeTransactionError, "Transactional update failed", nil)
	ErrUnknownProvider       = serializer.NewError(serializer.CodeInternalSetting, "Unknown storage provider", nil)
)
