package filesystem

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"

	"github.com/skybox-app/skybox/pkg/serializer"
)

func TestDelete_FolderSubtree(t *testing.T) {
	asserts := assert.New(t)
	handler := &MockHandler{}
	fs := testFileSystem(handler)
	fs.User.Storage = 42

	// root lookup
	mock.ExpectQuery("SELECT(.+)").
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "path", "is_folder"}).
			AddRow(1, "uid-1", "uid-1", true))
	// subtree discovery
	mock.ExpectQuery("SELECT(.+)").
		WithArgs(1, true, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "path", "is_folder"}).
			AddRow(1, "uid-1", "uid-1", true))
	mock.ExpectQuery("SELECT(.+)").
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "path", "parent_id", "is_folder", "size", "object_id"}).
			AddRow(2, "uid-2", "uid-1/uid-2", 1, true, 0, "").
			AddRow(3, "uid-3", "/idp-alice/uid-1/a.txt", 1, false, 10, "obj-3"))
	mock.ExpectQuery("SELECT(.+)").
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "path", "parent_id", "is_folder", "size", "object_id"}).
			AddRow(4, "uid-4", "/idp-alice/uid-1/uid-2/b.txt", 2, false, 32, "obj-4"))

	handler.On("BulkDelete", testifymock.Anything, []string{"obj-3", "obj-4"}).
		Return([]string{}, nil)
	handler.On("DeleteFolder", testifymock.Anything, testifymock.Anything).
		Return(nil)

	// records removed last
	mock.ExpectBegin()
	mock.ExpectExec("DELETE(.+)").WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectCommit()
	// storage counter returned
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE(.+)").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := fs.Delete(context.Background(), []uint{1})
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.NoError(err)
	handler.AssertExpectations(t)

	asserts.Equal([]uint{1, 2, 3, 4}, result.DeletedIDs)
	asserts.Equal([]string{"obj-3", "obj-4"}, result.DeletedObjectIDs)
	asserts.Empty(result.NotFound)
	asserts.Equal(uint64(0), fs.User.Storage)

	// objects first, then folders deepest first
	asserts.Equal([]string{
		"BulkDelete",
		"DeleteFolder:/idp-alice/uid-1/uid-2",
		"DeleteFolder:/idp-alice/uid-1",
	}, handler.CallOrder)
}

func TestDelete_LeafOnly(t *testing.T) {
	asserts := assert.New(t)
	handler := &MockHandler{}
	fs := testFileSystem(handler)
	fs.User.Storage = 10

	mock.ExpectQuery("SELECT(.+)").
		WithArgs(3, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "size", "is_folder", "object_id"}).
			AddRow(3, 10, false, "obj-3"))

	handler.On("BulkDelete", testifymock.Anything, []string{"obj-3"}).
		Return([]string{}, nil)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE(.+)").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE(.+)").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := fs.Delete(context.Background(), []uint{3})
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.NoError(err)
	handler.AssertExpectations(t)
	handler.AssertNotCalled(t, "DeleteFolder", testifymock.Anything, testifymock.Anything)

	asserts.Equal([]uint{3}, result.DeletedIDs)
	asserts.Equal(uint64(0), fs.User.Storage)
}

func TestDelete_ObjectDeleteFailureAbortsBeforeRecords(t *testing.T) {
	asserts := assert.New(t)
	handler := &MockHandler{}
	fs := testFileSystem(handler)

	mock.ExpectQuery("SELECT(.+)").
		WithArgs(3, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "size", "is_folder", "object_id"}).
			AddRow(3, 10, false, "obj-3"))

	handler.On("BulkDelete", testifymock.Anything, []string{"obj-3"}).
		Return(nil, assert.AnError)

	// no DELETE statement may run
	_, err := fs.Delete(context.Background(), []uint{3})
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.Error(err)
	asserts.Equal(serializer.CodeExternalStore, err.(serializer.AppError).Code)
}

func TestDelete_FolderDeleteFailureIsNotFatal(t *testing.T) {
	asserts := assert.New(t)
	handler := &MockHandler{}
	fs := testFileSystem(handler)

	mock.ExpectQuery("SELECT(.+)").
		WithArgs(5, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "path", "is_folder"}).
			AddRow(5, "uid-5", "uid-5", true))
	mock.ExpectQuery("SELECT(.+)").
		WithArgs(1, true, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "path", "is_folder"}).
			AddRow(5, "uid-5", "uid-5", true))
	mock.ExpectQuery("SELECT(.+)").
		WithArgs(1, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	handler.On("DeleteFolder", testifymock.Anything, "/idp-alice/uid-5").
		Return(assert.AnError)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE(.+)").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := fs.Delete(context.Background(), []uint{5})
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.NoError(err)
	handler.AssertExpectations(t)
	asserts.Equal([]uint{5}, result.DeletedIDs)
}

func TestDelete_NotFoundIsolation(t *testing.T) {
	asserts := assert.New(t)
	handler := &MockHandler{}
	fs := testFileSystem(handler)
	fs.User.Storage = 10

	// only one of the two requested roots is owned by the caller
	mock.ExpectQuery("SELECT(.+)").
		WithArgs(3, 99, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "size", "is_folder", "object_id"}).
			AddRow(3, 10, false, "obj-3"))

	handler.On("BulkDelete", testifymock.Anything, []string{"obj-3"}).
		Return([]string{}, nil)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE(.+)").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE(.+)").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := fs.Delete(context.Background(), []uint{3, 99})
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.NoError(err)
	asserts.Equal([]uint{3}, result.DeletedIDs)
	asserts.Equal([]uint{99}, result.NotFound)
}

func TestDelete_OverlappingRootsFreeOnce(t *testing.T) {
	asserts := assert.New(t)
	handler := &MockHandler{}
	fs := testFileSystem(handler)
	fs.User.Storage = 10

	// the leaf is requested alongside the folder that contains it
	mock.ExpectQuery("SELECT(.+)").
		WithArgs(3, 1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "path", "parent_id", "is_folder", "size", "object_id"}).
			AddRow(3, "uid-3", "/idp-alice/uid-1/a.txt", 1, false, 10, "obj-3").
			AddRow(1, "uid-1", "uid-1", nil, true, 0, ""))
	mock.ExpectQuery("SELECT(.+)").
		WithArgs(1, true, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "path", "is_folder"}).
			AddRow(1, "uid-1", "uid-1", true))
	mock.ExpectQuery("SELECT(.+)").
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "path", "parent_id", "is_folder", "size", "object_id"}).
			AddRow(3, "uid-3", "/idp-alice/uid-1/a.txt", 1, false, 10, "obj-3"))

	handler.On("BulkDelete", testifymock.Anything, []string{"obj-3"}).
		Return([]string{}, nil)
	handler.On("DeleteFolder", testifymock.Anything, "/idp-alice/uid-1").
		Return(nil)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE(.+)").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE(.+)").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := fs.Delete(context.Background(), []uint{3, 1})
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.NoError(err)
	handler.AssertExpectations(t)

	asserts.Equal([]uint{3, 1}, result.DeletedIDs)
	asserts.Equal([]string{"obj-3"}, result.DeletedObjectIDs)
	// the leaf frees its size once even though two roots cover it
	asserts.Equal(uint64(10), result.FreedSize)
	asserts.Equal(uint64(0), fs.User.Storage)
}

func TestDelete_NothingFound(t *testing.T) {
	asserts := assert.New(t)
	handler := &MockHandler{}
	fs := testFileSystem(handler)

	mock.ExpectQuery("SELECT(.+)").
		WithArgs(99, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	result, err := fs.Delete(context.Background(), []uint{99})
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.Error(err)
	asserts.Equal([]uint{99}, result.NotFound)
	handler.AssertNotCalled(t, "BulkDelete", testifymock.Anything, testifymock.Anything)
}
