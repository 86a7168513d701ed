package filesystem

import (
	"context"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"

	"github.com/skybox-app/skybox/pkg/storage"
)

func TestUpload(t *testing.T) {
	asserts := assert.New(t)
	handler := &MockHandler{}
	fs := testFileSystem(handler)

	handler.On("Upload", testifymock.Anything, testifymock.MatchedBy(func(req *storage.UploadRequest) bool {
		return req.Folder == "/idp-alice" && req.FileName == "a.txt" && req.UniqueName
	})).Return(&storage.UploadResult{
		ObjectID: "obj-1",
		Name:     "a.txt",
		Path:     "/idp-alice/a.txt",
		URL:      "https://cdn/obj-1",
		Size:     5,
		MIMEType: "text/plain",
	}, nil)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT(.+)").WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE(.+)").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	node, err := fs.Upload(context.Background(), &UploadTask{
		Name:     "a.txt",
		Size:     5,
		MIMEType: "text/plain",
		Source:   strings.NewReader("hello"),
	})
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.NoError(err)
	handler.AssertExpectations(t)

	asserts.Equal("obj-1", node.ObjectID)
	asserts.Equal(uint64(5), fs.User.Storage)
}

func TestUpload_IllegalName(t *testing.T) {
	asserts := assert.New(t)
	fs := testFileSystem(&MockHandler{})

	_, err := fs.Upload(context.Background(), &UploadTask{Name: "a<b"})
	asserts.Equal(ErrIllegalObjectName, err)
}

func TestUpload_StorageFailure(t *testing.T) {
	asserts := assert.New(t)
	handler := &MockHandler{}
	fs := testFileSystem(handler)

	handler.On("Upload", testifymock.Anything, testifymock.Anything).
		Return(nil, assert.AnError)

	// no INSERT may run
	_, err := fs.Upload(context.Background(), &UploadTask{
		Name:   "a.txt",
		Source: strings.NewReader("hello"),
	})
	asserts.NoError(mock.ExpectationsWereMet())
	asserts.Error(err)
	asserts.Equal(uint64(0), fs.User.Storage)
}
