package middleware

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"

	model "github.com/skybox-app/skybox/models"
	"github.com/skybox-app/skybox/pkg/util"
)

var mock sqlmock.Sqlmock

func TestMain(m *testing.M) {
	var db *sql.DB
	var err error
	db, mock, err = sqlmock.New()
	if err != nil {
		panic("failed to open sqlmock database")
	}

	model.DB, _ = gorm.Open("mysql", db)
	defer db.Close()

	gin.SetMode(gin.TestMode)
	m.Run()
}

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request, _ = http.NewRequest("GET", "/", nil)
	Session("test-secret")(c)
	return c, rec
}

func TestCurrentUser(t *testing.T) {
	asserts := assert.New(t)

	// anonymous request
	c, _ := testContext()
	CurrentUser()(c)
	_, ok := c.Get("user")
	asserts.False(ok)

	// signed-in session
	c, _ = testContext()
	util.SetSession(c, map[string]interface{}{"user_id": uint(1)})
	mock.ExpectQuery("SELECT(.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(1, "alice@example.com"))
	CurrentUser()(c)
	asserts.NoError(mock.ExpectationsWereMet())
	user, ok := c.Get("user")
	asserts.True(ok)
	asserts.Equal("alice@example.com", user.(*model.User).Email)

	// stale session pointing at a removed account
	c, _ = testContext()
	util.SetSession(c, map[string]interface{}{"user_id": uint(2)})
	mock.ExpectQuery("SELECT(.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	CurrentUser()(c)
	asserts.NoError(mock.ExpectationsWereMet())
	_, ok = c.Get("user")
	asserts.False(ok)
}

func TestCurrentUser_CachedLookup(t *testing.T) {
	asserts := assert.New(t)

	c, _ := testContext()
	util.SetSession(c, map[string]interface{}{"user_id": uint(7)})
	mock.ExpectQuery("SELECT(.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(7, "dave@example.com"))
	CurrentUser()(c)
	asserts.NoError(mock.ExpectationsWereMet())

	// a later request with the same session never reaches the database
	c, _ = testContext()
	util.SetSession(c, map[string]interface{}{"user_id": uint(7)})
	CurrentUser()(c)
	asserts.NoError(mock.ExpectationsWereMet())
	user, ok := c.Get("user")
	asserts.True(ok)
	asserts.Equal("dave@example.com", user.(*model.User).Email)
}

func TestAuthRequired(t *testing.T) {
	asserts := assert.New(t)

	// no account attached
	c, _ := testContext()
	AuthRequired()(c)
	asserts.True(c.IsAborted())

	// account attached
	c, _ = testContext()
	user := &model.User{}
	user.ID = 1
	c.Set("user", user)
	AuthRequired()(c)
	asserts.False(c.IsAborted())
}
