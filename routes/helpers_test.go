package routes

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/diarioweb/diario-backend/config"
	"github.com/diarioweb/diario-backend/models"
	"github.com/diarioweb/diario-backend/utils"
)

var dbSeq atomic.Int64

// setupTest wires the router against a fresh in-memory database.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:routes_test_%d?mode=memory&cache=shared&_foreign_keys=on", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	return SetupRouter(gin.New(), db)
}

func createUser(t *testing.T, username, email, password string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Username: username, Email: email, Password: string(hashed), IsActive: true}
	require.NoError(t, config.DB.Create(&user).Error)
	return &user
}

func createStaff(t *testing.T, username, email, password string) *models.User {
	t.Helper()

	user := createUser(t, username, email, password)
	user.IsStaff = true
	require.NoError(t, config.DB.Save(user).Error)
	return user
}

func createTopic(t *testing.T, title, slugStr string) *models.Topic {
	t.Helper()

	topic := models.Topic{Title: title, Slug: slugStr}
	require.NoError(t, config.DB.Create(&topic).Error)
	return &topic
}

func createEntry(t *testing.T, user *models.User, topic *models.Topic, text string) *models.Entry {
	t.Helper()

	entry := models.Entry{Text: text, TopicID: topic.ID, UserID: user.ID}
	require.NoError(t, config.DB.Create(&entry).Error)
	return &entry
}

// sessionCookie fakes a logged-in browser for the given user.
func sessionCookie(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()

	token, err := utils.GenerateToken(user.ID.String(), user.Username, user.CanModerate())
	require.NoError(t, err)
	return &http.Cookie{Name: utils.SessionCookie, Value: token}
}

func doRequest(r http.Handler, method, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func countRows(t *testing.T, model any) int64 {
	t.Helper()

	var count int64
	require.NoError(t, config.DB.Model(model).Count(&count).Error)
	return count
}
