package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lcdc/selections-go/config"
	"github.com/lcdc/selections-go/db"
	"github.com/lcdc/selections-go/internal/testutils"
	"github.com/lcdc/selections-go/middleware"
	"github.com/lcdc/selections-go/response"
	"github.com/lcdc/selections-go/routes"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/lib/pq"
)

var router *gin.Engine

// user ids captured at seed time, keyed by username
var seededUserIDs = map[string]string{}

func TestMain(m *testing.M) {
	sqlDB, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.New(
			log.New(io.Discard, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		log.Fatal(err)
	}

	config.LoadConfig()
	middleware.Init()
	db.InitWithGormDB(gormDB)
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal(err)
	}

	gin.SetMode(gin.TestMode)
	router = gin.New()
	routes.RegisterRoutes(router, gormDB)

	seedUser("owner", "OWNER")
	seedUser("sally", "SALESPERSON")
	seedUser("jane", "CUSTOMER")
	seedUser("carl", "CUSTOMER")

	code := m.Run()
	os.Exit(code)
}

// --- Helper functions ---

// doRequest makes a JSON request against the in-memory router and, when
// expectStatus is non-zero, asserts the status code.
func doRequest(t *testing.T, method, path, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	var req *http.Request

	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}

	return w
}

func seedUser(username, role string) {
	reqBody := fmt.Sprintf(
		`{"username":%q,"password":"123456","email":"%s@test.com","first_name":%q,"last_name":"Test","role":%q}`,
		username, username, username, role)
	req, _ := http.NewRequest("POST", "/register", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		log.Fatalf("failed to seed user %s: %d %s", username, w.Code, w.Body.String())
	}

	var user struct {
		UserID string `json:"user_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
		log.Fatalf("failed to decode seeded user %s: %v", username, err)
	}
	seededUserIDs[username] = user.UserID
}

func loginUser(t *testing.T, username string) string {
	resp := doRequest(t, "POST", "/login", "", map[string]string{
		"username": username,
		"password": "123456",
	}, http.StatusOK)

	var result response.TokenResponse
	err := json.Unmarshal(resp.Body.Bytes(), &result)
	require.NoError(t, err)
	return result.Token
}
