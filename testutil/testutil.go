// Copyright (c) 2026 bky3227.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/bky3227/skill-checkpoint-server/cliparse"
	"github.com/bky3227/skill-checkpoint-server/db"
)

// SetupTestDB creates a fresh sqlite database for a test. A single open
// connection serializes writers, which keeps concurrent handler tests
// free of SQLITE_BUSY errors.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := GetTestConfig(t)

	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration backed by a
// throwaway sqlite file
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()

	return cliparse.Config{
		Port:         4000,
		DatabaseURL:  filepath.Join(t.TempDir(), "test.db"),
		DatabaseType: "sqlite",
	}
}

// CreateTestQuestion inserts a question and returns its generated id
func CreateTestQuestion(t *testing.T, conn *sql.DB, title, description, category string) int {
	t.Helper()

	var id int
	err := conn.QueryRow(`
		INSERT INTO questions (title, description, category)
		VALUES ($1, $2, $3)
		RETURNING id
	`, title, description, category).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return id
}

// CreateTestAnswer inserts an answer under a question and returns its
// generated id
func CreateTestAnswer(t *testing.T, conn *sql.DB, questionID int, content string) int {
	t.Helper()

	var id int
	err := conn.QueryRow(`
		INSERT INTO answers (question_id, content)
		VALUES ($1, $2)
		RETURNING id
	`, questionID, content).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test answer: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()

	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}
