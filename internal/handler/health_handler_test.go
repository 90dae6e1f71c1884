package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeDiagMock struct {
	pingErr  error
	name     string
	colls    []string
	collsErr error
}

func (m *storeDiagMock) Ping(ctx context.Context) error { return m.pingErr }

func (m *storeDiagMock) DatabaseName() string { return m.name }

func (m *storeDiagMock) CollectionNames(ctx context.Context) ([]string, error) {
	return m.colls, m.collsErr
}

type cacheDiagMock struct {
	pingErr error
}

func (m *cacheDiagMock) Ping(ctx context.Context) error { return m.pingErr }

func TestHealthHandlerRoot(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHealthHandler(&storeDiagMock{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	c.Request = req

	handler.Root(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "EE Department Backend Running")
}

func TestHealthHandlerTestConnected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHealthHandler(&storeDiagMock{
		name:  "ee_department",
		colls: []string{"user", "level", "section"},
	}, &cacheDiagMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	c.Request = req

	handler.Test(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"connected"`)
	assert.Contains(t, w.Body.String(), `"database_name":"ee_department"`)
	assert.Contains(t, w.Body.String(), `"cache":"connected"`)
}

func TestHealthHandlerTestDegradesTo200(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHealthHandler(&storeDiagMock{pingErr: errors.New("server selection timeout")}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	c.Request = req

	handler.Test(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "server selection timeout")
	assert.Contains(t, w.Body.String(), `"connection_status":"not connected"`)
	assert.Contains(t, w.Body.String(), `"cache":"not configured"`)
}

func TestHealthHandlerTestTruncatesLongCollectionList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	colls := make([]string, 20)
	for i := range colls {
		colls[i] = "coll"
	}
	handler := NewHealthHandler(&storeDiagMock{name: "ee_department", colls: colls}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	c.Request = req

	handler.Test(c)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Collections []string `json:"collections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Collections, 15)
}
