package nas

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadSendsMultipartForm(t *testing.T) {
	var gotPath, gotOverwrite, gotFilename, gotContent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotPath = r.FormValue("path")
		gotOverwrite = r.FormValue("overwrite")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFilename = header.Filename
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		gotContent = string(content)

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, "schedules")
	err := client.Upload(context.Background(), "2024/03. March", "2024.03 Production.xlsx", []byte("workbook"))
	require.NoError(t, err)

	assert.Equal(t, "schedules/2024/03. March", gotPath)
	assert.Equal(t, "false", gotOverwrite)
	assert.Equal(t, "2024.03 Production.xlsx", gotFilename)
	assert.Equal(t, "workbook", gotContent)
}

func TestUploadNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("file already exists"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "schedules")
	err := client.Upload(context.Background(), "2024", "report.xlsx", []byte("x"))
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "already exists")
}

func TestUploadContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL, "schedules")
	err := client.Upload(ctx, "2024", "report.xlsx", []byte("x"))
	assert.Error(t, err)
}
