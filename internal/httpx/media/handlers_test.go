package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	testutil "fiber-ent-market-pg/internal/httpx/kit/testutil"
)

// memStore is an in-memory blob.Store for tests.
type memStore struct {
	objects map[string][]byte
}

func newMemStore() *memStore { return &memStore{objects: map[string][]byte{}} }

func (m *memStore) PutObject(_ context.Context, key string, data []byte, _ string) (int64, error) {
	m.objects[key] = data
	return int64(len(data)), nil
}

func (m *memStore) GetObject(_ context.Context, key string) ([]byte, error) {
	b, ok := m.objects[key]
	if !ok {
		return nil, fmt.Errorf("object %s not found", key)
	}
	return b, nil
}

func (m *memStore) PresignGet(_ context.Context, key string, _ int) (string, error) {
	return "https://cdn.test/" + key, nil
}

func (m *memStore) DeleteObject(_ context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write: %v", err)
	}
	_ = w.Close()
	req := httptest.NewRequest(http.MethodPost, "/media/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUpload_StoresAndPresigns(t *testing.T) {
	store := newMemStore()
	app := testutil.NewApp(func(app *fiber.App) {
		app.Post("/media/upload", UploadHandler(store))
	})

	res, err := app.Test(uploadRequest(t, "photo.png", []byte("png-bytes")))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct {
		Data struct {
			Key  string `json:"key"`
			URL  string `json:"url"`
			Size int    `json:"size"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(env.Data.Key, "media/") || !strings.HasSuffix(env.Data.Key, ".png") {
		t.Fatalf("key=%s", env.Data.Key)
	}
	if env.Data.URL != "https://cdn.test/"+env.Data.Key {
		t.Fatalf("url=%s", env.Data.URL)
	}
	if env.Data.Size != len("png-bytes") {
		t.Fatalf("size=%d", env.Data.Size)
	}
	if _, ok := store.objects[env.Data.Key]; !ok {
		t.Fatalf("object not stored")
	}
}

func TestUpload_RejectsUnsupportedExtension(t *testing.T) {
	app := testutil.NewApp(func(app *fiber.App) {
		app.Post("/media/upload", UploadHandler(newMemStore()))
	})

	res, err := app.Test(uploadRequest(t, "script.exe", []byte("nope")))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestUpload_MissingFile(t *testing.T) {
	app := testutil.NewApp(func(app *fiber.App) {
		app.Post("/media/upload", UploadHandler(newMemStore()))
	})

	req := httptest.NewRequest(http.MethodPost, "/media/upload", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestUpload_StoreNotConfigured(t *testing.T) {
	app := testutil.NewApp(func(app *fiber.App) {
		app.Post("/media/upload", UploadHandler(nil))
	})

	res, err := app.Test(uploadRequest(t, "photo.jpg", []byte("jpg")))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status=%d", res.StatusCode)
	}
}
