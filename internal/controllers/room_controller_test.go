package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/fastroom/reservasi_backend/internal/storage"
)

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("WriteField(%s) error = %v", k, err)
		}
	}
	if fileField != "" && fileName != "" {
		fw, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("CreateFormFile() error = %v", err)
		}
		if _, err := fw.Write([]byte("file content")); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func dirEntries(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir(%s): %v", dir, err)
	}
	return len(entries)
}

// A rejected room creation must answer 400 with the aggregate message and
// write neither a file nor a row. The DB is nil on purpose: reaching it
// would panic the test.
func TestCreateRoom_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	images, err := storage.New(dir)
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	rc := &RoomController{DB: nil, Images: images}
	r := gin.New()
	r.POST("/room", rc.CreateRoom)

	tests := []struct {
		name   string
		fields map[string]string
		file   string
	}{
		{"no image", map[string]string{"nama_ruangan": "Lab A", "deskripsi": "desc", "lokasi": "Bldg 1"}, ""},
		{"empty name", map[string]string{"nama_ruangan": "", "deskripsi": "desc", "lokasi": "Bldg 1"}, "lab.png"},
		{"absent lokasi", map[string]string{"nama_ruangan": "Lab A", "deskripsi": "desc"}, "lab.png"},
		{"empty form", map[string]string{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, contentType := multipartBody(t, tt.fields, "gambar_ruangan", tt.file)
			req := httptest.NewRequest(http.MethodPost, "/room", buf)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
			}
			body := decodeEnvelope(t, w)
			if body["error"] != true {
				t.Errorf("error flag = %v, want true", body["error"])
			}
			if body["message"] != "Please provide complete room details" {
				t.Errorf("message = %q", body["message"])
			}
			if n := dirEntries(t, dir); n != 0 {
				t.Errorf("rejected request left %d file(s) in the image dir", n)
			}
		})
	}
}
