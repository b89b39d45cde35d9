package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/fastroom/reservasi_backend/internal/storage"
)

func newReservationRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	documents, err := storage.New(dir)
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	rc := &ReservationController{DB: nil, Documents: documents}
	r := gin.New()
	r.POST("/reservasi_room", rc.CreateReservation)
	return r, dir
}

func TestCreateReservation_MissingFields(t *testing.T) {
	r, dir := newReservationRouter(t)

	fields := map[string]string{
		"nama":               "Budi",
		"organisasi":         "HMIF",
		"tanggal_peminjaman": "2024-06-01 08:00:00",
		// nim, unit_ruangan, tanggal_kembali absent; no file attached
	}
	buf, contentType := multipartBody(t, fields, "surat_permohonan", "")
	req := httptest.NewRequest(http.MethodPost, "/reservasi_room", buf)
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
	if body["message"] != "Please provide complete reservation details" {
		t.Errorf("message = %q", body["message"])
	}

	missing, ok := body["missing"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing map absent in %v", body)
	}
	wantMissing := map[string]bool{
		"nama":               false,
		"nim":                true,
		"organisasi":         false,
		"unit_ruangan":       true,
		"tanggal_peminjaman": false,
		"tanggal_kembali":    true,
		"surat_permohonan":   true,
	}
	for field, want := range wantMissing {
		if got := missing[field]; got != want {
			t.Errorf("missing[%s] = %v, want %v", field, got, want)
		}
	}

	if n := dirEntries(t, dir); n != 0 {
		t.Errorf("rejected request left %d file(s) in the document dir", n)
	}
}

func TestCreateReservation_InvalidDate(t *testing.T) {
	r, dir := newReservationRouter(t)

	fields := map[string]string{
		"nama":               "Budi",
		"nim":                "13518001",
		"organisasi":         "HMIF",
		"unit_ruangan":       "Lab A",
		"tanggal_peminjaman": "not-a-date",
		"tanggal_kembali":    "2024-06-01 10:00:00",
	}
	buf, contentType := multipartBody(t, fields, "surat_permohonan", "permohonan.pdf")
	req := httptest.NewRequest(http.MethodPost, "/reservasi_room", buf)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
	}
	body := decodeEnvelope(t, w)
	if body["message"] != "Invalid tanggal_peminjaman" {
		t.Errorf("message = %q", body["message"])
	}
	// Date parsing runs before the document is stored.
	if n := dirEntries(t, dir); n != 0 {
		t.Errorf("rejected request left %d file(s) in the document dir", n)
	}
}
