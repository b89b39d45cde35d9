package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/fastroom/reservasi_backend/internal/metrics"
	"github.com/fastroom/reservasi_backend/internal/models"
	"github.com/fastroom/reservasi_backend/internal/storage"
	"github.com/fastroom/reservasi_backend/internal/validation"
)

type RoomController struct {
	DB     *gorm.DB
	Images *storage.DiskStore
}

// CreateRoom handles POST /room: multipart form with the room fields plus a
// gambar_ruangan image. Validation runs before the image is written so a
// rejected request leaves neither a row nor a file behind.
func (rc *RoomController) CreateRoom(c *gin.Context) {
	namaRuangan := c.PostForm("nama_ruangan")
	deskripsi := c.PostForm("deskripsi")
	lokasi := c.PostForm("lokasi")
	fh, fhErr := c.FormFile("gambar_ruangan")

	missing := validation.Missing(map[string]string{
		"nama_ruangan":   namaRuangan,
		"deskripsi":      deskripsi,
		"lokasi":         lokasi,
		"gambar_ruangan": uploadName(fh, fhErr),
	})
	if len(missing) > 0 {
		respondError(c, http.StatusBadRequest, "Please provide complete room details", nil)
		return
	}

	path, err := rc.Images.Save(fh)
	if err != nil {
		log.Error().Err(err).Str("file", fh.Filename).Msg("store room image")
		respondError(c, http.StatusInternalServerError, "Failed to create room", err)
		return
	}
	metrics.UploadsTotal.WithLabelValues("room_image").Inc()

	room := models.Room{
		NamaRuangan:   namaRuangan,
		Deskripsi:     deskripsi,
		Lokasi:        lokasi,
		GambarRuangan: path,
	}
	if err := rc.DB.Create(&room).Error; err != nil {
		log.Error().Err(err).Str("nama_ruangan", namaRuangan).Msg("insert room")
		respondError(c, http.StatusInternalServerError, "Failed to create room", err)
		return
	}
	respondOK(c, "Room created successfully", room)
}

// ListRooms handles GET /rooms.
func (rc *RoomController) ListRooms(c *gin.Context) {
	var rooms []models.Room
	if err := rc.DB.Find(&rooms).Error; err != nil {
		log.Error().Err(err).Msg("list rooms")
		respondError(c, http.StatusInternalServerError, "Failed to retrieve rooms", err)
		return
	}
	respondOK(c, "", rooms)
}

// GetRoom handles GET /room/:id.
func (rc *RoomController) GetRoom(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	var room models.Room
	if err := rc.DB.Where("id = ?", id).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Room not found", nil)
			return
		}
		log.Error().Err(err).Str("id", id).Msg("get room")
		respondError(c, http.StatusInternalServerError, "Failed to retrieve room", err)
		return
	}
	respondOK(c, "", room)
}
