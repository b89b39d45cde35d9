package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/fastroom/reservasi_backend/internal/metrics"
	"github.com/fastroom/reservasi_backend/internal/models"
	"github.com/fastroom/reservasi_backend/internal/storage"
	"github.com/fastroom/reservasi_backend/internal/timeutil"
	"github.com/fastroom/reservasi_backend/internal/validation"
)

type ReservationController struct {
	DB        *gorm.DB
	Documents *storage.DiskStore
}

// reservationDTO is the listing shape with borrow dates rendered as civil
// WIB date-time strings.
type reservationDTO struct {
	ID                uint   `json:"id"`
	Nama              string `json:"nama"`
	Nim               string `json:"nim"`
	Organisasi        string `json:"organisasi"`
	UnitRuangan       string `json:"unit_ruangan"`
	TanggalPeminjaman string `json:"tanggal_peminjaman"`
	TanggalKembali    string `json:"tanggal_kembali"`
	SuratPermohonan   string `json:"surat_permohonan"`
}

func toDTO(r models.Reservation) reservationDTO {
	return reservationDTO{
		ID:                r.ID,
		Nama:              r.Nama,
		Nim:               r.Nim,
		Organisasi:        r.Organisasi,
		UnitRuangan:       r.UnitRuangan,
		TanggalPeminjaman: timeutil.Civil(r.TanggalPeminjaman),
		TanggalKembali:    timeutil.Civil(r.TanggalKembali),
		SuratPermohonan:   r.SuratPermohonan,
	}
}

func toDTOs(rows []models.Reservation) []reservationDTO {
	out := make([]reservationDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, toDTO(r))
	}
	return out
}

// CreateReservation handles POST /reservasi_room: multipart form with the
// reservation fields plus a surat_permohonan document. The 400 response
// carries a per-field missing map. Validation runs before the document is
// written so a rejected request leaves neither a row nor a file behind.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	nama := c.PostForm("nama")
	nim := c.PostForm("nim")
	organisasi := c.PostForm("organisasi")
	unitRuangan := c.PostForm("unit_ruangan")
	tanggalPeminjaman := c.PostForm("tanggal_peminjaman")
	tanggalKembali := c.PostForm("tanggal_kembali")
	fh, fhErr := c.FormFile("surat_permohonan")

	fields := map[string]string{
		"nama":               nama,
		"nim":                nim,
		"organisasi":         organisasi,
		"unit_ruangan":       unitRuangan,
		"tanggal_peminjaman": tanggalPeminjaman,
		"tanggal_kembali":    tanggalKembali,
		"surat_permohonan":   uploadName(fh, fhErr),
	}
	if missing := validation.Missing(fields); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   true,
			"message": "Please provide complete reservation details",
			"missing": validation.Flags(fields),
		})
		return
	}

	borrowStart, err := timeutil.ParseCivil(tanggalPeminjaman)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid tanggal_peminjaman", err)
		return
	}
	borrowEnd, err := timeutil.ParseCivil(tanggalKembali)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid tanggal_kembali", err)
		return
	}

	path, err := rc.Documents.Save(fh)
	if err != nil {
		log.Error().Err(err).Str("file", fh.Filename).Msg("store request letter")
		respondError(c, http.StatusInternalServerError, "Failed to create reservation", err)
		return
	}
	metrics.UploadsTotal.WithLabelValues("request_letter").Inc()

	resv := models.Reservation{
		Nama:              nama,
		Nim:               nim,
		Organisasi:        organisasi,
		UnitRuangan:       unitRuangan,
		TanggalPeminjaman: borrowStart,
		TanggalKembali:    borrowEnd,
		SuratPermohonan:   path,
	}
	if err := rc.DB.Create(&resv).Error; err != nil {
		log.Error().Err(err).Str("nim", nim).Msg("insert reservation")
		respondError(c, http.StatusInternalServerError, "Failed to create reservation", err)
		return
	}
	respondOK(c, "Reservation created successfully", toDTO(resv))
}

// ListReservations handles GET /reservasi_rooms: the unfiltered listing.
func (rc *ReservationController) ListReservations(c *gin.Context) {
	var rows []models.Reservation
	if err := rc.DB.Find(&rows).Error; err != nil {
		log.Error().Err(err).Msg("list reservations")
		respondError(c, http.StatusInternalServerError, "Failed to retrieve reservations", err)
		return
	}
	respondOK(c, "", toDTOs(rows))
}

// ListUpcoming handles GET /reservasi-room: reservations whose borrow start
// falls on or after the start of the current WIB day, ascending.
func (rc *ReservationController) ListUpcoming(c *gin.Context) {
	var rows []models.Reservation
	err := rc.DB.
		Where("tanggal_peminjaman >= ?", timeutil.StartOfToday()).
		Order("tanggal_peminjaman asc").
		Find(&rows).Error
	if err != nil {
		log.Error().Err(err).Msg("list upcoming reservations")
		respondError(c, http.StatusInternalServerError, "Failed to retrieve reservations", err)
		return
	}
	respondOK(c, "", toDTOs(rows))
}

// ListToday handles GET /reservasi-room/today: reservations whose borrow
// start falls on the current WIB calendar date. Uses the same civil-day
// boundaries as ListUpcoming so the two listings agree on today's rows.
func (rc *ReservationController) ListToday(c *gin.Context) {
	var rows []models.Reservation
	err := rc.DB.
		Where("tanggal_peminjaman >= ? AND tanggal_peminjaman < ?",
			timeutil.StartOfToday(), timeutil.StartOfTomorrow()).
		Order("tanggal_peminjaman asc").
		Find(&rows).Error
	if err != nil {
		log.Error().Err(err).Msg("list today reservations")
		respondError(c, http.StatusInternalServerError, "Failed to retrieve reservations", err)
		return
	}
	respondOK(c, "", toDTOs(rows))
}

// HistoryByNim handles GET /api/history/:nim: the requester's reservations,
// newest borrow start first.
func (rc *ReservationController) HistoryByNim(c *gin.Context) {
	nim := strings.TrimSpace(c.Param("nim"))
	var rows []models.Reservation
	err := rc.DB.
		Where("nim = ?", nim).
		Order("tanggal_peminjaman desc").
		Find(&rows).Error
	if err != nil {
		log.Error().Err(err).Str("nim", nim).Msg("reservation history")
		respondError(c, http.StatusInternalServerError, "Failed to retrieve reservations", err)
		return
	}
	respondOK(c, "", toDTOs(rows))
}
