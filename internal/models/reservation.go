package models

import "time"

// Reservation is a room borrow request with its supporting letter.
// unit_ruangan is free text, not a foreign key into room.
type Reservation struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Nama              string    `gorm:"column:nama;size:255;not null" json:"nama"`
	Nim               string    `gorm:"column:nim;size:64;index;not null" json:"nim"`
	Organisasi        string    `gorm:"column:organisasi;size:255;not null" json:"organisasi"`
	UnitRuangan       string    `gorm:"column:unit_ruangan;size:255;not null" json:"unit_ruangan"`
	TanggalPeminjaman time.Time `gorm:"column:tanggal_peminjaman;index;not null" json:"tanggal_peminjaman"`
	TanggalKembali    time.Time `gorm:"column:tanggal_kembali;not null" json:"tanggal_kembali"`
	SuratPermohonan   string    `gorm:"column:surat_permohonan;size:255;not null" json:"surat_permohonan"`
}

func (Reservation) TableName() string { return "reservasi_room" }
