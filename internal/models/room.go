package models

// Room is a bookable room registered with its image. Rows live in the legacy
// "room" table and are create-then-read only.
type Room struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	NamaRuangan   string `gorm:"column:nama_ruangan;size:255;not null" json:"nama_ruangan"`
	Deskripsi     string `gorm:"column:deskripsi;type:text;not null" json:"deskripsi"`
	Lokasi        string `gorm:"column:lokasi;size:255;not null" json:"lokasi"`
	GambarRuangan string `gorm:"column:gambar_ruangan;size:255;not null" json:"gambar_ruangan"`
}

func (Room) TableName() string { return "room" }
