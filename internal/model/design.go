package model

// Design is a home design order as exchanged with the partner API.
// Field names follow the partner's wire format.
type Design struct {
	Name         string `json:"desainname" form:"desainname" validate:"required"`
	Description  string `json:"deskripsi" form:"deskripsi" validate:"required"`
	OrderDate    string `json:"tanggalpesan" form:"tanggalpesan" validate:"required"`
	Status       string `json:"status" form:"status" validate:"required"`
	DesignerName string `json:"namadesainer" form:"namadesainer" validate:"required"`
	Phone        string `json:"nohp" form:"nohp" validate:"required"`
}
