package dto

type CrearTourRequest struct {
	AgenciaID   string  `json:"agencia_id" validate:"required,uuid"`
	Nombre      string  `json:"nombre" validate:"required,min=2"`
	Descripcion *string `json:"descripcion"`
}

type TourResponse struct {
	ID          string  `json:"id"`
	AgenciaID   string  `json:"agencia_id"`
	Agencia     string  `json:"agencia,omitempty"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion,omitempty"`
	Activo      bool    `json:"activo"`
}

type ProgramarTourRequest struct {
	TourID      string `json:"tour_id" validate:"required,uuid"`
	FechaSalida string `json:"fecha_salida" validate:"required"` // RFC 3339
}

type TourProgramadoResponse struct {
	ID          string `json:"id"`
	TourID      string `json:"tour_id"`
	Nombre      string `json:"nombre,omitempty"`
	FechaSalida string `json:"fecha_salida"`
	Estado      string `json:"estado"`
}
