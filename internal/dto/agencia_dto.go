package dto

type CrearAgenciaRequest struct {
	Nombre    string  `json:"nombre" validate:"required,min=2"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}

type ActualizarAgenciaRequest struct {
	Nombre    *string `json:"nombre" validate:"omitempty,min=2"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}

type AgenciaResponse struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	Telefono  *string `json:"telefono,omitempty"`
	Direccion *string `json:"direccion,omitempty"`
	EsCasa    bool    `json:"es_casa"`
	Activo    bool    `json:"activo"`
}
