package service

import (
	"github.com/Carbyfah/magic-sub005/internal/model"

	"github.com/google/uuid"
)

// ClasificarEscenario maps a reservation onto the settlement scenario table.
// Pure function of (operating agency, transfer-target agency, house agency).
//
//	operadora == casa | transferida        | escenario
//	------------------+--------------------+----------------------
//	sí                | nil                | venta_directa
//	sí                | casa               | reasignacion_interna
//	sí                | otra               | casa_transfiere
//	no                | nil                | casa_recibe_opera
//	no                | otra               | casa_puente
//	no                | casa               | caso_especial
//
// The table is exhaustive and mutually exclusive: every input maps to exactly
// one scenario.
func ClasificarEscenario(operadora, casa uuid.UUID, transferida *uuid.UUID) model.Escenario {
	operaCasa := operadora == casa
	switch {
	case operaCasa && transferida == nil:
		return model.EscenarioVentaDirecta
	case operaCasa && *transferida == casa:
		return model.EscenarioReasignacionInterna
	case operaCasa:
		return model.EscenarioCasaTransfiere
	case transferida == nil:
		return model.EscenarioCasaRecibeOpera
	case *transferida == casa:
		return model.EscenarioCasoEspecial
	default:
		return model.EscenarioCasaPuente
	}
}

// AgenciaOperadora resolves the operating agency transitively:
// servicio → ruta → agencia, or servicio → tour → agencia. Exactly one path
// is populated for a valid catalog entry; a service with neither is a
// data-integrity fault and must be rejected before classification.
func AgenciaOperadora(servicio *model.Servicio) (uuid.UUID, error) {
	switch {
	case servicio.Ruta != nil:
		return servicio.Ruta.AgenciaID, nil
	case servicio.Tour != nil:
		return servicio.Tour.AgenciaID, nil
	default:
		return uuid.Nil, &ErrReferencia{Entidad: "agencia operadora del servicio"}
	}
}
