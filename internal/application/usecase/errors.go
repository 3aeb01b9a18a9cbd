package usecase

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/anylist-api/internal/domain"
	"github.com/jhoicas/anylist-api/pkg/logger"
)

// handleDBError deja pasar los errores ya clasificados (NotFound, Validation de unicidad, ...)
// y convierte el resto en Internal, registrando la causa completa solo en el log.
func handleDBError(log *logger.Logger, op string, err error) error {
	if err == nil {
		return nil
	}
	if domain.IsClassified(err) {
		return err
	}
	log.Error().Err(err).Str("op", op).Msg("error de persistencia")
	return domain.Internal(err)
}

// canonicalID valida un UUID de 36 caracteres y lo devuelve en minúsculas, la forma en que se
// guardan los ids. Si no es válido devuelve s sin tocar y false.
func canonicalID(s string) (string, bool) {
	u, err := uuid.Parse(s)
	if err != nil || len(s) != 36 {
		return s, false
	}
	return u.String(), true
}

// normalizeEmail recorta espacios y pasa a minúsculas (el índice único es sensible a mayúsculas).
func normalizeEmail(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// normalizeName recorta y normaliza a NFC para que nombres con tildes compuestas/descompuestas sean iguales.
func normalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
