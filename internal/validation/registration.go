// Package validation implementa la validación pura del formulario de
// recepción: o devuelve un payload normalizado, o la lista completa de
// campos inválidos. Nunca aplica un payload a medias.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	domain "github.com/SalaVentasCO/reception-intake/internal/domain/registration"
)

// Formato internacional: +57XXXXXXXXXX.
var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

type RegistroInput struct {
	Nombre        string `json:"nombre" validate:"required,min=2,max=100"`
	Celular       string `json:"celular" validate:"required,celular"`
	ComoNosConoce string `json:"comoNosConoce" validate:"required,conoce"`
	AsesorID      string `json:"asesorId" validate:"required"`
	TipoRegistro  string `json:"tipoRegistro" validate:"required,tipo"`
	NivelInteres  string `json:"nivelInteres" validate:"required,nivel"`
	Notas         string `json:"notas"`

	// Capturados por el formulario; se persisten tal cual, sin reglas.
	CanalPreferido   string `json:"canalPreferido"`
	EmailContacto    string `json:"emailContacto"`
	SolicitoInfo     string `json:"solicitoInfo"`
	SatisfaccionInfo string `json:"satisfaccionInfo"`
	ActitudCliente   string `json:"actitudCliente"`
}

// Payload es el resultado tipado de una validación exitosa.
type Payload struct {
	Nombre        string
	Celular       string
	ComoNosConoce string
	AsesorID      uint
	Kind          domain.Kind
	NivelInteres  string
	Notas         string

	CanalPreferido   string
	EmailContacto    string
	SolicitoInfo     string
	SatisfaccionInfo string
	ActitudCliente   string
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "datos de entrada inválidos: " + strings.Join(msgs, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}

	must(v.RegisterValidation("celular", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("conoce", func(fl validator.FieldLevel) bool {
		return domain.ValidDiscoveryChannel(fl.Field().String())
	}))
	must(v.RegisterValidation("tipo", func(fl validator.FieldLevel) bool {
		return domain.ValidKind(fl.Field().String())
	}))
	must(v.RegisterValidation("nivel", func(fl validator.FieldLevel) bool {
		return domain.ValidInterestLevel(fl.Field().String())
	}))

	return v
}

// ValidateRegistro valida la entrada cruda. Devuelve el payload normalizado
// o un *ValidationError con todos los campos ofensores.
func ValidateRegistro(in RegistroInput) (*Payload, error) {
	fields := []FieldError{}

	if err := validate.Struct(in); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, err
		}
		for _, fe := range ve {
			fields = append(fields, fieldError(fe))
		}
	}

	asesorID, convErr := strconv.ParseUint(strings.TrimSpace(in.AsesorID), 10, 32)
	if in.AsesorID != "" && convErr != nil {
		fields = append(fields, FieldError{
			Field:   "asesorId",
			Message: "Identificador de asesor inválido",
		})
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	return &Payload{
		Nombre:        strings.TrimSpace(in.Nombre),
		Celular:       in.Celular,
		ComoNosConoce: in.ComoNosConoce,
		AsesorID:      uint(asesorID),
		Kind:          domain.Kind(in.TipoRegistro),
		NivelInteres:  in.NivelInteres,
		Notas:         in.Notas,

		CanalPreferido:   in.CanalPreferido,
		EmailContacto:    in.EmailContacto,
		SolicitoInfo:     in.SolicitoInfo,
		SatisfaccionInfo: in.SatisfaccionInfo,
		ActitudCliente:   in.ActitudCliente,
	}, nil
}

func fieldError(fe validator.FieldError) FieldError {
	field := jsonField(fe.Field())

	var msg string
	switch {
	case field == "nombre" && fe.Tag() == "min":
		msg = "El nombre debe tener al menos 2 caracteres"
	case field == "nombre" && fe.Tag() == "max":
		msg = "El nombre es demasiado largo"
	case field == "celular" && fe.Tag() == "celular":
		msg = "Formato de celular inválido. Use formato internacional (+57XXXXXXXXXX)"
	case field == "comoNosConoce" && fe.Tag() == "conoce":
		msg = "Opción no reconocida"
	case field == "asesorId":
		msg = "Debe seleccionar un asesor"
	case field == "tipoRegistro" && fe.Tag() == "tipo":
		msg = "Tipo de registro inválido"
	case field == "nivelInteres" && fe.Tag() == "nivel":
		msg = "Nivel de interés inválido"
	case fe.Tag() == "required":
		msg = "Campo obligatorio"
	default:
		msg = fmt.Sprintf("Valor inválido (%s)", fe.Tag())
	}

	return FieldError{Field: field, Message: msg}
}

// jsonField traduce el nombre del campo Go al nombre que viaja en el JSON.
func jsonField(goField string) string {
	switch goField {
	case "AsesorID":
		return "asesorId"
	}
	if goField == "" {
		return goField
	}
	return strings.ToLower(goField[:1]) + goField[1:]
}
