package httperr

import "errors"

// BusinessError señala una regla de negocio incumplida, identificada por un
// código estable en snake_case (asesor_not_found, duplicate_submission).
// Los handlers la traducen a 400 o 409 según el código; cualquier otro error
// de un usecase se responde como 500.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

// ErrBusiness construye un BusinessError con el código dado.
func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reporta si err es un BusinessError con exactamente ese código.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
