package timezone

import "time"

const DefaultTimezone = "America/Bogota"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// Now devuelve la hora civil local de la sala de ventas. Todos los sellos
// de registro salen de aquí, nunca del reloj del cliente.
func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}
