package entity

// UserType discriminador de rol embebido en el token (claim "type").
type UserType int

const (
	UserTypeAdmin  UserType = 1
	UserTypeAsesor UserType = 2
)

// Destinos de navegación por tipo de usuario.
const (
	PathLogin  = "/"
	PathAdmin  = "/admin"
	PathAsesor = "/asesor"
)

// Destination ruta a la que navega el usuario tras el login; ok=false si el tipo es desconocido.
func (t UserType) Destination() (path string, ok bool) {
	switch t {
	case UserTypeAdmin:
		return PathAdmin, true
	case UserTypeAsesor:
		return PathAsesor, true
	default:
		return "", false
	}
}
