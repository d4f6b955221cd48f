package dto

// StatusDTO estado de una operación (carga + error) para la vista.
type StatusDTO struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// QuoteView cotización lista para mostrar.
type QuoteView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Date        string `json:"date"` // dd/mm/yyyy HH:MM
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	ProductCode string `json:"product_code"`
	State       int    `json:"state"`
	StateLabel  string `json:"state_label"`
	StateClass  string `json:"state_class,omitempty"`
}

// ProductView detalle de producto listo para mostrar.
type ProductView struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Offer       string `json:"offer,omitempty"`
	ImageURI    string `json:"image_uri,omitempty"` // data:image/jpeg;base64,...
}

// DashboardView instantánea del tablero del asesor.
type DashboardView struct {
	Quotes        []QuoteView  `json:"quotes"`
	Active        *QuoteView   `json:"active,omitempty"`
	Product       *ProductView `json:"product,omitempty"`
	List          StatusDTO    `json:"list"`
	ProductStatus StatusDTO    `json:"product_status"`
	Syncing       bool         `json:"syncing"`
	Alerts        int          `json:"alerts"` // alertas disparadas desde el arranque
}
