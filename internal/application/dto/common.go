package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ListResponse forma estándar de respuesta de listados paginados.
type ListResponse[T any] struct {
	Count   int  `json:"count"`
	Rows    []T  `json:"rows"`
	HasMore bool `json:"hasMore"`
}

// HasMore indica si quedan filas después de la página actual.
func HasMore(limit, offset, count int) bool {
	return offset+limit < count
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
