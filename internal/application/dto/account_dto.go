package dto

import "github.com/jhoicas/Fabrica-api/internal/domain/entity"

// ContactInput contacto embebido en el alta/edición de un cliente.
type ContactInput struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	IsBase  bool   `json:"isBase"`
	Phone   string `json:"phone"`
	Fax     string `json:"fax"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Memo    string `json:"memo"`
}

// CreateAccountRequest alta de cliente con sus contactos.
type CreateAccountRequest struct {
	Name           string                `json:"name"`
	CRN            string                `json:"crn"`
	DeliveryMethod entity.DeliveryMethod `json:"deliveryMethod"`
	Memo           string                `json:"memo"`
	Contacts       []ContactInput        `json:"contacts"`
}

// UpdateAccountRequest edición de cliente. Contacts, si viene, reemplaza el
// juego completo de contactos.
type UpdateAccountRequest struct {
	Name           *string                `json:"name"`
	CRN            *string                `json:"crn"`
	DeliveryMethod *entity.DeliveryMethod `json:"deliveryMethod"`
	Memo           *string                `json:"memo"`
	Contacts       []ContactInput         `json:"contacts"`
}

// ListAccountsQuery filtros del listado de clientes.
type ListAccountsQuery struct {
	PageRequest
	Name         string `query:"name"`
	WithContacts bool   `query:"withContacts"`
}
