package entity

import "time"

// Account representa un cliente de la planta (empresa que encarga productos).
type Account struct {
	ID             string
	Name           string
	CRN            string // registro mercantil del cliente
	DeliveryMethod DeliveryMethod
	Memo           string
	Contacts       []Contact
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Contact persona de contacto asociada a un cliente.
type Contact struct {
	ID        string
	AccountID string
	Title     string
	IsBase    bool // contacto principal del cliente
	Phone     string
	Fax       string
	Email     string
	Address   string
	Memo      string
}
