package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Fabrica-api/internal/application/dto"
	"github.com/jhoicas/Fabrica-api/internal/domain"
	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
	"github.com/jhoicas/Fabrica-api/internal/domain/repository"
)

// AccountUseCase casos de uso CRUD para clientes y sus contactos.
type AccountUseCase struct {
	repo repository.AccountRepository
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(repo repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo}
}

// Create crea un cliente con sus contactos embebidos.
func (uc *AccountUseCase) Create(in dto.CreateAccountRequest) (*entity.Account, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	account := &entity.Account{
		ID:             uuid.New().String(),
		Name:           in.Name,
		CRN:            in.CRN,
		DeliveryMethod: in.DeliveryMethod,
		Memo:           in.Memo,
		Contacts:       toContacts("", in.Contacts),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for i := range account.Contacts {
		account.Contacts[i].AccountID = account.ID
	}
	if err := uc.repo.Create(account); err != nil {
		return nil, err
	}
	return uc.repo.GetByID(account.ID)
}

// GetByID obtiene un cliente con sus contactos.
func (uc *AccountUseCase) GetByID(id string) (*entity.Account, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	return account, nil
}

// List busca clientes por nombre parcial.
func (uc *AccountUseCase) List(q dto.ListAccountsQuery) (*dto.ListResponse[*entity.Account], error) {
	q.DefaultPage()
	rows, count, err := uc.repo.List(q.Name, q.WithContacts, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	return &dto.ListResponse[*entity.Account]{
		Count:   count,
		Rows:    rows,
		HasMore: dto.HasMore(q.Limit, q.Offset, count),
	}, nil
}

// Update modifica un cliente. Contacts, si viene, reemplaza el juego completo.
func (uc *AccountUseCase) Update(id string, in dto.UpdateAccountRequest) (*entity.Account, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		account.Name = *in.Name
	}
	if in.CRN != nil {
		account.CRN = *in.CRN
	}
	if in.DeliveryMethod != nil {
		account.DeliveryMethod = *in.DeliveryMethod
	}
	if in.Memo != nil {
		account.Memo = *in.Memo
	}
	if in.Contacts != nil {
		account.Contacts = toContacts(account.ID, in.Contacts)
	}
	account.UpdatedAt = time.Now()
	if err := uc.repo.Update(account); err != nil {
		return nil, err
	}
	return uc.repo.GetByID(id)
}

// Delete borra clientes por ID y devuelve cuántos se borraron.
func (uc *AccountUseCase) Delete(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, domain.ErrInvalidInput
	}
	return uc.repo.DeleteByIDs(ids)
}

func toContacts(accountID string, in []dto.ContactInput) []entity.Contact {
	out := make([]entity.Contact, 0, len(in))
	for _, c := range in {
		id := c.ID
		if id == "" {
			id = uuid.New().String()
		}
		out = append(out, entity.Contact{
			ID:        id,
			AccountID: accountID,
			Title:     c.Title,
			IsBase:    c.IsBase,
			Phone:     c.Phone,
			Fax:       c.Fax,
			Email:     c.Email,
			Address:   c.Address,
			Memo:      c.Memo,
		})
	}
	return out
}
