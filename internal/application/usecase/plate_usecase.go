package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Fabrica-api/internal/application/dto"
	"github.com/jhoicas/Fabrica-api/internal/domain"
	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
	"github.com/jhoicas/Fabrica-api/internal/domain/repository"
)

// PlateUseCase casos de uso CRUD para planchas de impresión.
type PlateUseCase struct {
	repo     repository.PlateRepository
	products repository.ProductRepository
}

// NewPlateUseCase construye el caso de uso.
func NewPlateUseCase(repo repository.PlateRepository, products repository.ProductRepository) *PlateUseCase {
	return &PlateUseCase{repo: repo, products: products}
}

// Create crea una plancha. El código numérico lo asigna el storage (serial).
func (uc *PlateUseCase) Create(in dto.CreatePlateRequest) (*entity.Plate, error) {
	for _, productID := range in.ProductIDs {
		product, err := uc.products.GetByID(productID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrProductNotFound
		}
	}
	now := time.Now()
	plate := &entity.Plate{
		ID:         uuid.New().String(),
		Round:      in.Round,
		Length:     in.Length,
		Name:       in.Name,
		Material:   in.Material,
		Location:   in.Location,
		Memo:       in.Memo,
		ProductIDs: in.ProductIDs,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(plate); err != nil {
		return nil, err
	}
	return uc.repo.GetByID(plate.ID)
}

// GetByID obtiene una plancha por ID.
func (uc *PlateUseCase) GetByID(id string) (*entity.Plate, error) {
	plate, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plate == nil {
		return nil, domain.ErrNotFound
	}
	return plate, nil
}

// List lista planchas por código, cliente, producto o nombre.
func (uc *PlateUseCase) List(q dto.ListPlatesQuery) (*dto.ListResponse[*entity.Plate], error) {
	q.DefaultPage()
	rows, count, err := uc.repo.List(repository.PlateFilter{
		Code:        q.Code,
		AccountName: q.AccountName,
		ProductName: q.ProductName,
		Name:        q.Name,
		Limit:       q.Limit,
		Offset:      q.Offset,
	})
	if err != nil {
		return nil, err
	}
	return &dto.ListResponse[*entity.Plate]{
		Count:   count,
		Rows:    rows,
		HasMore: dto.HasMore(q.Limit, q.Offset, count),
	}, nil
}

// Update modifica una plancha. ProductIDs, si viene, reemplaza las
// asociaciones completas.
func (uc *PlateUseCase) Update(id string, in dto.UpdatePlateRequest) (*entity.Plate, error) {
	plate, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plate == nil {
		return nil, domain.ErrNotFound
	}
	if in.Round != nil {
		plate.Round = *in.Round
	}
	if in.Length != nil {
		plate.Length = *in.Length
	}
	if in.Name != nil {
		plate.Name = *in.Name
	}
	if in.Material != nil {
		plate.Material = *in.Material
	}
	if in.Location != nil {
		plate.Location = *in.Location
	}
	if in.Memo != nil {
		plate.Memo = *in.Memo
	}
	if in.ProductIDs != nil {
		for _, productID := range in.ProductIDs {
			product, err := uc.products.GetByID(productID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				return nil, domain.ErrProductNotFound
			}
		}
		plate.ProductIDs = in.ProductIDs
	}
	plate.UpdatedAt = time.Now()
	if err := uc.repo.Update(plate); err != nil {
		return nil, err
	}
	return uc.repo.GetByID(id)
}

// Delete borra planchas por ID y devuelve cuántas se borraron.
func (uc *PlateUseCase) Delete(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, domain.ErrInvalidInput
	}
	return uc.repo.DeleteByIDs(ids)
}
