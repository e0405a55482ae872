package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Fabrica-api/internal/application/dto"
	"github.com/jhoicas/Fabrica-api/internal/domain"
	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
	"github.com/jhoicas/Fabrica-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock se maneja vía el
// libro de stock, nunca editando el producto.
type ProductUseCase struct {
	repo     repository.ProductRepository
	accounts repository.AccountRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, accounts repository.AccountRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, accounts: accounts}
}

// Create crea un producto. La combinación cliente + nombre + medidas debe ser
// única; un duplicado exacto se rechaza.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*entity.Product, error) {
	if in.AccountID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	account, err := uc.accounts.GetByID(in.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	existing, _ := uc.repo.FindBySpec(account.Name, in.Name, in.Thickness, in.Length, in.Width)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:                   uuid.New().String(),
		AccountID:            in.AccountID,
		Name:                 in.Name,
		Thickness:            in.Thickness,
		Length:               in.Length,
		Width:                in.Width,
		ExtColor:             in.ExtColor,
		ExtIsAntistatic:      in.ExtIsAntistatic,
		ExtMemo:              in.ExtMemo,
		PrintSide:            in.PrintSide,
		PrintFrontColorCount: in.PrintFrontColorCount,
		PrintFrontColor:      in.PrintFrontColor,
		PrintBackColorCount:  in.PrintBackColorCount,
		PrintBackColor:       in.PrintBackColor,
		PrintMemo:            in.PrintMemo,
		PackMaterial:         in.PackMaterial,
		PackUnit:             in.PackUnit,
		DeliveryMethod:       in.DeliveryMethod,
		Memo:                 in.Memo,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// List lista productos filtrando por cliente y/o nombre parcial.
func (uc *ProductUseCase) List(q dto.ListProductsQuery) (*dto.ListResponse[*entity.Product], error) {
	q.DefaultPage()
	rows, count, err := uc.repo.List(repository.ProductFilter{
		AccountName: q.AccountName,
		Name:        q.Name,
		Limit:       q.Limit,
		Offset:      q.Offset,
	})
	if err != nil {
		return nil, err
	}
	return &dto.ListResponse[*entity.Product]{
		Count:   count,
		Rows:    rows,
		HasMore: dto.HasMore(q.Limit, q.Offset, count),
	}, nil
}

// Update modifica un producto.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Thickness != nil {
		product.Thickness = *in.Thickness
	}
	if in.Length != nil {
		product.Length = *in.Length
	}
	if in.Width != nil {
		product.Width = *in.Width
	}
	if in.ExtColor != nil {
		product.ExtColor = *in.ExtColor
	}
	if in.ExtIsAntistatic != nil {
		product.ExtIsAntistatic = *in.ExtIsAntistatic
	}
	if in.ExtMemo != nil {
		product.ExtMemo = *in.ExtMemo
	}
	if in.PrintSide != nil {
		product.PrintSide = *in.PrintSide
	}
	if in.PrintFrontColorCount != nil {
		product.PrintFrontColorCount = *in.PrintFrontColorCount
	}
	if in.PrintFrontColor != nil {
		product.PrintFrontColor = *in.PrintFrontColor
	}
	if in.PrintBackColorCount != nil {
		product.PrintBackColorCount = *in.PrintBackColorCount
	}
	if in.PrintBackColor != nil {
		product.PrintBackColor = *in.PrintBackColor
	}
	if in.PrintMemo != nil {
		product.PrintMemo = *in.PrintMemo
	}
	if in.PackMaterial != nil {
		product.PackMaterial = *in.PackMaterial
	}
	if in.PackUnit != nil {
		product.PackUnit = *in.PackUnit
	}
	if in.DeliveryMethod != nil {
		product.DeliveryMethod = *in.DeliveryMethod
	}
	if in.Memo != nil {
		product.Memo = *in.Memo
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete borra productos por ID y devuelve cuántos se borraron.
func (uc *ProductUseCase) Delete(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, domain.ErrInvalidInput
	}
	return uc.repo.DeleteByIDs(ids)
}
