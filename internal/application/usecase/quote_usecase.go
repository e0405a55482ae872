package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Fabrica-api/internal/application/dto"
	"github.com/jhoicas/Fabrica-api/internal/domain"
	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
	"github.com/jhoicas/Fabrica-api/internal/domain/repository"
)

// QuoteUseCase casos de uso CRUD para cotizaciones.
type QuoteUseCase struct {
	repo     repository.QuoteRepository
	accounts repository.AccountRepository
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(repo repository.QuoteRepository, accounts repository.AccountRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, accounts: accounts}
}

// Create crea una cotización para un cliente existente.
func (uc *QuoteUseCase) Create(in dto.CreateQuoteRequest) (*entity.Quote, error) {
	if in.AccountID == "" || in.ProductName == "" {
		return nil, domain.ErrInvalidInput
	}
	account, err := uc.accounts.GetByID(in.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	quote := &entity.Quote{
		ID:              uuid.New().String(),
		AccountID:       in.AccountID,
		ProductName:     in.ProductName,
		Thickness:       in.Thickness,
		Length:          in.Length,
		Width:           in.Width,
		PrintColorCount: in.PrintColorCount,
		VariableRate:    in.VariableRate,
		DefectiveRate:   in.DefectiveRate,
		PlateRound:      in.PlateRound,
		PlateLength:     in.PlateLength,
		PlateCost:       in.PlateCost,
		PlateCount:      in.PlateCount,
		UnitPrice:       in.UnitPrice,
		MinQuantity:     in.MinQuantity,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// GetByID obtiene una cotización por ID.
func (uc *QuoteUseCase) GetByID(id string) (*entity.Quote, error) {
	quote, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	return quote, nil
}

// List lista cotizaciones con paginación.
func (uc *QuoteUseCase) List(page dto.PageRequest) (*dto.ListResponse[*entity.Quote], error) {
	page.DefaultPage()
	rows, count, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return &dto.ListResponse[*entity.Quote]{
		Count:   count,
		Rows:    rows,
		HasMore: dto.HasMore(page.Limit, page.Offset, count),
	}, nil
}

// Update modifica una cotización.
func (uc *QuoteUseCase) Update(id string, in dto.UpdateQuoteRequest) (*entity.Quote, error) {
	quote, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if in.ProductName != nil {
		quote.ProductName = *in.ProductName
	}
	if in.Thickness != nil {
		quote.Thickness = *in.Thickness
	}
	if in.Length != nil {
		quote.Length = *in.Length
	}
	if in.Width != nil {
		quote.Width = *in.Width
	}
	if in.PrintColorCount != nil {
		quote.PrintColorCount = *in.PrintColorCount
	}
	if in.VariableRate != nil {
		quote.VariableRate = *in.VariableRate
	}
	if in.DefectiveRate != nil {
		quote.DefectiveRate = *in.DefectiveRate
	}
	if in.PlateRound != nil {
		quote.PlateRound = *in.PlateRound
	}
	if in.PlateLength != nil {
		quote.PlateLength = *in.PlateLength
	}
	if in.PlateCost != nil {
		quote.PlateCost = *in.PlateCost
	}
	if in.PlateCount != nil {
		quote.PlateCount = *in.PlateCount
	}
	if in.UnitPrice != nil {
		quote.UnitPrice = *in.UnitPrice
	}
	if in.MinQuantity != nil {
		quote.MinQuantity = *in.MinQuantity
	}
	quote.UpdatedAt = time.Now()
	if err := uc.repo.Update(quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// Delete borra cotizaciones por ID y devuelve cuántas se borraron.
func (uc *QuoteUseCase) Delete(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, domain.ErrInvalidInput
	}
	return uc.repo.DeleteByIDs(ids)
}
