package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yukikurage/erp-api/internal/models"
	"github.com/yukikurage/erp-api/internal/repository"
	"github.com/yukikurage/erp-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateSKU    = errors.New("a product with this SKU already exists")
)

// InventoryService handles product business logic.
type InventoryService struct {
	productRepo repository.ProductRepository
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(productRepo repository.ProductRepository) *InventoryService {
	return &InventoryService{productRepo: productRepo}
}

// CreateProductInput represents input for creating a product
type CreateProductInput struct {
	Name     string          `json:"name" validate:"required,max=255"`
	SKU      string          `json:"sku" validate:"required,max=100"`
	Quantity int             `json:"quantity" validate:"gte=0"`
	Price    decimal.Decimal `json:"price" validate:"gte=0"`
}

func (in CreateProductInput) validate() (*models.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.SKU = strings.TrimSpace(in.SKU)

	if err := validateStruct(in); err != nil {
		return nil, err
	}

	return &models.Product{
		Name:     in.Name,
		SKU:      in.SKU,
		Quantity: in.Quantity,
		Price:    in.Price,
	}, nil
}

// ListProducts returns the caller's products; empty without a session.
func (s *InventoryService) ListProducts(ctx context.Context, actor *TenantUser, params utils.PaginationParams) ([]models.Product, int64, error) {
	if actor == nil {
		return []models.Product{}, 0, nil
	}

	products, total, err := s.productRepo.ListByOrganization(ctx, actor.OrganizationID(), params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

// CreateProduct adds a product to the caller's organization.
func (s *InventoryService) CreateProduct(ctx context.Context, actor *TenantUser, input CreateProductInput) (*models.Product, error) {
	if err := requireTenant(actor); err != nil {
		return nil, err
	}

	product, err := input.validate()
	if err != nil {
		return nil, err
	}
	product.OrganizationID = actor.OrganizationID()

	if err := s.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateSKU
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// DeleteProduct removes one of the caller's products. Ids belonging to
// another organization are indistinguishable from unknown ids.
func (s *InventoryService) DeleteProduct(ctx context.Context, actor *TenantUser, productID string) error {
	if err := requireTenant(actor); err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, actor.OrganizationID(), productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
