package dto

import (
	"time"

	"github.com/yukikurage/erp-api/internal/models"
	"github.com/yukikurage/erp-api/internal/utils"
)

// OrganizationDTO represents an organization in API responses
type OrganizationDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	BrandSymbol *string         `json:"brand_symbol"`
	Currency    models.Currency `json:"currency"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// UserDTO represents an application user in API responses
type UserDTO struct {
	ID             string      `json:"id"`
	Email          string      `json:"email"`
	Role           models.Role `json:"role"`
	OrganizationID string      `json:"organization_id"`
}

// MeDTO is the resolved caller together with its organization
type MeDTO struct {
	User         UserDTO         `json:"user"`
	Organization OrganizationDTO `json:"organization"`
}

// IdentityDTO is a local identity before reconciliation
type IdentityDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ListResponse is the envelope for paginated collections
type ListResponse[T any] struct {
	Items      []T                      `json:"items"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToOrganizationDTO converts an Organization model to OrganizationDTO
func ToOrganizationDTO(org models.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:          org.ID,
		Name:        org.Name,
		Slug:        org.Slug,
		BrandSymbol: org.BrandSymbol,
		Currency:    org.Currency,
		CreatedAt:   org.CreatedAt,
		UpdatedAt:   org.UpdatedAt,
	}
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:             user.ID,
		Email:          user.Email,
		Role:           user.Role,
		OrganizationID: user.OrganizationID,
	}
}

func ToMeDTO(user models.User, org models.Organization) MeDTO {
	return MeDTO{
		User:         ToUserDTO(user),
		Organization: ToOrganizationDTO(org),
	}
}

// NewListResponse maps models into a paginated envelope.
func NewListResponse[M, T any](items []M, convert func(M) T, params utils.PaginationParams, total int64) ListResponse[T] {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = convert(item)
	}

	return ListResponse[T]{
		Items: out,
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}
}
