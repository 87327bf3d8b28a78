package dto

import (
	"github.com/finveld/bank_backoffice/internal/core/domain"
)

// CreateOwnerRequest defines the data needed to register a new account owner.
type CreateOwnerRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateOwnerRequest defines the data allowed when renaming an owner.
type UpdateOwnerRequest struct {
	Name string `json:"name" binding:"required"`
}

// OwnerResponse defines the data returned for an account owner.
type OwnerResponse struct {
	OwnerID string `json:"ownerID"`
	Name    string `json:"name"`
}

// ToOwnerResponse converts a domain.AccountOwner to its response DTO.
func ToOwnerResponse(owner *domain.AccountOwner) OwnerResponse {
	return OwnerResponse{
		OwnerID: owner.OwnerID,
		Name:    owner.Name,
	}
}

// ToListOwnerResponse converts a slice of owners to response DTOs.
func ToListOwnerResponse(owners []domain.AccountOwner) []OwnerResponse {
	res := make([]OwnerResponse, len(owners))
	for i := range owners {
		res[i] = ToOwnerResponse(&owners[i])
	}
	return res
}
