// Package handlers exposes the create and get use cases over any
// types.ClientRepository, bounded or not.
package handlers

import (
	"github.com/google/uuid"

	"github.com/mesh-intelligence/clients/pkg/types"
)

// CreateClient registers a new client and returns its ID.
type CreateClient struct {
	repo types.ClientRepository
}

// NewCreateClient returns a CreateClient backed by repo.
func NewCreateClient(repo types.ClientRepository) *CreateClient {
	return &CreateClient{repo: repo}
}

// Execute asks the repository for a fresh ID, saves the client and returns
// the ID.
func (h *CreateClient) Execute(name, location string) uuid.UUID {
	id := h.repo.NextIdentity()
	h.repo.Save(types.NewClient(id, name, location))
	return id
}

// GetClient looks up a client by ID.
type GetClient struct {
	repo types.ClientRepository
}

// NewGetClient returns a GetClient backed by repo.
func NewGetClient(repo types.ClientRepository) *GetClient {
	return &GetClient{repo: repo}
}

// Execute returns the repository result unchanged, including
// types.ErrNotFound.
func (h *GetClient) Execute(id uuid.UUID) (types.Client, error) {
	return h.repo.ByID(id)
}
