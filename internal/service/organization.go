package service

import (
	"errors"
	"fmt"
	"strings"

	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations, the tenant
// roots of the ownership hierarchy.
type OrganizationService struct {
	repo      repository.OrganizationRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		validator: validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	Slug         string `json:"slug" validate:"required,max=100"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
}

// UpdateOrganizationRequest represents the request to update an organization.
// Nil fields are left untouched (partial update semantics).
type UpdateOrganizationRequest struct {
	Name         *string `json:"name,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    string    `json:"created_at"`
}

// OrganizationPayload is the result of an organization mutation
type OrganizationPayload struct {
	Organization *OrganizationResponse  `json:"organization"`
	Errors       []apperrors.FieldError `json:"errors"`
}

// List retrieves all organizations ordered by name
func (s *OrganizationService) List() ([]OrganizationResponse, error) {
	orgs, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i, org := range orgs {
		responses[i] = *s.toResponse(&org)
	}
	return responses, nil
}

// GetBySlug retrieves an organization by slug
func (s *OrganizationService) GetBySlug(slug string) (*OrganizationResponse, error) {
	org, err := s.repo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return s.toResponse(org), nil
}

// Create validates and creates a new organization. Validation failures come
// back as payload errors; only infrastructure faults return a Go error.
func (s *OrganizationService) Create(req *CreateOrganizationRequest) (*OrganizationPayload, error) {
	var fieldErrors []apperrors.FieldError

	if strings.TrimSpace(req.Name) == "" {
		fieldErrors = append(fieldErrors, apperrors.FieldError{Field: "name", Message: "Name is required"})
	}
	slug := slugify(req.Slug)
	if slug == "" {
		fieldErrors = append(fieldErrors, apperrors.FieldError{Field: "slug", Message: "Slug is required"})
	}
	if err := s.validator.Var(req.ContactEmail, "required,email"); err != nil {
		fieldErrors = append(fieldErrors, apperrors.FieldError{Field: "contact_email", Message: "Invalid email format"})
	}
	if len(fieldErrors) > 0 {
		return &OrganizationPayload{Errors: fieldErrors}, nil
	}

	existing, err := s.repo.GetBySlug(slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if existing != nil {
		return &OrganizationPayload{Errors: []apperrors.FieldError{
			{Field: "slug", Message: "Organization with this slug already exists"},
		}}, nil
	}

	org := &models.Organization{
		Name:         req.Name,
		Slug:         slug,
		ContactEmail: req.ContactEmail,
	}
	if err := s.repo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return &OrganizationPayload{Organization: s.toResponse(org)}, nil
}

// Update applies a partial update to an organization
func (s *OrganizationService) Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationPayload, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &OrganizationPayload{Errors: []apperrors.FieldError{
				{Field: "id", Message: "Organization not found"},
			}}, nil
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	var fieldErrors []apperrors.FieldError
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		fieldErrors = append(fieldErrors, apperrors.FieldError{Field: "name", Message: "Name is required"})
	}
	if req.ContactEmail != nil {
		if err := s.validator.Var(*req.ContactEmail, "required,email"); err != nil {
			fieldErrors = append(fieldErrors, apperrors.FieldError{Field: "contact_email", Message: "Invalid email format"})
		}
	}
	if len(fieldErrors) > 0 {
		return &OrganizationPayload{Errors: fieldErrors}, nil
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.ContactEmail != nil {
		org.ContactEmail = *req.ContactEmail
	}

	if err := s.repo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	return &OrganizationPayload{Organization: s.toResponse(org)}, nil
}

// Delete removes an organization and cascades to its whole subtree
func (s *OrganizationService) Delete(id uuid.UUID) (*DeletePayload, error) {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return deleteFailure("id", "Organization not found"), nil
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return nil, fmt.Errorf("failed to delete organization: %w", err)
	}
	return &DeletePayload{Success: true}, nil
}

// toResponse converts an organization model to response
func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:           org.ID,
		Name:         org.Name,
		Slug:         org.Slug,
		ContactEmail: org.ContactEmail,
		CreatedAt:    org.CreatedAt.Format(timeFormat),
	}
}
