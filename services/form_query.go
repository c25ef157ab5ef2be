package services

import (
	"fmt"

	"github.com/lcdc/selections-go/dto"
	"github.com/lcdc/selections-go/models"
	"github.com/lcdc/selections-go/types"
)

// ListForms fetches a candidate set using the most selective filter
// available (projectId > customerId > status > createdBy) and applies
// the remaining filters as in-memory predicates over that set.
// Customers are always pinned to their own customer id, whatever
// filters they asked for.
func (s *FormService) ListForms(actor *types.Claims, filter dto.FormListFilter) ([]models.Form, error) {
	if models.UserRole(actor.Role) == models.UserRoleCustomer {
		filter.CustomerID = actor.UserID
	}

	var status models.FormStatus
	if filter.Status != "" {
		status = models.FormStatus(filter.Status)
		switch status {
		case models.FormStatusAssigned, models.FormStatusInProgress, models.FormStatusSubmitted,
			models.FormStatusReopened, models.FormStatusCompleted:
		default:
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, filter.Status)
		}
	}
	var formType models.FormType
	if filter.FormType != "" {
		formType = models.FormType(filter.FormType)
		if !formType.Valid() {
			return nil, fmt.Errorf("%w: unknown form type %q", ErrInvalidInput, filter.FormType)
		}
	}

	candidates, err := s.fetchCandidates(filter, status)
	if err != nil {
		return nil, err
	}

	result := make([]models.Form, 0, len(candidates))
	for _, form := range candidates {
		if filter.ProjectIdentifier != "" && form.ProjectIdentifier != filter.ProjectIdentifier {
			continue
		}
		if filter.CustomerID != "" && form.CustomerID != filter.CustomerID {
			continue
		}
		if filter.Status != "" && form.FormStatus != status {
			continue
		}
		if filter.FormType != "" && form.FormType != formType {
			continue
		}
		if filter.CreatedBy != "" && form.AssignedByUserID != filter.CreatedBy {
			continue
		}
		result = append(result, form)
	}
	return result, nil
}

func (s *FormService) fetchCandidates(filter dto.FormListFilter, status models.FormStatus) ([]models.Form, error) {
	switch {
	case filter.ProjectIdentifier != "":
		return s.repos.Form.FindByProject(filter.ProjectIdentifier)
	case filter.CustomerID != "":
		return s.repos.Form.FindByCustomer(filter.CustomerID)
	case filter.Status != "":
		return s.repos.Form.FindByStatus(status)
	case filter.CreatedBy != "":
		return s.repos.Form.FindByAssigner(filter.CreatedBy)
	}
	return s.repos.Form.FindAll()
}

// MyForms resolves the caller's own forms: assigned forms for a
// customer, created forms for staff.
func (s *FormService) MyForms(actor *types.Claims) ([]models.Form, error) {
	if models.UserRole(actor.Role).IsStaff() {
		return s.repos.Form.FindByAssigner(actor.UserID)
	}
	return s.repos.Form.FindByCustomer(actor.UserID)
}
