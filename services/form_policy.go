package services

import (
	"github.com/lcdc/selections-go/models"
	"github.com/lcdc/selections-go/types"
)

type FormOperation string

const (
	OpCreateForm        FormOperation = "create"
	OpReadForm          FormOperation = "read"
	OpListHistory       FormOperation = "history"
	OpUpdateFormData    FormOperation = "update-data"
	OpSubmitForm        FormOperation = "submit"
	OpReopenForm        FormOperation = "reopen"
	OpCompleteForm      FormOperation = "complete"
	OpUpdateFormDetails FormOperation = "update-details"
	OpDeleteForm        FormOperation = "delete"
)

// customerOwnFormOps is the full authorization matrix for the CUSTOMER
// role, keyed by operation: true means a customer may perform it on a
// form whose customer_id matches their own. Staff (OWNER, SALESPERSON)
// may perform every operation on every form and is handled before this
// table is consulted.
var customerOwnFormOps = map[FormOperation]bool{
	OpCreateForm:        false,
	OpReadForm:          true,
	OpListHistory:       true,
	OpUpdateFormData:    true,
	OpSubmitForm:        true,
	OpReopenForm:        false,
	OpCompleteForm:      false,
	OpUpdateFormDetails: false,
	OpDeleteForm:        false,
}

// authorizeForm decides op for the caller against the target form.
// A denied customer always gets the same ErrForbidden, regardless of
// whether the form belongs to someone else or the operation is
// staff-only; no form details leak through the error.
func authorizeForm(op FormOperation, actor *types.Claims, form *models.Form) error {
	role := models.UserRole(actor.Role)
	if role.IsStaff() {
		return nil
	}
	if role == models.UserRoleCustomer {
		if customerOwnFormOps[op] && form != nil && form.CustomerID == actor.UserID {
			return nil
		}
	}
	return ErrForbidden
}
