package xlautomaten

// apiVoucherTransaction is the voucher transaction wire shape, embedded
// in a voucher's history. A mastermodule_id of 0 means the transaction
// did not happen on a mastermodule; user_id is null, 0, or a numeric
// string for transactions without a user.
type apiVoucherTransaction struct {
	CashVoucherID  *int     `json:"cash_voucher_id" validate:"required"`
	MastermoduleID *int     `json:"mastermodule_id" validate:"required"`
	BeforeAmount   *float64 `json:"before_amount" validate:"required"`
	UsedAmount     *float64 `json:"used_amount" validate:"required"`
	AfterAmount    *float64 `json:"after_amount" validate:"required"`
	UserID         *wireInt `json:"user_id"`
	Comment        *string  `json:"comment" validate:"required"`
}

type apiVoucherTransactionResponse struct {
	apiVoucherTransaction
	apiDatabaseObject
}

func (w apiVoucherTransactionResponse) toDomain() (VoucherTransaction, error) {
	base, err := w.apiDatabaseObject.toDomain()
	if err != nil {
		return VoucherTransaction{}, err
	}
	var mastermoduleID *int
	if w.MastermoduleID != nil && *w.MastermoduleID != 0 {
		mastermoduleID = clonePtr(w.MastermoduleID)
	}
	var userID *int
	if w.UserID != nil && *w.UserID != 0 {
		userID = ptr(int(*w.UserID))
	}
	return VoucherTransaction{
		DatabaseObject: base,
		VoucherID:      deref(w.CashVoucherID),
		MastermoduleID: mastermoduleID,
		BeforeAmount:   deref(w.BeforeAmount),
		ChangedAmount:  deref(w.UsedAmount),
		AfterAmount:    deref(w.AfterAmount),
		UserID:         userID,
		Comment:        deref(w.Comment),
	}, nil
}

// voucherTransactionBody serializes a voucher transaction write.
func voucherTransactionBody(t NewVoucherTransaction) map[string]any {
	return map[string]any{
		"amount":  t.Amount,
		"comment": t.Comment,
	}
}
