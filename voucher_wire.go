package xlautomaten

import (
	"fmt"
	"regexp"
)

// voucherCodePattern is the shape of server-issued voucher codes.
var voucherCodePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

// apiVoucher is the voucher wire shape. The guaranteed allowlist is
// voucher, initial_amount, used_amount, and created_by. created_by is
// sometimes a numeric string.
type apiVoucher struct {
	Voucher       *string  `json:"voucher" validate:"required"`
	InitialAmount *float64 `json:"initial_amount" validate:"required"`
	UsedAmount    *float64 `json:"used_amount" validate:"required"`
	Comment       *string  `json:"comment"`
	CreatedBy     *wireInt `json:"created_by" validate:"required"`
	BlockedAt     *string  `json:"blocked_at"`
	DeletedAt     *string  `json:"deleted_at"`
}

type apiVoucherResponse struct {
	apiVoucher
	apiDatabaseObject
}

// apiVoucherWithTransactions is the get-voucher and transaction-create
// response shape. The history is null for vouchers without
// transactions.
type apiVoucherWithTransactions struct {
	apiVoucherResponse
	History []apiVoucherTransactionResponse `json:"history"`
}

func (w apiVoucherResponse) toDomain() (Voucher, error) {
	base, err := w.apiDatabaseObject.toDomain()
	if err != nil {
		return Voucher{}, err
	}
	code := deref(w.Voucher)
	if !voucherCodePattern.MatchString(code) {
		return Voucher{}, fmt.Errorf("invalid voucher code %q", code)
	}
	blockedAt, err := parseOptionalAPIDate(w.BlockedAt)
	if err != nil {
		return Voucher{}, fmt.Errorf("blocked_at: %w", err)
	}
	deletedAt, err := parseOptionalAPIDate(w.DeletedAt)
	if err != nil {
		return Voucher{}, fmt.Errorf("deleted_at: %w", err)
	}
	return Voucher{
		DatabaseObject: base,
		Voucher:        code,
		InitialAmount:  deref(w.InitialAmount),
		UsedAmount:     deref(w.UsedAmount),
		Comment:        optionalStr(w.Comment),
		CreatedBy:      int(deref(w.CreatedBy)),
		BlockedAt:      blockedAt,
		DeletedAt:      deletedAt,
	}, nil
}

func (w apiVoucherWithTransactions) toDomain() (VoucherWithTransactions, error) {
	voucher, err := w.apiVoucherResponse.toDomain()
	if err != nil {
		return VoucherWithTransactions{}, err
	}
	transactions := make([]VoucherTransaction, len(w.History))
	for i, dto := range w.History {
		transaction, err := dto.toDomain()
		if err != nil {
			return VoucherWithTransactions{}, err
		}
		transactions[i] = transaction
	}
	return VoucherWithTransactions{Voucher: voucher, Transactions: transactions}, nil
}

// voucherBody serializes a voucher write. Only the initial amount and
// the comment are writable; the comment appears only when the input
// carries it and clears to an explicit null on empty input.
func voucherBody(v NewVoucher) map[string]any {
	body := map[string]any{
		"initial_amount": v.InitialAmount,
	}
	if v.Comment != nil {
		body["comment"] = strOrNull(*v.Comment)
	}
	return body
}
