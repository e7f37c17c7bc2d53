package xlautomaten

import (
	"context"
	"strconv"
	"time"
)

// Voucher is a cash voucher customers can redeem at a machine. The
// server assigns the six-character code; only the comment can be edited
// after creation.
type Voucher struct {
	DatabaseObject
	// Voucher is the code, six uppercase letters and digits.
	Voucher string
	// InitialAmount is the starting credit in euros.
	InitialAmount float64
	// UsedAmount is how much of the credit is already spent.
	UsedAmount float64
	Comment    *string
	// CreatedBy is the profile ID of the user that created the voucher.
	CreatedBy int
	BlockedAt *time.Time
	DeletedAt *time.Time
}

// VoucherWithTransactions is a voucher together with its transaction
// history, as returned by GetVoucher and CreateVoucherTransaction.
type VoucherWithTransactions struct {
	Voucher
	Transactions []VoucherTransaction
}

// NewVoucher is the input for CreateVoucher. Only the initial amount is
// required.
type NewVoucher struct {
	InitialAmount float64
	Comment       *string
}

// VoucherPatch describes changes for UpdateVoucher. Only the comment
// can be edited; nil leaves it unchanged.
type VoucherPatch struct {
	Comment *string
}

// CreateVoucher creates a new voucher and returns it. The server picks
// the code.
func (c *Client) CreateVoucher(ctx context.Context, voucher NewVoucher) (*Voucher, error) {
	var dto apiVoucherResponse
	if err := c.post(ctx, "cashvoucher", voucherBody(voucher), &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: "cashvoucher", Err: err}
	}
	return &result, nil
}

// GetVoucher returns a single voucher by id, together with its
// transaction history.
func (c *Client) GetVoucher(ctx context.Context, id int) (*VoucherWithTransactions, error) {
	endpoint := "cashvoucher/" + strconv.Itoa(id)
	var dto apiVoucherWithTransactions
	if err := c.get(ctx, endpoint, &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}

// GetVouchers returns all vouchers.
func (c *Client) GetVouchers(ctx context.Context) ([]Voucher, error) {
	var dtos []apiVoucherResponse
	if err := c.get(ctx, "cashvouchers", &dtos); err != nil {
		return nil, err
	}
	return toDomainList("cashvouchers", dtos, apiVoucherResponse.toDomain)
}

// UpdateVoucher applies the patch to an existing voucher. The voucher
// endpoint requires the initial amount on every write, so the current
// voucher is always fetched first.
func (c *Client) UpdateVoucher(ctx context.Context, id int, patch VoucherPatch) (*Voucher, error) {
	current, err := c.GetVoucher(ctx, id)
	if err != nil {
		return nil, err
	}
	update := NewVoucher{
		InitialAmount: current.InitialAmount,
		Comment:       clonePtr(current.Comment),
	}
	if patch.Comment != nil {
		update.Comment = patch.Comment
	}

	endpoint := "cashvoucher/" + strconv.Itoa(id)
	var dto apiVoucherResponse
	if err := c.put(ctx, endpoint, voucherBody(update), &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}

// DeleteVoucher deletes a voucher and returns its last state.
func (c *Client) DeleteVoucher(ctx context.Context, id int) (*Voucher, error) {
	endpoint := "cashvoucher/" + strconv.Itoa(id)
	var dto apiVoucherResponse
	if err := c.del(ctx, endpoint, &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}
