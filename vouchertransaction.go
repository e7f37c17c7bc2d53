package xlautomaten

import (
	"context"
	"strconv"
)

// VoucherTransaction is one booking on a voucher. MastermoduleID is
// absent for transactions that did not happen on a machine, e.g. ones
// created through the API; UserID is absent for transactions no user
// triggered.
type VoucherTransaction struct {
	DatabaseObject
	VoucherID      int
	MastermoduleID *int
	BeforeAmount   float64
	// ChangedAmount is the change applied by this transaction. A
	// negative amount adds credit, a positive amount subtracts it.
	ChangedAmount float64
	AfterAmount   float64
	UserID        *int
	Comment       string
}

// NewVoucherTransaction is the input for CreateVoucherTransaction. A
// positive amount adds credit to the voucher, a negative amount
// subtracts it.
type NewVoucherTransaction struct {
	Amount  float64
	Comment string
}

// CreateVoucherTransaction books a transaction on a voucher and returns
// the voucher with its full transaction history.
func (c *Client) CreateVoucherTransaction(ctx context.Context, voucherID int, transaction NewVoucherTransaction) (*VoucherWithTransactions, error) {
	endpoint := "cashvouchercredit/" + strconv.Itoa(voucherID)
	var dto apiVoucherWithTransactions
	if err := c.put(ctx, endpoint, voucherTransactionBody(transaction), &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}
