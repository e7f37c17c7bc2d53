package xlautomaten

import (
	"context"
	"fmt"
	"strconv"
)

// Supplier is a company articles are sourced from.
type Supplier struct {
	DatabaseObject
	Name  string
	Email string
}

// NewSupplier is the input for CreateSupplier.
type NewSupplier struct {
	Name  string
	Email string
}

// SupplierPatch describes changes for UpdateSupplier. nil fields are
// left unchanged.
type SupplierPatch struct {
	Name  *string
	Email *string
}

// CreateSupplier creates a new supplier and returns it.
func (c *Client) CreateSupplier(ctx context.Context, supplier NewSupplier) (*Supplier, error) {
	var dto apiSupplierResponse
	if err := c.post(ctx, "supplier", supplierCreateBody(supplier), &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: "supplier", Err: err}
	}
	return &result, nil
}

// GetSuppliers returns all suppliers.
func (c *Client) GetSuppliers(ctx context.Context) ([]Supplier, error) {
	var dtos []apiSupplierResponse
	if err := c.get(ctx, "suppliers", &dtos); err != nil {
		return nil, err
	}
	return toDomainList("suppliers", dtos, apiSupplierResponse.toDomain)
}

// GetSupplier returns a single supplier by id. The API has no
// single-supplier endpoint, so this scans the supplier list.
func (c *Client) GetSupplier(ctx context.Context, id int) (*Supplier, error) {
	suppliers, err := c.GetSuppliers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range suppliers {
		if suppliers[i].ID == id {
			return &suppliers[i], nil
		}
	}
	return nil, fmt.Errorf("entry for Supplier not found: %w", ErrNotFound)
}

// UpdateSupplier applies the patch to an existing supplier. The API
// requires the name on every write, so a patch without a name triggers
// a fetch of the current supplier first.
func (c *Client) UpdateSupplier(ctx context.Context, id int, patch SupplierPatch) (*Supplier, error) {
	name := patch.Name
	email := patch.Email
	if name == nil {
		current, err := c.GetSupplier(ctx, id)
		if err != nil {
			return nil, err
		}
		name = &current.Name
		if email == nil {
			email = &current.Email
		}
	}

	endpoint := "supplier/" + strconv.Itoa(id)
	var dto apiSupplierResponse
	if err := c.put(ctx, endpoint, supplierUpdateBody(*name, email), &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}

// DeleteSupplier deletes a supplier and returns its last state.
func (c *Client) DeleteSupplier(ctx context.Context, id int) (*Supplier, error) {
	endpoint := "supplier/" + strconv.Itoa(id)
	var dto apiSupplierResponse
	if err := c.del(ctx, endpoint, &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}
