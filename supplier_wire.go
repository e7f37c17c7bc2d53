package xlautomaten

// apiSupplier is the supplier wire shape. Both fields are part of the
// guaranteed response.
type apiSupplier struct {
	Name  *string `json:"name" validate:"required"`
	Email *string `json:"email" validate:"required"`
}

type apiSupplierResponse struct {
	apiSupplier
	apiDatabaseObject
}

func (w apiSupplierResponse) toDomain() (Supplier, error) {
	base, err := w.apiDatabaseObject.toDomain()
	if err != nil {
		return Supplier{}, err
	}
	return Supplier{
		DatabaseObject: base,
		Name:           deref(w.Name),
		Email:          deref(w.Email),
	}, nil
}

func supplierCreateBody(s NewSupplier) map[string]any {
	return map[string]any{
		"name":  s.Name,
		"email": s.Email,
	}
}

// supplierUpdateBody requires the name on every write; the email is
// sent only when provided.
func supplierUpdateBody(name string, email *string) map[string]any {
	body := map[string]any{"name": name}
	if email != nil {
		body["email"] = *email
	}
	return body
}
