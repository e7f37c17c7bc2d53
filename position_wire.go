package xlautomaten

// apiPosition is the position wire shape. All three fields come back on
// every response.
type apiPosition struct {
	TrayID *int `json:"tray_id" validate:"required"`
	Width  *int `json:"width" validate:"required"`
	Number *int `json:"number" validate:"required,min=1,max=12"`
}

type apiPositionResponse struct {
	apiPosition
	apiDatabaseObject
}

// apiPositionWithMapping is the delete-position response. The mapping
// that occupied the position is included when there was one.
type apiPositionWithMapping struct {
	apiPositionResponse
	Mapping *apiMappingResponse `json:"mapping"`
}

func (w apiPositionResponse) toDomain() (Position, error) {
	base, err := w.apiDatabaseObject.toDomain()
	if err != nil {
		return Position{}, err
	}
	return Position{
		DatabaseObject: base,
		TrayID:         deref(w.TrayID),
		Width:          deref(w.Width),
		Number:         deref(w.Number),
	}, nil
}

// positionBody serializes a position write. Every field is required on
// both create and update.
func positionBody(pos NewPosition) map[string]any {
	return map[string]any{
		"tray_id": pos.TrayID,
		"width":   pos.Width,
		"number":  pos.Number,
	}
}
