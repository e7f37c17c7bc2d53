package xlautomaten

import "fmt"

// apiMapping is the mapping wire shape. The status field uses the empty
// string and null interchangeably for "no status". The legacy last_use
// column is always null and is ignored here.
type apiMapping struct {
	ArticleID  *int       `json:"article_id" validate:"required"`
	PositionID *int       `json:"position_id" validate:"required"`
	Inventory  *int       `json:"inventory"`
	Empty      *looseBool `json:"empty" validate:"omitempty,oneof=0 1"`
	Status     *string    `json:"status"`
}

type apiMappingResponse struct {
	apiMapping
	apiDatabaseObject
}

type apiMappingTray struct {
	apiTrayResponse
	Machine *apiMachineResponse `json:"machine" validate:"required"`
}

type apiMappingPosition struct {
	apiPositionResponse
	Tray *apiMappingTray `json:"tray" validate:"required"`
}

// apiMappingWithPosition is the mapping shape of get, list, create, and
// delete responses: the mapping plus its position, tray, and machine.
type apiMappingWithPosition struct {
	apiMappingResponse
	Position *apiMappingPosition `json:"position" validate:"required"`
}

// apiMappingWithArticle is the update-mapping response shape.
type apiMappingWithArticle struct {
	apiMappingResponse
	Article *apiArticleResponse `json:"article" validate:"required"`
}

func (w apiMappingResponse) toDomain() (Mapping, error) {
	base, err := w.apiDatabaseObject.toDomain()
	if err != nil {
		return Mapping{}, err
	}
	var status *string
	if w.Status != nil && *w.Status != "" {
		switch *w.Status {
		case MappingStatusSelectionEmpty, MappingStatusProductNotDetected:
			status = clonePtr(w.Status)
		default:
			return Mapping{}, fmt.Errorf("unknown mapping status %q", *w.Status)
		}
	}
	return Mapping{
		DatabaseObject: base,
		ArticleID:      deref(w.ArticleID),
		PositionID:     deref(w.PositionID),
		Inventory:      valueOr(w.Inventory, 0),
		Empty:          optionalBool(w.Empty),
		Status:         status,
	}, nil
}

func (w apiMappingWithPosition) toDomain() (MappingWithPosition, error) {
	mapping, err := w.apiMappingResponse.toDomain()
	if err != nil {
		return MappingWithPosition{}, err
	}
	if w.Position == nil || w.Position.Tray == nil || w.Position.Tray.Machine == nil {
		return MappingWithPosition{}, fmt.Errorf("mapping %d is missing its position details", mapping.ID)
	}
	position, err := w.Position.apiPositionResponse.toDomain()
	if err != nil {
		return MappingWithPosition{}, err
	}
	tray, err := w.Position.Tray.apiTrayResponse.toDomain()
	if err != nil {
		return MappingWithPosition{}, err
	}
	machine, err := w.Position.Tray.Machine.toDomain()
	if err != nil {
		return MappingWithPosition{}, err
	}
	return MappingWithPosition{
		Mapping: mapping,
		Position: MappingPosition{
			Position: position,
			Tray:     MappingTray{Tray: tray, Machine: machine},
		},
	}, nil
}

func (w apiMappingWithArticle) toDomain() (MappingWithArticle, error) {
	mapping, err := w.apiMappingResponse.toDomain()
	if err != nil {
		return MappingWithArticle{}, err
	}
	if w.Article == nil {
		return MappingWithArticle{}, fmt.Errorf("mapping %d is missing its article details", mapping.ID)
	}
	article, err := w.Article.toDomain()
	if err != nil {
		return MappingWithArticle{}, err
	}
	return MappingWithArticle{Mapping: mapping, Article: article}, nil
}

// mappingBody serializes a mapping write. The article and position IDs
// are always present; empty and inventory appear only when set.
func mappingBody(m NewMapping) map[string]any {
	body := map[string]any{
		"article_id":  m.ArticleID,
		"position_id": m.PositionID,
	}
	if m.Empty != nil {
		body["empty"] = boolToWire(*m.Empty)
	}
	if m.Inventory != nil {
		body["inventory"] = *m.Inventory
	}
	return body
}
