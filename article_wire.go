package xlautomaten

import "encoding/json"

// apiArticle is the article wire shape. The guaranteed allowlist is
// number, name, price, supplier_id, code, price2-4, is_lend, and
// lend_data; everything else may be missing on minimal responses.
type apiArticle struct {
	Number                   *string         `json:"number" validate:"required"`
	OrderNumber              *string         `json:"order_number"`
	Name                     *string         `json:"name" validate:"required"`
	Description              *string         `json:"description"`
	MainImg                  *string         `json:"main_img"`
	PreviewImg               *string         `json:"preview_img"`
	SupplierID               *int            `json:"supplier_id" validate:"required"`
	Price                    *float64        `json:"price" validate:"required"`
	Price2                   *float64        `json:"price2"`
	Price3                   *float64        `json:"price3"`
	Price4                   *float64        `json:"price4"`
	LiftDistancePusher       *int            `json:"lift_distance_pusher"`
	LiftDistanceSpiral       *int            `json:"lift_distance_spiral"`
	PushAble                 *looseBool      `json:"push_able" validate:"omitempty,oneof=0 1"`
	SpiralAble               *looseBool      `json:"spiral_able" validate:"omitempty,oneof=0 1"`
	SpiralAsPusher           *looseBool      `json:"spiral_as_pusher" validate:"omitempty,oneof=0 1"`
	Blocked                  *looseBool      `json:"blocked" validate:"omitempty,oneof=0 1"`
	Photocell                *looseBool      `json:"photocell" validate:"omitempty,oneof=0 1"`
	DoubleTurn               *looseBool      `json:"double_turn" validate:"omitempty,oneof=0 1"`
	SellOnTempStop           *looseBool      `json:"sell_on_temp_stop" validate:"omitempty,oneof=0 1"`
	OverPush                 *int            `json:"over_push"`
	AgeControl               *looseBool      `json:"age_control" validate:"omitempty,oneof=0 1"`
	TaxRate                  *string         `json:"tax_rate"`
	Code                     *int            `json:"code"`
	MaxFillingLevel          *int            `json:"max_filling_level"`
	Roll                     *looseBool      `json:"roll" validate:"omitempty,oneof=0 1"`
	Priority                 *int            `json:"priority"`
	Archived                 *looseBool      `json:"archived" validate:"omitempty,oneof=0 1"`
	IsVirtual                *looseBool      `json:"is_virtual" validate:"omitempty,oneof=0 1"`
	IsTopUp                  *looseBool      `json:"is_top_up" validate:"omitempty,oneof=0 1"`
	BonusAmount              *float64        `json:"bonus_amount"`
	InternalPrice            *float64        `json:"internal_price"`
	SpiralAdditionalTurnTime *int            `json:"spiral_additional_turn_time"`
	IsHandover               *looseBool      `json:"is_handover" validate:"omitempty,oneof=0 1"`
	IsLend                   *bool           `json:"is_lend" validate:"required"`
	LendData                 json.RawMessage `json:"lend_data"`
}

type apiArticleResponse struct {
	apiArticle
	apiDatabaseObject
}

// apiArticlePivot links an article to a category.
type apiArticlePivot struct {
	CategorizableID   *int    `json:"categorizable_id" validate:"required"`
	CategoryID        *int    `json:"category_id" validate:"required"`
	CategorizableType *string `json:"categorizable_type" validate:"required"`
}

type apiArticleCategory struct {
	apiCategoryResponse
	Pivot *apiArticlePivot `json:"pivot" validate:"required"`
}

// apiArticleWithCategories is the list-articles element shape, which
// additionally carries the article's categories.
type apiArticleWithCategories struct {
	apiArticleResponse
	Categories []apiArticleCategory `json:"categories"`
}

func (w apiArticleResponse) toDomain() (Article, error) {
	base, err := w.apiDatabaseObject.toDomain()
	if err != nil {
		return Article{}, err
	}
	return Article{
		DatabaseObject:           base,
		Number:                   deref(w.Number),
		OrderNumber:              optionalStr(w.OrderNumber),
		Name:                     deref(w.Name),
		Description:              optionalStr(w.Description),
		Image:                    optionalStr(w.MainImg),
		PreviewImage:             optionalStr(w.PreviewImg),
		SupplierID:               deref(w.SupplierID),
		Price:                    deref(w.Price),
		Price2:                   clonePtr(w.Price2),
		Price3:                   clonePtr(w.Price3),
		Price4:                   clonePtr(w.Price4),
		LiftDistancePusher:       clonePtr(w.LiftDistancePusher),
		LiftDistanceSpiral:       clonePtr(w.LiftDistanceSpiral),
		Pushable:                 boolFromWire(w.PushAble, false),
		Spiralable:               boolFromWire(w.SpiralAble, false),
		SpiralAsPusher:           boolFromWire(w.SpiralAsPusher, true),
		Blocked:                  boolFromWire(w.Blocked, false),
		Photocell:                boolFromWire(w.Photocell, true),
		DoubleTurn:               boolFromWire(w.DoubleTurn, true),
		SellOnTempStop:           boolFromWire(w.SellOnTempStop, false),
		OverPush:                 valueOr(w.OverPush, 0),
		AgeControl:               boolFromWire(w.AgeControl, false),
		TaxRate:                  valueOr(w.TaxRate, "19.00"),
		Code:                     clonePtr(w.Code),
		MaxFillingLevel:          clonePtr(w.MaxFillingLevel),
		Roll:                     boolFromWire(w.Roll, false),
		Priority:                 valueOr(w.Priority, 0),
		Archived:                 boolFromWire(w.Archived, false),
		Virtual:                  boolFromWire(w.IsVirtual, false),
		TopUp:                    boolFromWire(w.IsTopUp, false),
		BonusAmount:              valueOr(w.BonusAmount, 0),
		InternalPrice:            clonePtr(w.InternalPrice),
		SpiralAdditionalTurnTime: valueOr(w.SpiralAdditionalTurnTime, 0),
		IsHandover:               boolFromWire(w.IsHandover, false),
		IsLend:                   deref(w.IsLend),
	}, nil
}

func (w apiArticleWithCategories) toDomain() (ArticleWithCategories, error) {
	article, err := w.apiArticleResponse.toDomain()
	if err != nil {
		return ArticleWithCategories{}, err
	}
	categories := make([]ArticleCategory, len(w.Categories))
	for i, dto := range w.Categories {
		category, err := dto.apiCategoryResponse.toDomain()
		if err != nil {
			return ArticleWithCategories{}, err
		}
		categories[i] = ArticleCategory{
			Category: category,
			Pivot: ArticleCategoryPivot{
				CategorizableID:   deref(dto.Pivot.CategorizableID),
				CategorizableType: deref(dto.Pivot.CategorizableType),
			},
		}
	}
	return ArticleWithCategories{Article: article, Categories: categories}, nil
}

// articleBody serializes an article write. Required-on-write fields are
// always present; optional fields appear only when the input carries
// them, letting the server keep untouched fields on partial updates.
// Nullable string fields clear to an explicit null on empty input.
func articleBody(a NewArticle) map[string]any {
	body := map[string]any{
		"number":      a.Number,
		"name":        a.Name,
		"supplier_id": a.SupplierID,
		"price":       a.Price,
	}
	if a.OrderNumber != nil {
		body["order_number"] = strOrNull(*a.OrderNumber)
	}
	if a.Description != nil {
		body["description"] = strOrNull(*a.Description)
	}
	if a.Image != nil {
		body["main_img"] = strOrNull(*a.Image)
	}
	if a.PreviewImage != nil {
		body["preview_img"] = strOrNull(*a.PreviewImage)
	}
	if a.Price2 != nil {
		body["price2"] = *a.Price2
	}
	if a.Price3 != nil {
		body["price3"] = *a.Price3
	}
	if a.Price4 != nil {
		body["price4"] = *a.Price4
	}
	if a.LiftDistancePusher != nil {
		body["lift_distance_pusher"] = *a.LiftDistancePusher
	}
	if a.LiftDistanceSpiral != nil {
		body["lift_distance_spiral"] = *a.LiftDistanceSpiral
	}
	if a.Pushable != nil {
		body["push_able"] = boolToWire(*a.Pushable)
	}
	if a.Spiralable != nil {
		body["spiral_able"] = boolToWire(*a.Spiralable)
	}
	if a.SpiralAsPusher != nil {
		body["spiral_as_pusher"] = boolToWire(*a.SpiralAsPusher)
	}
	if a.Blocked != nil {
		body["blocked"] = boolToWire(*a.Blocked)
	}
	if a.Photocell != nil {
		body["photocell"] = boolToWire(*a.Photocell)
	}
	if a.DoubleTurn != nil {
		body["double_turn"] = boolToWire(*a.DoubleTurn)
	}
	if a.SellOnTempStop != nil {
		body["sell_on_temp_stop"] = boolToWire(*a.SellOnTempStop)
	}
	if a.OverPush != nil {
		body["over_push"] = *a.OverPush
	}
	if a.AgeControl != nil {
		body["age_control"] = boolToWire(*a.AgeControl)
	}
	if a.TaxRate != nil {
		body["tax_rate"] = *a.TaxRate
	}
	if a.Code != nil {
		body["code"] = *a.Code
	}
	if a.MaxFillingLevel != nil {
		body["max_filling_level"] = *a.MaxFillingLevel
	}
	if a.Roll != nil {
		body["roll"] = boolToWire(*a.Roll)
	}
	if a.Priority != nil {
		body["priority"] = *a.Priority
	}
	if a.Virtual != nil {
		body["is_virtual"] = boolToWire(*a.Virtual)
	}
	if a.TopUp != nil {
		body["is_top_up"] = boolToWire(*a.TopUp)
	}
	if a.BonusAmount != nil {
		body["bonus_amount"] = *a.BonusAmount
	}
	if a.InternalPrice != nil {
		body["internal_price"] = *a.InternalPrice
	}
	if a.SpiralAdditionalTurnTime != nil {
		body["spiral_additional_turn_time"] = *a.SpiralAdditionalTurnTime
	}
	if a.IsHandover != nil {
		body["is_handover"] = boolToWire(*a.IsHandover)
	}
	if a.IsLend != nil {
		body["is_lend"] = *a.IsLend
	}
	return body
}

// mergeArticle overlays a patch on the current server state, producing
// a full write input so the update does not clear untouched fields.
func mergeArticle(current *Article, patch ArticlePatch) NewArticle {
	merged := NewArticle{
		Number:                   current.Number,
		Name:                     current.Name,
		Price:                    current.Price,
		SupplierID:               current.SupplierID,
		OrderNumber:              clonePtr(current.OrderNumber),
		Description:              clonePtr(current.Description),
		Image:                    clonePtr(current.Image),
		PreviewImage:             clonePtr(current.PreviewImage),
		Price2:                   clonePtr(current.Price2),
		Price3:                   clonePtr(current.Price3),
		Price4:                   clonePtr(current.Price4),
		LiftDistancePusher:       clonePtr(current.LiftDistancePusher),
		LiftDistanceSpiral:       clonePtr(current.LiftDistanceSpiral),
		Pushable:                 ptr(current.Pushable),
		Spiralable:               ptr(current.Spiralable),
		SpiralAsPusher:           ptr(current.SpiralAsPusher),
		Blocked:                  ptr(current.Blocked),
		Photocell:                ptr(current.Photocell),
		DoubleTurn:               ptr(current.DoubleTurn),
		SellOnTempStop:           ptr(current.SellOnTempStop),
		OverPush:                 ptr(current.OverPush),
		AgeControl:               ptr(current.AgeControl),
		TaxRate:                  ptr(current.TaxRate),
		Code:                     clonePtr(current.Code),
		MaxFillingLevel:          clonePtr(current.MaxFillingLevel),
		Roll:                     ptr(current.Roll),
		Priority:                 ptr(current.Priority),
		Virtual:                  ptr(current.Virtual),
		TopUp:                    ptr(current.TopUp),
		BonusAmount:              ptr(current.BonusAmount),
		InternalPrice:            clonePtr(current.InternalPrice),
		SpiralAdditionalTurnTime: ptr(current.SpiralAdditionalTurnTime),
		IsHandover:               ptr(current.IsHandover),
		IsLend:                   ptr(current.IsLend),
	}

	if patch.Number != nil {
		merged.Number = *patch.Number
	}
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Price != nil {
		merged.Price = *patch.Price
	}
	if patch.SupplierID != nil {
		merged.SupplierID = *patch.SupplierID
	}
	if patch.OrderNumber != nil {
		merged.OrderNumber = patch.OrderNumber
	}
	if patch.Description != nil {
		merged.Description = patch.Description
	}
	if patch.Image != nil {
		merged.Image = patch.Image
	}
	if patch.PreviewImage != nil {
		merged.PreviewImage = patch.PreviewImage
	}
	if patch.Price2 != nil {
		merged.Price2 = patch.Price2
	}
	if patch.Price3 != nil {
		merged.Price3 = patch.Price3
	}
	if patch.Price4 != nil {
		merged.Price4 = patch.Price4
	}
	if patch.LiftDistancePusher != nil {
		merged.LiftDistancePusher = patch.LiftDistancePusher
	}
	if patch.LiftDistanceSpiral != nil {
		merged.LiftDistanceSpiral = patch.LiftDistanceSpiral
	}
	if patch.Pushable != nil {
		merged.Pushable = patch.Pushable
	}
	if patch.Spiralable != nil {
		merged.Spiralable = patch.Spiralable
	}
	if patch.SpiralAsPusher != nil {
		merged.SpiralAsPusher = patch.SpiralAsPusher
	}
	if patch.Blocked != nil {
		merged.Blocked = patch.Blocked
	}
	if patch.Photocell != nil {
		merged.Photocell = patch.Photocell
	}
	if patch.DoubleTurn != nil {
		merged.DoubleTurn = patch.DoubleTurn
	}
	if patch.SellOnTempStop != nil {
		merged.SellOnTempStop = patch.SellOnTempStop
	}
	if patch.OverPush != nil {
		merged.OverPush = patch.OverPush
	}
	if patch.AgeControl != nil {
		merged.AgeControl = patch.AgeControl
	}
	if patch.TaxRate != nil {
		merged.TaxRate = patch.TaxRate
	}
	if patch.Code != nil {
		merged.Code = patch.Code
	}
	if patch.MaxFillingLevel != nil {
		merged.MaxFillingLevel = patch.MaxFillingLevel
	}
	if patch.Roll != nil {
		merged.Roll = patch.Roll
	}
	if patch.Priority != nil {
		merged.Priority = patch.Priority
	}
	if patch.Virtual != nil {
		merged.Virtual = patch.Virtual
	}
	if patch.TopUp != nil {
		merged.TopUp = patch.TopUp
	}
	if patch.BonusAmount != nil {
		merged.BonusAmount = patch.BonusAmount
	}
	if patch.InternalPrice != nil {
		merged.InternalPrice = patch.InternalPrice
	}
	if patch.SpiralAdditionalTurnTime != nil {
		merged.SpiralAdditionalTurnTime = patch.SpiralAdditionalTurnTime
	}
	if patch.IsHandover != nil {
		merged.IsHandover = patch.IsHandover
	}
	if patch.IsLend != nil {
		merged.IsLend = patch.IsLend
	}
	return merged
}
