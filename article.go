package xlautomaten

import (
	"context"
	"strconv"
)

// Article is a product that can be sold or handed over by a machine.
// Optional fields are nil when the server has no value for them.
type Article struct {
	DatabaseObject
	Number                   string
	OrderNumber              *string
	Name                     string
	Description              *string
	Image                    *string
	PreviewImage             *string
	SupplierID               int
	Price                    float64
	Price2                   *float64
	Price3                   *float64
	Price4                   *float64
	LiftDistancePusher       *int
	LiftDistanceSpiral       *int
	Pushable                 bool
	Spiralable               bool
	SpiralAsPusher           bool
	Blocked                  bool
	Photocell                bool
	DoubleTurn               bool
	SellOnTempStop           bool
	OverPush                 int
	AgeControl               bool
	TaxRate                  string
	Code                     *int
	MaxFillingLevel          *int
	Roll                     bool
	Priority                 int
	// Archived is read-only; use ArchiveArticle to set it.
	Archived                 bool
	Virtual                  bool
	TopUp                    bool
	BonusAmount              float64
	InternalPrice            *float64
	SpiralAdditionalTurnTime int
	IsHandover               bool
	IsLend                   bool
}

// ArticleCategoryPivot links an article to one of its categories.
type ArticleCategoryPivot struct {
	CategorizableID   int
	CategorizableType string
}

// ArticleCategory is a category as attached to an article.
type ArticleCategory struct {
	Category
	Pivot ArticleCategoryPivot
}

// ArticleWithCategories is the list-articles element: an article plus
// its category assignments.
type ArticleWithCategories struct {
	Article
	Categories []ArticleCategory
}

// NewArticle is the input for CreateArticle. Number, Name, Price, and
// SupplierID have no server-side default and must be set; nil optional
// fields are omitted from the request.
type NewArticle struct {
	Number     string
	Name       string
	Price      float64
	SupplierID int

	OrderNumber              *string
	Description              *string
	Image                    *string
	PreviewImage             *string
	Price2                   *float64
	Price3                   *float64
	Price4                   *float64
	LiftDistancePusher       *int
	LiftDistanceSpiral       *int
	Pushable                 *bool
	Spiralable               *bool
	SpiralAsPusher           *bool
	Blocked                  *bool
	Photocell                *bool
	DoubleTurn               *bool
	SellOnTempStop           *bool
	OverPush                 *int
	AgeControl               *bool
	TaxRate                  *string
	Code                     *int
	MaxFillingLevel          *int
	Roll                     *bool
	Priority                 *int
	Virtual                  *bool
	TopUp                    *bool
	BonusAmount              *float64
	InternalPrice            *float64
	SpiralAdditionalTurnTime *int
	IsHandover               *bool
	IsLend                   *bool
}

// ArticlePatch describes changes for UpdateArticle. nil fields are left
// unchanged; setting a nullable string field to "" clears it.
type ArticlePatch struct {
	Number     *string
	Name       *string
	Price      *float64
	SupplierID *int

	OrderNumber              *string
	Description              *string
	Image                    *string
	PreviewImage             *string
	Price2                   *float64
	Price3                   *float64
	Price4                   *float64
	LiftDistancePusher       *int
	LiftDistanceSpiral       *int
	Pushable                 *bool
	Spiralable               *bool
	SpiralAsPusher           *bool
	Blocked                  *bool
	Photocell                *bool
	DoubleTurn               *bool
	SellOnTempStop           *bool
	OverPush                 *int
	AgeControl               *bool
	TaxRate                  *string
	Code                     *int
	MaxFillingLevel          *int
	Roll                     *bool
	Priority                 *int
	Virtual                  *bool
	TopUp                    *bool
	BonusAmount              *float64
	InternalPrice            *float64
	SpiralAdditionalTurnTime *int
	IsHandover               *bool
	IsLend                   *bool
}

// hasRequiredWriteFields reports whether the patch carries everything
// the API requires on every article write.
func (p ArticlePatch) hasRequiredWriteFields() bool {
	return p.Number != nil && p.Name != nil && p.Price != nil && p.SupplierID != nil
}

// toNewArticle converts a patch that carries all required write fields
// into a write input.
func (p ArticlePatch) toNewArticle() NewArticle {
	return NewArticle{
		Number:                   *p.Number,
		Name:                     *p.Name,
		Price:                    *p.Price,
		SupplierID:               *p.SupplierID,
		OrderNumber:              p.OrderNumber,
		Description:              p.Description,
		Image:                    p.Image,
		PreviewImage:             p.PreviewImage,
		Price2:                   p.Price2,
		Price3:                   p.Price3,
		Price4:                   p.Price4,
		LiftDistancePusher:       p.LiftDistancePusher,
		LiftDistanceSpiral:       p.LiftDistanceSpiral,
		Pushable:                 p.Pushable,
		Spiralable:               p.Spiralable,
		SpiralAsPusher:           p.SpiralAsPusher,
		Blocked:                  p.Blocked,
		Photocell:                p.Photocell,
		DoubleTurn:               p.DoubleTurn,
		SellOnTempStop:           p.SellOnTempStop,
		OverPush:                 p.OverPush,
		AgeControl:               p.AgeControl,
		TaxRate:                  p.TaxRate,
		Code:                     p.Code,
		MaxFillingLevel:          p.MaxFillingLevel,
		Roll:                     p.Roll,
		Priority:                 p.Priority,
		Virtual:                  p.Virtual,
		TopUp:                    p.TopUp,
		BonusAmount:              p.BonusAmount,
		InternalPrice:            p.InternalPrice,
		SpiralAdditionalTurnTime: p.SpiralAdditionalTurnTime,
		IsHandover:               p.IsHandover,
		IsLend:                   p.IsLend,
	}
}

// CreateArticle creates a new article and returns it.
func (c *Client) CreateArticle(ctx context.Context, article NewArticle) (*Article, error) {
	var dto apiArticleResponse
	if err := c.post(ctx, "article", articleBody(article), &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: "article", Err: err}
	}
	return &result, nil
}

// GetArticle returns a single article by id.
func (c *Client) GetArticle(ctx context.Context, id int) (*Article, error) {
	endpoint := "article/" + strconv.Itoa(id)
	var dto apiArticleResponse
	if err := c.get(ctx, endpoint, &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}

// GetArticles returns all articles with their category assignments.
func (c *Client) GetArticles(ctx context.Context) ([]ArticleWithCategories, error) {
	var dtos []apiArticleWithCategories
	if err := c.get(ctx, "articles", &dtos); err != nil {
		return nil, err
	}
	return toDomainList("articles", dtos, apiArticleWithCategories.toDomain)
}

// UpdateArticle applies the patch to an existing article. The API
// requires number, name, price, and supplier_id on every write; when
// the patch misses any of them the current article is fetched first and
// the patch is merged on top.
func (c *Client) UpdateArticle(ctx context.Context, id int, patch ArticlePatch) (*Article, error) {
	var update NewArticle
	if patch.hasRequiredWriteFields() {
		update = patch.toNewArticle()
	} else {
		current, err := c.GetArticle(ctx, id)
		if err != nil {
			return nil, err
		}
		update = mergeArticle(current, patch)
	}

	endpoint := "article/" + strconv.Itoa(id)
	var dto apiArticleResponse
	if err := c.put(ctx, endpoint, articleBody(update), &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}

// ArchiveArticle archives an article and returns its last state.
// Articles are never really deleted; archiving only sets the archived
// flag and the article stays retrievable.
func (c *Client) ArchiveArticle(ctx context.Context, id int) (*Article, error) {
	endpoint := "article/" + strconv.Itoa(id)
	var dto apiArticleResponse
	if err := c.del(ctx, endpoint, &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}
