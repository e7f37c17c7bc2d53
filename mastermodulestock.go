package xlautomaten

import (
	"context"
	"strconv"
)

// MastermoduleStockArticle is one line of a mastermodule's stock
// report: an article and how many units the machine currently holds.
type MastermoduleStockArticle struct {
	ArticleID     int
	Name          string
	ArticleNumber string
	Image         *string
	Stock         int
}

type apiMastermoduleStockArticle struct {
	ID            *int    `json:"id" validate:"required"`
	Name          *string `json:"name" validate:"required"`
	ArticleNumber *string `json:"article_number" validate:"required"`
	Img           *string `json:"img"`
	Stock         *int    `json:"stock" validate:"required"`
}

func (w apiMastermoduleStockArticle) toDomain() (MastermoduleStockArticle, error) {
	return MastermoduleStockArticle{
		ArticleID:     deref(w.ID),
		Name:          deref(w.Name),
		ArticleNumber: deref(w.ArticleNumber),
		Image:         clonePtr(w.Img),
		Stock:         deref(w.Stock),
	}, nil
}

// GetMastermoduleStock returns the current stock of the machine a
// mastermodule controls.
func (c *Client) GetMastermoduleStock(ctx context.Context, mastermoduleID int) ([]MastermoduleStockArticle, error) {
	endpoint := "mastermodulestock/" + strconv.Itoa(mastermoduleID)
	var dtos []apiMastermoduleStockArticle
	if err := c.get(ctx, endpoint, &dtos); err != nil {
		return nil, err
	}
	return toDomainList(endpoint, dtos, apiMastermoduleStockArticle.toDomain)
}
