package remote

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bexiiiii/euroline-sub001/internal/domain/catalog"
)

const endpointSearch = "search"

type searchResponse struct {
	Items    []catalog.Item `json:"items"`
	Total    catalog.Number `json:"total"`
	Page     catalog.Number `json:"page"`
	PageSize catalog.Number `json:"pageSize"`
}

// Search runs a catalog query. Pagination values are passed through as-is.
func (c *Client) Search(ctx context.Context, query string, page, pageSize int) (catalog.ResultSet, error) {
	q := url.Values{}
	q.Set("query", query)
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("pageSize", strconv.Itoa(pageSize))
	}

	var resp searchResponse
	if err := c.do(ctx, endpointSearch, http.MethodGet, c.url(c.paths.Search)+"?"+q.Encode(), nil, &resp); err != nil {
		return catalog.ResultSet{}, err
	}

	items := resp.Items
	if items == nil {
		items = []catalog.Item{}
	}
	total, _ := resp.Total.Int()
	p, _ := resp.Page.Int()
	size, _ := resp.PageSize.Int()

	return catalog.ResultSet{
		Items: items,
		Page:  catalog.Page{Total: total, Page: p, PageSize: size},
	}, nil
}
