package budget

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	apperrors "github.com/jrsteele09/go-budget-client/internal/errors"
	"github.com/jrsteele09/go-budget-client/internal/utils"
	"github.com/tidwall/gjson"
)

// DefaultPageSize is assumed when a list response does not state one.
const DefaultPageSize = 25

// Page is one page of a list endpoint. Endpoints without pagination return
// a bare array, which decodes into Results with the metadata zeroed.
type Page[T any] struct {
	Results  []T
	Count    int
	Next     *string
	Previous *string
	PageSize int
}

// ListOptions are the common query parameters of list endpoints.
type ListOptions struct {
	Page     int
	PageSize int
	Search   string
	Ordering string
	Extra    url.Values // passed through verbatim
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	for key, values := range o.Extra {
		q[key] = append([]string(nil), values...)
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(o.PageSize))
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Ordering != "" {
		q.Set("ordering", o.Ordering)
	}
	return q
}

func decodePage[T any](body []byte) (*Page[T], error) {
	page := &Page[T]{Results: []T{}, PageSize: DefaultPageSize}
	if len(body) == 0 {
		return page, nil
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: list body is not JSON", apperrors.ErrInvalidResponse)
	}

	doc := gjson.ParseBytes(body)
	results := doc
	if doc.IsObject() {
		results = doc.Get("results")
		page.Count = int(doc.Get("count").Int())
		page.Next = optionalString(doc.Get("next"))
		page.Previous = optionalString(doc.Get("previous"))
		if size := int(doc.Get("page_size").Int()); size > 0 {
			page.PageSize = size
		}
	}
	if !results.IsArray() {
		return page, nil
	}
	if err := json.Unmarshal([]byte(results.Raw), &page.Results); err != nil {
		return nil, fmt.Errorf("%w: decode list: %w", apperrors.ErrInvalidResponse, err)
	}
	return page, nil
}

func optionalString(r gjson.Result) *string {
	if r.Type != gjson.String {
		return nil
	}
	return utils.NonEmptyPtr(r.Str)
}
