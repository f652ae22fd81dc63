package catalog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sirosfoundation/go-csw/pkg/csw"
)

// ErrStopHarvest can be returned by a PageFunc to end a harvest early
// without error
var ErrStopHarvest = errors.New("catalog: stop harvest")

// PageFunc receives one page of search results
type PageFunc func(page *csw.SearchResults) error

// Harvest runs req page by page, following nextRecord until the catalogue
// reports no further records, and calls fn for every page. It returns the
// number of records received. req is not modified.
func (c *Client) Harvest(ctx context.Context, req *csw.SearchRequest, fn PageFunc) (int, error) {
	page := *req
	total := 0
	for {
		results, err := c.Search(ctx, &page)
		if err != nil {
			return total, err
		}
		total += len(results.Records) + len(results.Documents)

		if err := fn(results); err != nil {
			if errors.Is(err, ErrStopHarvest) {
				return total, nil
			}
			return total, err
		}

		next := results.NextRecord
		if next <= page.StartPosition || results.NumberOfRecordsReturned == 0 ||
			(results.NumberOfRecordsMatched > 0 && next > results.NumberOfRecordsMatched) {
			break
		}
		page.StartPosition = next
	}

	c.logger.Debug("harvest completed", slog.Int("records", total))
	return total, nil
}
