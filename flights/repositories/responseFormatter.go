package repositories

import (
	"errors"

	"flight-search-backend/flights/models"
)

// ErrNoResponse is returned when the backend produced no response object at
// all, as opposed to a response with zero hits.
var ErrNoResponse = errors.New("No response received")

// FormatResponse converts a decoded search response into the stable result
// envelope callers consume. Hits are kept in backend order and are never
// nil; the aggregations key appears only when the backend sent a block.
func FormatResponse(response *models.EsSearchResponse) (*models.ResultEnvelope, error) {
	if response == nil {
		return nil, ErrNoResponse
	}

	formatted := &models.ResultEnvelope{
		TotalHits: response.Hits.Total.Value,
		TookMs:    response.Took,
		Hits:      make([]map[string]interface{}, 0, len(response.Hits.Hits)),
	}

	for _, hit := range response.Hits.Hits {
		formatted.Hits = append(formatted.Hits, hit.Source)
	}

	if response.Aggregations != nil {
		formatted.Aggregations = response.Aggregations
	}

	return formatted, nil
}
