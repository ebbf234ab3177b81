// models/search_response.go
package models

// ResultEnvelope is the normalized result shape returned to callers,
// decoupled from the Elasticsearch response structure.
type ResultEnvelope struct {
	TotalHits    int                      `json:"total_hits"`
	TookMs       int                      `json:"took_ms"`
	Hits         []map[string]interface{} `json:"hits"`
	Aggregations map[string]interface{}   `json:"aggregations,omitempty"`
}

// ErrorRecord is returned in place of a ResultEnvelope when query
// execution fails.
type ErrorRecord struct {
	Error string `json:"error"`
}

// EsSearchResponse mirrors the part of the Elasticsearch search response
// this service reads.
type EsSearchResponse struct {
	Took int    `json:"took"`
	Hits EsHits `json:"hits"`

	Aggregations map[string]interface{} `json:"aggregations"`
}

type EsHits struct {
	Total EsTotal `json:"total"`
	Hits  []EsHit `json:"hits"`
}

type EsTotal struct {
	Value int `json:"value"`
}

type EsHit struct {
	Source map[string]interface{} `json:"_source"`
}
