package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"flight-search-backend/flights/models"

	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"
)

// QueryBuilder translates query intents into Elasticsearch request bodies
// and runs them against a single index. The client, index name and logger
// are owned by the caller; there is no package-level state.
type QueryBuilder struct {
	es     *elasticsearch.Client
	index  string
	logger *zap.Logger
}

func NewQueryBuilder(es *elasticsearch.Client, index string, logger *zap.Logger) *QueryBuilder {
	return &QueryBuilder{es: es, index: index, logger: logger}
}

// Execute builds the request document for the intent, submits it and
// normalizes the response. Every execution-path failure is logged and
// returned as a value; this method never panics on backend errors.
func (qb *QueryBuilder) Execute(ctx context.Context, intent QueryIntent) (*models.ResultEnvelope, error) {
	body, err := BuildRequest(intent)
	if err != nil {
		qb.logger.Error("Query construction error", zap.Error(err))
		return nil, err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		qb.logger.Error("Query serialization error", zap.Error(err))
		return nil, err
	}

	res, err := qb.es.Search(
		qb.es.Search.WithContext(ctx),
		qb.es.Search.WithIndex(qb.index),
		qb.es.Search.WithBody(bytes.NewReader(payload)),
	)
	if err != nil {
		qb.logger.Error("Query execution error", zap.Error(err))
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		detail, _ := io.ReadAll(res.Body)
		err := fmt.Errorf("search request failed: %s: %s", res.Status(), string(detail))
		qb.logger.Error("Query execution error", zap.Error(err))
		return nil, err
	}

	var decoded models.EsSearchResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		qb.logger.Error("Response decoding error", zap.Error(err))
		return nil, err
	}

	return FormatResponse(&decoded)
}

// ExecuteRaw resolves an external (kind, params) pair and executes it.
func (qb *QueryBuilder) ExecuteRaw(ctx context.Context, kind string, params map[string]interface{}) (*models.ResultEnvelope, error) {
	intent, err := IntentFromParams(kind, params)
	if err != nil {
		qb.logger.Error("Query construction error", zap.Error(err))
		return nil, err
	}
	return qb.Execute(ctx, intent)
}
