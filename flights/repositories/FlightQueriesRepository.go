package repositories

import (
	"context"

	"flight-search-backend/flights/models"
)

// FlightQueries exposes the named flight-data queries as fixed field
// bindings over the query builder. No logic lives here beyond parameter
// binding; every method maps onto exactly one intent.
type FlightQueries struct {
	builder *QueryBuilder
}

func NewFlightQueries(builder *QueryBuilder) *FlightQueries {
	return &FlightQueries{builder: builder}
}

func (q *FlightQueries) GetAllFlights(ctx context.Context, size int) (*models.ResultEnvelope, error) {
	return q.builder.Execute(ctx, QueryIntent{
		Kind: MatchAllQuery,
		Size: Size(size),
	})
}

func (q *FlightQueries) FilterByCarrier(ctx context.Context, carrier string, size int) (*models.ResultEnvelope, error) {
	return q.builder.Execute(ctx, QueryIntent{
		Kind: TermQuery,
		Size: Size(size),
		Term: &TermParams{Field: "Carrier", Value: carrier},
	})
}

func (q *FlightQueries) SearchByOriginCity(ctx context.Context, city string, size int) (*models.ResultEnvelope, error) {
	return q.builder.Execute(ctx, QueryIntent{
		Kind:  MatchQuery,
		Size:  Size(size),
		Match: &MatchParams{Field: "OriginCityName", Value: city},
	})
}

func (q *FlightQueries) FilterByPriceRange(ctx context.Context, minPrice, maxPrice float64, size int) (*models.ResultEnvelope, error) {
	return q.builder.Execute(ctx, QueryIntent{
		Kind:  RangeQuery,
		Size:  Size(size),
		Range: &RangeParams{Field: "AvgTicketPrice", GTE: minPrice, LTE: maxPrice},
	})
}

// AvgPricePerCarrier buckets flights by carrier with an average ticket
// price per bucket. Aggregation-only: no document hits are requested.
func (q *FlightQueries) AvgPricePerCarrier(ctx context.Context) (*models.ResultEnvelope, error) {
	return q.builder.Execute(ctx, QueryIntent{
		Kind: AggregateQuery,
		Size: Size(0),
		Aggregate: &AggregateParams{
			Type:     "terms",
			Field:    "Carrier",
			AvgField: "AvgTicketPrice",
		},
	})
}

func (q *FlightQueries) FindLongDistanceFlights(ctx context.Context, minKilometers float64, size int) (*models.ResultEnvelope, error) {
	return q.builder.Execute(ctx, QueryIntent{
		Kind:  RangeQuery,
		Size:  Size(size),
		Range: &RangeParams{Field: "DistanceKilometers", GT: minKilometers},
	})
}

// FlightOnSpecificDate matches the exact timestamp value, e.g.
// "2025-01-06T00:00:00".
func (q *FlightQueries) FlightOnSpecificDate(ctx context.Context, timestamp string, size int) (*models.ResultEnvelope, error) {
	return q.builder.Execute(ctx, QueryIntent{
		Kind: TermQuery,
		Size: Size(size),
		Term: &TermParams{Field: "timestamp", Value: timestamp},
	})
}

func (q *FlightQueries) FlightsWithinDateRange(ctx context.Context, from, to string, size int) (*models.ResultEnvelope, error) {
	return q.builder.Execute(ctx, QueryIntent{
		Kind:  RangeQuery,
		Size:  Size(size),
		Range: &RangeParams{Field: "timestamp", GTE: from, LTE: to},
	})
}

// ExcludeCancelledWithDelay finds flights that were not cancelled but were
// delayed by more than minDelay minutes.
func (q *FlightQueries) ExcludeCancelledWithDelay(ctx context.Context, minDelay, size int) (*models.ResultEnvelope, error) {
	return q.builder.Execute(ctx, QueryIntent{
		Kind: BoolQuery,
		Size: Size(size),
		Bool: &BoolParams{
			MustNot: []map[string]interface{}{
				{"term": map[string]interface{}{"Cancelled": true}},
			},
			Filter: []map[string]interface{}{
				{"range": map[string]interface{}{
					"FlightDelayMin": map[string]interface{}{"gt": minDelay},
				}},
			},
		},
	})
}

// WeatherConditions matches flights where either endpoint reports the given
// weather.
func (q *FlightQueries) WeatherConditions(ctx context.Context, weather string, size int) (*models.ResultEnvelope, error) {
	return q.builder.Execute(ctx, QueryIntent{
		Kind: BoolQuery,
		Size: Size(size),
		Bool: &BoolParams{
			Should: []map[string]interface{}{
				{"match": map[string]interface{}{"OriginWeather": weather}},
				{"match": map[string]interface{}{"DestWeather": weather}},
			},
		},
	})
}

// DelayedFlightAnalysis averages the delay minutes over flights delayed by
// at least minDelay minutes. Aggregation-only.
func (q *FlightQueries) DelayedFlightAnalysis(ctx context.Context, minDelay int) (*models.ResultEnvelope, error) {
	return q.builder.Execute(ctx, QueryIntent{
		Kind: AggregateQuery,
		Size: Size(0),
		Aggregate: &AggregateParams{
			Type:   "avg",
			Field:  "FlightDelayMin",
			Filter: &RangeParams{Field: "FlightDelayMin", GTE: minDelay},
		},
	})
}
