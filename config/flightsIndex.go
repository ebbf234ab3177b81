package config

import (
	"context"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"
)

// FlightsIndexName is the index every flight query runs against.
const FlightsIndexName = "kibana_sample_data_flights"

const flightsIndexMapping = `{
	"mappings": {
		"properties": {
			"FlightNum": {"type": "keyword"},
			"DestCountry": {"type": "keyword"},
			"OriginWeather": {"type": "keyword"},
			"OriginCityName": {"type": "keyword"},
			"AvgTicketPrice": {"type": "float"},
			"DistanceMiles": {"type": "float"},
			"FlightDelay": {"type": "boolean"},
			"DestWeather": {"type": "keyword"},
			"Dest": {"type": "keyword"},
			"FlightDelayType": {"type": "keyword"},
			"OriginCountry": {"type": "keyword"},
			"dayOfWeek": {"type": "integer"},
			"DistanceKilometers": {"type": "float"},
			"timestamp": {"type": "date"},
			"DestLocation": {"type": "geo_point"},
			"DestAirportID": {"type": "keyword"},
			"Carrier": {"type": "keyword"},
			"Cancelled": {"type": "boolean"},
			"FlightTimeMin": {"type": "float"},
			"Origin": {"type": "keyword"},
			"OriginLocation": {"type": "geo_point"},
			"DestRegion": {"type": "keyword"},
			"OriginAirportID": {"type": "keyword"},
			"OriginRegion": {"type": "keyword"},
			"DestCityName": {"type": "keyword"},
			"FlightTimeHour": {"type": "float"},
			"FlightDelayMin": {"type": "integer"}
		}
	}
}`

// EnsureFlightsIndex creates the flights index with its field mapping unless
// it already exists. Runs once at startup, before any query is accepted.
func EnsureFlightsIndex(ctx context.Context, client *elasticsearch.Client) {
	existsReq := esapi.IndicesExistsRequest{
		Index: []string{FlightsIndexName},
	}

	res, err := existsReq.Do(ctx, client)
	if err != nil {
		Logger.Fatal("Error checking flights index", zap.Error(err))
	}
	defer res.Body.Close()

	if res.StatusCode == 200 {
		Logger.Info("Index already exists", zap.String("index", FlightsIndexName))
		return
	}

	createReq := esapi.IndicesCreateRequest{
		Index: FlightsIndexName,
		Body:  strings.NewReader(flightsIndexMapping),
	}

	createRes, err := createReq.Do(ctx, client)
	if err != nil {
		Logger.Fatal("Error creating index", zap.Error(err))
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		Logger.Fatal("Error creating index", zap.String("status", createRes.Status()))
	}

	Logger.Info("Created index", zap.String("index", FlightsIndexName))
}
