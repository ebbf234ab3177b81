package repositories

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"
)

const emptySearchResponse = `{"took":2,"hits":{"total":{"value":0},"hits":[]}}`

// fakeEsTransport intercepts client requests, recording every request body
// and answering with a canned response.
type fakeEsTransport struct {
	requests [][]byte
	status   int
	body     string
	err      error
}

func (ft *fakeEsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil {
		payload, _ := io.ReadAll(req.Body)
		req.Body.Close()
		ft.requests = append(ft.requests, payload)
	}

	if ft.err != nil {
		return nil, ft.err
	}

	status := ft.status
	if status == 0 {
		status = http.StatusOK
	}

	header := http.Header{}
	header.Set("X-Elastic-Product", "Elasticsearch")
	header.Set("Content-Type", "application/json")

	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(ft.body)),
	}, nil
}

func newTestQueries(t *testing.T, ft *fakeEsTransport) *FlightQueries {
	t.Helper()
	if ft.body == "" {
		ft.body = emptySearchResponse
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{Transport: ft})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	builder := NewQueryBuilder(client, "kibana_sample_data_flights", zap.NewNop())
	return NewFlightQueries(builder)
}

func TestFilterByCarrier_RequestDocument(t *testing.T) {
	ft := &fakeEsTransport{}
	queries := newTestQueries(t, ft)

	if _, err := queries.FilterByCarrier(context.Background(), "ES-Air", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := `{"query":{"term":{"Carrier":"ES-Air"}},"size":5}`
	if got := string(ft.requests[0]); got != expected {
		t.Fatalf("unexpected request document:\ngot  %s\nwant %s", got, expected)
	}
}

func TestAvgPricePerCarrier_RequestDocument(t *testing.T) {
	ft := &fakeEsTransport{}
	queries := newTestQueries(t, ft)

	if _, err := queries.AvgPricePerCarrier(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := `{"aggs":{"terms_on_Carrier":{"aggs":{"avg_value":{"avg":{"field":"AvgTicketPrice"}}},"terms":{"field":"Carrier"}}},"size":0}`
	if got := string(ft.requests[0]); got != expected {
		t.Fatalf("unexpected request document:\ngot  %s\nwant %s", got, expected)
	}
}

func TestFilterByPriceRange_RequestDocument(t *testing.T) {
	ft := &fakeEsTransport{}
	queries := newTestQueries(t, ft)

	if _, err := queries.FilterByPriceRange(context.Background(), 200, 400, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := `{"query":{"range":{"AvgTicketPrice":{"gte":200,"lte":400}}},"size":5}`
	if got := string(ft.requests[0]); got != expected {
		t.Fatalf("unexpected request document:\ngot  %s\nwant %s", got, expected)
	}
}

func TestDelayedFlightAnalysis_RequestDocument(t *testing.T) {
	ft := &fakeEsTransport{}
	queries := newTestQueries(t, ft)

	if _, err := queries.DelayedFlightAnalysis(context.Background(), 40); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := `{"aggs":{"avg_on_FlightDelayMin":{"avg":{"field":"FlightDelayMin"}}},"query":{"range":{"FlightDelayMin":{"gte":40}}},"size":0}`
	if got := string(ft.requests[0]); got != expected {
		t.Fatalf("unexpected request document:\ngot  %s\nwant %s", got, expected)
	}
}

func TestExcludeCancelledWithDelay_RequestDocument(t *testing.T) {
	ft := &fakeEsTransport{}
	queries := newTestQueries(t, ft)

	if _, err := queries.ExcludeCancelledWithDelay(context.Background(), 30, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := `{"query":{"bool":{"filter":[{"range":{"FlightDelayMin":{"gt":30}}}],"must_not":[{"term":{"Cancelled":true}}]}},"size":5}`
	if got := string(ft.requests[0]); got != expected {
		t.Fatalf("unexpected request document:\ngot  %s\nwant %s", got, expected)
	}
}

func TestCatalog_IdenticalCallsProduceIdenticalDocuments(t *testing.T) {
	ft := &fakeEsTransport{}
	queries := newTestQueries(t, ft)

	for i := 0; i < 2; i++ {
		if _, err := queries.WeatherConditions(context.Background(), "Thunder & Lightning", 7); err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
	}

	if len(ft.requests) != 2 {
		t.Fatalf("expected 2 captured requests, got %d", len(ft.requests))
	}
	if !bytes.Equal(ft.requests[0], ft.requests[1]) {
		t.Fatalf("request documents differ:\nfirst  %s\nsecond %s", ft.requests[0], ft.requests[1])
	}
}

func TestExecute_ParsesResponse(t *testing.T) {
	ft := &fakeEsTransport{
		body: `{"took":12,"hits":{"total":{"value":1},"hits":[{"_source":{"Carrier":"ES-Air"}}]},"aggregations":{"terms_on_Carrier":{"buckets":[]}}}`,
	}
	queries := newTestQueries(t, ft)

	envelope, err := queries.GetAllFlights(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if envelope.TotalHits != 1 {
		t.Fatalf("expected total_hits 1, got %d", envelope.TotalHits)
	}
	if envelope.TookMs != 12 {
		t.Fatalf("expected took_ms 12, got %d", envelope.TookMs)
	}
	if envelope.Hits[0]["Carrier"] != "ES-Air" {
		t.Fatalf("unexpected hit source: %v", envelope.Hits[0])
	}
	if envelope.Aggregations == nil {
		t.Fatal("expected aggregations to be kept")
	}
}

func TestExecute_BackendErrorBecomesValue(t *testing.T) {
	ft := &fakeEsTransport{
		status: http.StatusInternalServerError,
		body:   `{"error":{"reason":"shard failure"}}`,
	}
	queries := newTestQueries(t, ft)

	envelope, err := queries.GetAllFlights(context.Background(), 10)
	if err == nil {
		t.Fatal("expected an error for a failing backend")
	}
	if envelope != nil {
		t.Fatalf("expected no envelope, got %+v", envelope)
	}
}

func TestExecuteRaw_UnsupportedKind(t *testing.T) {
	ft := &fakeEsTransport{}
	client, err := elasticsearch.NewClient(elasticsearch.Config{Transport: ft})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	builder := NewQueryBuilder(client, "kibana_sample_data_flights", zap.NewNop())

	_, err = builder.ExecuteRaw(context.Background(), "nonexistent", nil)
	if !errors.Is(err, ErrUnsupportedQueryKind) {
		t.Fatalf("expected ErrUnsupportedQueryKind, got %v", err)
	}
	if len(ft.requests) != 0 {
		t.Fatalf("no request should reach the backend, captured %d", len(ft.requests))
	}
}
