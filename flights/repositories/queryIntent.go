package repositories

import (
	"errors"
	"fmt"
)

// QueryKind enumerates the supported query intents. Unknown kinds cannot be
// constructed from Go code; they only arise when ParseQueryKind rejects an
// external name.
type QueryKind int

const (
	MatchAllQuery QueryKind = iota
	TermQuery
	MatchQuery
	RangeQuery
	BoolQuery
	AggregateQuery
	SortQuery
)

const defaultSize = 10

// ErrUnsupportedQueryKind is returned when an external kind name does not
// resolve to a known intent.
var ErrUnsupportedQueryKind = errors.New("unsupported query type")

type TermParams struct {
	Field string
	Value interface{}
}

type MatchParams struct {
	Field string
	Value interface{}
}

// RangeParams carries inclusive (GTE/LTE) and exclusive (GT) bounds. A nil
// bound is absent: it never serializes as null.
type RangeParams struct {
	Field string
	GTE   interface{}
	LTE   interface{}
	GT    interface{}
}

// BoolParams composes sub-clauses. A nil list is omitted from the request; a
// non-nil empty list serializes as [].
type BoolParams struct {
	Must    []map[string]interface{}
	MustNot []map[string]interface{}
	Should  []map[string]interface{}
	Filter  []map[string]interface{}
}

// AggregateParams describes a "terms" bucket or "avg" metric aggregation.
// AvgField adds a nested avg_value sub-aggregation under a terms bucket.
// Filter optionally restricts the aggregated documents with a range query.
type AggregateParams struct {
	Type     string
	Field    string
	AvgField string
	Filter   *RangeParams
}

type SortParams struct {
	Field string
	Order string
}

// QueryIntent is a tagged variant: Kind selects which params block is read.
// Size nil means the default of 10; an explicit 0 is valid and used for
// aggregation-only requests.
type QueryIntent struct {
	Kind      QueryKind
	Size      *int
	Term      *TermParams
	Match     *MatchParams
	Range     *RangeParams
	Bool      *BoolParams
	Aggregate *AggregateParams
	Sort      *SortParams
}

// Size returns a pointer for QueryIntent.Size.
func Size(n int) *int {
	return &n
}

// BuildRequest translates an intent into an Elasticsearch request body.
// Builders are pure: identical intents produce identical documents.
func BuildRequest(intent QueryIntent) (map[string]interface{}, error) {
	size := defaultSize
	if intent.Size != nil {
		size = *intent.Size
	}

	body := map[string]interface{}{"size": size}

	switch intent.Kind {
	case MatchAllQuery:
		body["query"] = map[string]interface{}{
			"match_all": map[string]interface{}{},
		}

	case TermQuery:
		if intent.Term == nil || intent.Term.Field == "" || intent.Term.Value == nil {
			return nil, fmt.Errorf("term query requires a field and a value")
		}
		body["query"] = map[string]interface{}{
			"term": map[string]interface{}{
				intent.Term.Field: intent.Term.Value,
			},
		}

	case MatchQuery:
		if intent.Match == nil || intent.Match.Field == "" || intent.Match.Value == nil {
			return nil, fmt.Errorf("match query requires a field and a value")
		}
		body["query"] = map[string]interface{}{
			"match": map[string]interface{}{
				intent.Match.Field: intent.Match.Value,
			},
		}

	case RangeQuery:
		if intent.Range == nil || intent.Range.Field == "" {
			return nil, fmt.Errorf("range query requires a field")
		}
		body["query"] = map[string]interface{}{
			"range": map[string]interface{}{
				intent.Range.Field: rangeBounds(intent.Range),
			},
		}

	case BoolQuery:
		if intent.Bool == nil {
			return nil, fmt.Errorf("bool query requires clause lists")
		}
		clauses := map[string]interface{}{}
		if intent.Bool.Must != nil {
			clauses["must"] = intent.Bool.Must
		}
		if intent.Bool.MustNot != nil {
			clauses["must_not"] = intent.Bool.MustNot
		}
		if intent.Bool.Should != nil {
			clauses["should"] = intent.Bool.Should
		}
		if intent.Bool.Filter != nil {
			clauses["filter"] = intent.Bool.Filter
		}
		body["query"] = map[string]interface{}{"bool": clauses}

	case AggregateQuery:
		if intent.Aggregate == nil || intent.Aggregate.Field == "" {
			return nil, fmt.Errorf("aggregation requires a type and a field")
		}
		agg := map[string]interface{}{}
		switch intent.Aggregate.Type {
		case "terms":
			agg["terms"] = map[string]interface{}{
				"field": intent.Aggregate.Field,
			}
			if intent.Aggregate.AvgField != "" {
				agg["aggs"] = map[string]interface{}{
					"avg_value": map[string]interface{}{
						"avg": map[string]interface{}{
							"field": intent.Aggregate.AvgField,
						},
					},
				}
			}
		case "avg":
			agg["avg"] = map[string]interface{}{
				"field": intent.Aggregate.Field,
			}
		default:
			return nil, fmt.Errorf("unsupported aggregation type: %q", intent.Aggregate.Type)
		}
		body["aggs"] = map[string]interface{}{
			fmt.Sprintf("%s_on_%s", intent.Aggregate.Type, intent.Aggregate.Field): agg,
		}
		if intent.Aggregate.Filter != nil {
			body["query"] = map[string]interface{}{
				"range": map[string]interface{}{
					intent.Aggregate.Filter.Field: rangeBounds(intent.Aggregate.Filter),
				},
			}
		}

	case SortQuery:
		if intent.Sort == nil || intent.Sort.Field == "" {
			return nil, fmt.Errorf("sort query requires a field")
		}
		order := intent.Sort.Order
		if order == "" {
			order = "desc"
		}
		body["sort"] = []interface{}{
			map[string]interface{}{
				intent.Sort.Field: map[string]interface{}{"order": order},
			},
		}

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedQueryKind, intent.Kind)
	}

	return body, nil
}

func rangeBounds(p *RangeParams) map[string]interface{} {
	bounds := map[string]interface{}{}
	if p.GTE != nil {
		bounds["gte"] = p.GTE
	}
	if p.LTE != nil {
		bounds["lte"] = p.LTE
	}
	if p.GT != nil {
		bounds["gt"] = p.GT
	}
	return bounds
}
