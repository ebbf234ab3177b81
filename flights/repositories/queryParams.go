package repositories

import (
	"fmt"
)

var queryKindNames = map[string]QueryKind{
	"match_all": MatchAllQuery,
	"term":      TermQuery,
	"match":     MatchQuery,
	"range":     RangeQuery,
	"bool":      BoolQuery,
	"aggs":      AggregateQuery,
	"sort":      SortQuery,
}

// ParseQueryKind resolves an external kind name. This is the only place an
// unknown kind can enter the system.
func ParseQueryKind(name string) (QueryKind, error) {
	kind, ok := queryKindNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedQueryKind, name)
	}
	return kind, nil
}

// IntentFromParams resolves a raw (kind, params) pair, as received over
// HTTP, into a typed intent. Parameter values follow the conventions of
// decoded JSON: numbers arrive as float64, clause lists as []interface{}.
func IntentFromParams(name string, params map[string]interface{}) (QueryIntent, error) {
	kind, err := ParseQueryKind(name)
	if err != nil {
		return QueryIntent{}, err
	}

	if params == nil {
		params = map[string]interface{}{}
	}

	intent := QueryIntent{Kind: kind}

	if raw, ok := params["size"]; ok {
		size, err := paramInt(raw)
		if err != nil {
			return QueryIntent{}, fmt.Errorf("size: %w", err)
		}
		intent.Size = Size(size)
	}

	field, _ := params["field"].(string)

	switch kind {
	case MatchAllQuery:
		// No parameters beyond size.

	case TermQuery:
		intent.Term = &TermParams{Field: field, Value: params["value"]}

	case MatchQuery:
		intent.Match = &MatchParams{Field: field, Value: params["value"]}

	case RangeQuery:
		intent.Range = &RangeParams{
			Field: field,
			GTE:   params["gte"],
			LTE:   params["lte"],
			GT:    params["gt"],
		}

	case BoolQuery:
		intent.Bool = &BoolParams{
			Must:    clauseList(params["must"]),
			MustNot: clauseList(params["must_not"]),
			Should:  clauseList(params["should"]),
			Filter:  clauseList(params["filter"]),
		}

	case AggregateQuery:
		aggsType, _ := params["aggs_type"].(string)
		avgField, _ := params["avg_field"].(string)
		intent.Aggregate = &AggregateParams{
			Type:     aggsType,
			Field:    field,
			AvgField: avgField,
		}

	case SortQuery:
		order, _ := params["order"].(string)
		intent.Sort = &SortParams{Field: field, Order: order}
	}

	return intent, nil
}

func paramInt(raw interface{}) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("expected an integer, got %T", raw)
	}
}

// clauseList converts a decoded JSON clause list, keeping the nil/empty
// distinction: nil input stays nil, an empty list stays an empty list.
func clauseList(raw interface{}) []map[string]interface{} {
	items, ok := raw.([]interface{})
	if !ok {
		return nil
	}

	clauses := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if clause, ok := item.(map[string]interface{}); ok {
			clauses = append(clauses, clause)
		}
	}
	return clauses
}
