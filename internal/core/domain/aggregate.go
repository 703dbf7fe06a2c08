package domain

import "encoding/json"

// EmptyResultDocument is stored when a result cannot be encoded.
const EmptyResultDocument = "{}"

var marshalResult = json.MarshalIndent

// AggregatedResult holds per-category counts keyed by food name.
type AggregatedResult struct {
	Liked    map[string]int `json:"happyFoods"`
	Disliked map[string]int `json:"sadFoods"`
	Neutral  map[string]int `json:"neutralFoods"`
}

// Aggregate tallies how often each food name was picked in each category.
// Items sharing a name are counted together.
func Aggregate(responses []PollResponse) AggregatedResult {
	result := AggregatedResult{
		Liked:    make(map[string]int),
		Disliked: make(map[string]int),
		Neutral:  make(map[string]int),
	}

	for _, response := range responses {
		for _, food := range response.Liked {
			result.Liked[food.Name]++
		}
		for _, food := range response.Disliked {
			result.Disliked[food.Name]++
		}
		for _, food := range response.Neutral {
			result.Neutral[food.Name]++
		}
	}

	return result
}

// Encode renders the result as an indented JSON document. On an encoding
// error it falls back to EmptyResultDocument instead of failing the closure.
func (r AggregatedResult) Encode() string {
	b, err := marshalResult(r, "", "  ")
	if err != nil {
		return EmptyResultDocument
	}
	return string(b)
}

// DecodeAggregatedResult parses a stored result document. Missing categories
// decode as empty maps, so EmptyResultDocument yields an empty result.
func DecodeAggregatedResult(doc string) (AggregatedResult, error) {
	var r AggregatedResult
	if err := json.Unmarshal([]byte(doc), &r); err != nil {
		return AggregatedResult{}, err
	}
	if r.Liked == nil {
		r.Liked = make(map[string]int)
	}
	if r.Disliked == nil {
		r.Disliked = make(map[string]int)
	}
	if r.Neutral == nil {
		r.Neutral = make(map[string]int)
	}
	return r, nil
}
