package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"crawl-server/models/places"
	"crawl-server/models/routes"
)

// ReadSearchTextResponseFromJSON loads a SearchTextResponse from JSON on disk.
func ReadSearchTextResponseFromJSON(filePath string) (*places.SearchTextResponse, error) {
	var resp places.SearchTextResponse
	if err := readJSON(filePath, &resp); err != nil {
		return nil, fmt.Errorf("failed to load SearchTextResponse: %w", err)
	}
	return &resp, nil
}

// ReadPlaceFromJSON loads a single RawPlace from JSON on disk.
func ReadPlaceFromJSON(filePath string) (*places.RawPlace, error) {
	var p places.RawPlace
	if err := readJSON(filePath, &p); err != nil {
		return nil, fmt.Errorf("failed to load RawPlace: %w", err)
	}
	return &p, nil
}

// ReadComputeRoutesResponseFromJSON loads a ComputeRoutesResponse from JSON on disk.
func ReadComputeRoutesResponseFromJSON(filePath string) (*routes.ComputeRoutesResponse, error) {
	var resp routes.ComputeRoutesResponse
	if err := readJSON(filePath, &resp); err != nil {
		return nil, fmt.Errorf("failed to load ComputeRoutesResponse: %w", err)
	}
	return &resp, nil
}

// ReadRawJSON loads a JSON document without decoding it.
func ReadRawJSON(filePath string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := readJSON(filePath, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func readJSON(filePath string, dst interface{}) error {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to unmarshal %q: %w", filePath, err)
	}
	return nil
}
