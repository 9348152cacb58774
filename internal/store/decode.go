package store

import (
	"encoding/json"
	"fmt"
)

// GetOneAs does a point lookup and decodes the document into T. An absent key
// yields (nil, nil).
func GetOneAs[T any](s *Store, collection, key string) (*T, error) {
	raw, err := s.GetOne(collection, key)
	if err != nil || raw == nil {
		return nil, err
	}

	v := new(T)
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, fmt.Errorf("decode %s/%s: %w", collection, key, err)
	}
	return v, nil
}

// GetAllAs scans a collection and decodes every document into T.
func GetAllAs[T any](s *Store, collection string) ([]T, error) {
	raws, err := s.GetAll(collection)
	if err != nil {
		return nil, err
	}
	return decodeAll[T](collection, raws)
}

// FindByFieldAs looks up documents by a top-level field value and decodes
// them into T.
func FindByFieldAs[T any](s *Store, collection, field, value string) ([]T, error) {
	raws, err := s.FindByField(collection, field, value)
	if err != nil {
		return nil, err
	}
	return decodeAll[T](collection, raws)
}

func decodeAll[T any](collection string, raws []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", collection, err)
		}
		out = append(out, v)
	}
	return out, nil
}
