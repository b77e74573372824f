package dto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

// Page size bounds for cursor-paginated lists.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

var (
	// ErrInvalidCursor is returned when a cursor cannot be decoded.
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrNoCursor marks a first-page request. It is not a failure.
	ErrNoCursor = errors.New("no cursor provided")
)

// PaginationRequest is bound from ?cursor=&limit=.
type PaginationRequest struct {
	// Cursor is the NextCursor of the previous page.
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit"  validate:"omitempty,gte=1,lte=100"`
}

// GetLimit returns Limit clamped to [1, MaxLimit], DefaultLimit when unset.
func (p *PaginationRequest) GetLimit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}

	return min(p.Limit, MaxLimit)
}

// DecodeCursor returns ErrNoCursor on a first-page request.
func (p *PaginationRequest) DecodeCursor() (*CursorData, error) {
	return DecodeCursor(p.Cursor)
}

// PaginatedResponse is one page of a list.
type PaginatedResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
	HasMore    bool   `json:"hasMore"`
}

// NewPaginatedResponse trims items to limit. Callers fetch limit+1 items so
// that the extra one signals another page; the cursor then points at the
// last item kept.
func NewPaginatedResponse[T any](items []T, limit int, cursorBuilder func(T) *CursorData) *PaginatedResponse[T] {
	hasMore := len(items) > limit
	if hasMore {
		items = items[:limit]
	}

	if items == nil {
		items = []T{}
	}

	resp := &PaginatedResponse[T]{Items: items, HasMore: hasMore}

	if hasMore && len(items) > 0 && cursorBuilder != nil {
		resp.NextCursor = EncodeCursor(cursorBuilder(items[len(items)-1]))
	}

	return resp
}

// CursorData is the position a cursor encodes: the sort field, its value at
// the last item, and that item's id for ties.
type CursorData struct {
	Field string `json:"f"`
	Value string `json:"v"`
	ID    string `json:"id"`
}

// NewCursor creates cursor data.
func NewCursor(field, value, id string) *CursorData {
	return &CursorData{Field: field, Value: value, ID: id}
}

// EncodeCursor returns the URL-safe base64 JSON form of data, "" for nil.
func EncodeCursor(data *CursorData) string {
	if data == nil {
		return ""
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return ""
	}

	return base64.URLEncoding.EncodeToString(raw)
}

// DecodeCursor reverses EncodeCursor. Empty input is ErrNoCursor.
func DecodeCursor(encoded string) (*CursorData, error) {
	if encoded == "" {
		return nil, ErrNoCursor
	}

	raw, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var data CursorData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, ErrInvalidCursor
	}

	return &data, nil
}
