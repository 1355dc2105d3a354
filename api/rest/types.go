package rest

import (
	"encoding/json"

	"github.com/hedisam/ringbuffer/internal/store"
)

// request and response types are defined below
// path and query tagged fields are bound by RegisterFunc, the rest is decoded from the json body

type CreateBufferRequest struct {
	Name     string `json:"-" path:"name"`
	Capacity int    `json:"capacity"`
}

type CreateBufferResponse struct {
	Buffer store.BufferStats `json:"buffer"`
}

type DeleteBufferRequest struct {
	Name string `json:"-" path:"name"`
}

type DeleteBufferResponse struct {
	Ok bool `json:"ok"`
}

type ListBuffersRequest struct{}

type ListBuffersResponse struct {
	Buffers []store.BufferStats `json:"buffers"`
}

type GetBufferRequest struct {
	Name     string `json:"-" path:"name"`
	Reversed bool   `json:"-" query:"reversed"`
}

type GetBufferResponse struct {
	Buffer store.BufferStats `json:"buffer"`
	Items  []json.RawMessage `json:"items"`
}

type PushItemsRequest struct {
	Name  string            `json:"-" path:"name"`
	End   string            `json:"-" path:"end"`
	Items []json.RawMessage `json:"items"`
}

type PushItemsResponse struct {
	Buffer store.BufferStats `json:"buffer"`
}

// ItemsRequest is shared by the pop and peek endpoints. Count defaults to 1.
type ItemsRequest struct {
	Name  string `json:"-" path:"name"`
	End   string `json:"-" path:"end"`
	Count *int   `json:"-" query:"count"`
}

type ItemsResponse struct {
	Items []json.RawMessage `json:"items"`
}

type GetItemRequest struct {
	Name  string `json:"-" path:"name"`
	Index int    `json:"-" path:"index"`
}

type GetItemResponse struct {
	Index int             `json:"index"`
	Item  json.RawMessage `json:"item"`
}
