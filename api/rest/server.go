package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/ringbuffer/internal/store"
	"github.com/hedisam/ringbuffer/ringbuffer"
)

const (
	// InvalidNameMessage is returned when users make a request with an invalid buffer name.
	InvalidNameMessage = "Invalid buffer name. Expected 1 to 64 characters out of letters, digits, '.', '_' and '-'. Example: orders-eu.1"
	// InvalidEndMessage is returned when the end path segment is neither front nor back.
	InvalidEndMessage = "Invalid buffer end. Expected either 'front' or 'back'"
)

var validName = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

type BufferStore interface {
	Create(ctx context.Context, name string, capacity int) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]store.BufferStats, error)
	Stats(ctx context.Context, name string) (store.BufferStats, error)
	Push(ctx context.Context, name string, end store.End, items []json.RawMessage) error
	Pop(ctx context.Context, name string, end store.End, k int) ([]json.RawMessage, error)
	Peek(ctx context.Context, name string, end store.End, k int) ([]json.RawMessage, error)
	At(ctx context.Context, name string, index int) (json.RawMessage, bool, error)
	Items(ctx context.Context, name string, reversed bool) ([]json.RawMessage, error)
}

type Server struct {
	logger      *logrus.Logger
	bufferStore BufferStore
}

func NewServer(logger *logrus.Logger, bufferStore BufferStore) *Server {
	return &Server{
		logger:      logger,
		bufferStore: bufferStore,
	}
}

// Register adds every buffer endpoint to mux.
func (s *Server) Register(mux *http.ServeMux) {
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/buffers/{$}", s.ListBuffers)
	RegisterFunc(s.logger, mux, http.MethodPut, "/api/v1/buffers/{name}", s.CreateBuffer)
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/buffers/{name}", s.GetBuffer)
	RegisterFunc(s.logger, mux, http.MethodDelete, "/api/v1/buffers/{name}", s.DeleteBuffer)
	RegisterFunc(s.logger, mux, http.MethodPost, "/api/v1/buffers/{name}/{end}", s.PushItems)
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/buffers/{name}/{end}", s.PeekItems)
	RegisterFunc(s.logger, mux, http.MethodDelete, "/api/v1/buffers/{name}/{end}", s.PopItems)
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/buffers/{name}/at/{index}", s.GetItem)
}

func (s *Server) CreateBuffer(ctx context.Context, req *CreateBufferRequest) (*CreateBufferResponse, error) {
	logger := s.logger.WithContext(ctx).WithFields(logrus.Fields{
		"name":     req.Name,
		"capacity": req.Capacity,
	})

	name, valid := validateName(req.Name)
	if !valid {
		logger.Warn("Invalid buffer name provided to create")
		return nil, NewErrf(http.StatusBadRequest, InvalidNameMessage)
	}

	err := s.bufferStore.Create(ctx, name, req.Capacity)
	if err != nil {
		return nil, s.storeErr(logger, err, "create buffer")
	}

	return &CreateBufferResponse{
		Buffer: store.BufferStats{Name: name, Capacity: req.Capacity},
	}, nil
}

func (s *Server) DeleteBuffer(ctx context.Context, req *DeleteBufferRequest) (*DeleteBufferResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("name", req.Name)

	name, valid := validateName(req.Name)
	if !valid {
		logger.Warn("Invalid buffer name provided to delete")
		return nil, NewErrf(http.StatusBadRequest, InvalidNameMessage)
	}

	err := s.bufferStore.Delete(ctx, name)
	if err != nil {
		return nil, s.storeErr(logger, err, "delete buffer")
	}

	return &DeleteBufferResponse{
		Ok: true,
	}, nil
}

func (s *Server) ListBuffers(ctx context.Context, _ *ListBuffersRequest) (*ListBuffersResponse, error) {
	logger := s.logger.WithContext(ctx)

	buffers, err := s.bufferStore.List(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to list buffers from store")
		return nil, NewErrf(http.StatusInternalServerError, "Could not list buffers")
	}

	return &ListBuffersResponse{
		Buffers: buffers,
	}, nil
}

func (s *Server) GetBuffer(ctx context.Context, req *GetBufferRequest) (*GetBufferResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("name", req.Name)

	name, valid := validateName(req.Name)
	if !valid {
		logger.Warn("Invalid buffer name provided to get")
		return nil, NewErrf(http.StatusBadRequest, InvalidNameMessage)
	}

	stats, err := s.bufferStore.Stats(ctx, name)
	if err != nil {
		return nil, s.storeErr(logger, err, "get buffer stats")
	}

	items, err := s.bufferStore.Items(ctx, name, req.Reversed)
	if err != nil {
		return nil, s.storeErr(logger, err, "list buffer items")
	}

	return &GetBufferResponse{
		Buffer: stats,
		Items:  items,
	}, nil
}

func (s *Server) PushItems(ctx context.Context, req *PushItemsRequest) (*PushItemsResponse, error) {
	logger := s.logger.WithContext(ctx).WithFields(logrus.Fields{
		"name":  req.Name,
		"end":   req.End,
		"items": len(req.Items),
	})

	name, end, apiErr := validateNameAndEnd(req.Name, req.End)
	if apiErr != nil {
		logger.Warn("Invalid push request")
		return nil, apiErr
	}
	if len(req.Items) == 0 {
		logger.Warn("No items provided to push")
		return nil, NewErrf(http.StatusBadRequest, "Missing required field: 'items'")
	}

	err := s.bufferStore.Push(ctx, name, end, req.Items)
	if err != nil {
		return nil, s.storeErr(logger, err, "push items")
	}

	stats, err := s.bufferStore.Stats(ctx, name)
	if err != nil {
		return nil, s.storeErr(logger, err, "get buffer stats")
	}

	return &PushItemsResponse{
		Buffer: stats,
	}, nil
}

func (s *Server) PopItems(ctx context.Context, req *ItemsRequest) (*ItemsResponse, error) {
	return s.items(ctx, req, "pop items", s.bufferStore.Pop)
}

func (s *Server) PeekItems(ctx context.Context, req *ItemsRequest) (*ItemsResponse, error) {
	return s.items(ctx, req, "peek items", s.bufferStore.Peek)
}

func (s *Server) items(
	ctx context.Context,
	req *ItemsRequest,
	action string,
	op func(ctx context.Context, name string, end store.End, k int) ([]json.RawMessage, error),
) (*ItemsResponse, error) {
	logger := s.logger.WithContext(ctx).WithFields(logrus.Fields{
		"name":   req.Name,
		"end":    req.End,
		"action": action,
	})

	name, end, apiErr := validateNameAndEnd(req.Name, req.End)
	if apiErr != nil {
		logger.Warn("Invalid items request")
		return nil, apiErr
	}

	count := 1
	if req.Count != nil {
		count = *req.Count
	}
	if count < 0 {
		logger.WithField("count", count).Warn("Negative count requested")
		return nil, NewErrf(http.StatusBadRequest, "Invalid value for 'count': cannot be negative")
	}

	items, err := op(ctx, name, end, count)
	if err != nil {
		return nil, s.storeErr(logger, err, action)
	}

	return &ItemsResponse{
		Items: items,
	}, nil
}

func (s *Server) GetItem(ctx context.Context, req *GetItemRequest) (*GetItemResponse, error) {
	logger := s.logger.WithContext(ctx).WithFields(logrus.Fields{
		"name":  req.Name,
		"index": req.Index,
	})

	name, valid := validateName(req.Name)
	if !valid {
		logger.Warn("Invalid buffer name provided to get item")
		return nil, NewErrf(http.StatusBadRequest, InvalidNameMessage)
	}

	item, ok, err := s.bufferStore.At(ctx, name, req.Index)
	if err != nil {
		return nil, s.storeErr(logger, err, "get item")
	}
	if !ok {
		logger.Debug("Requested index is out of range")
		return nil, NewErrf(http.StatusNotFound, "No item at index %d", req.Index)
	}

	return &GetItemResponse{
		Index: req.Index,
		Item:  item,
	}, nil
}

// storeErr maps store and ring buffer failures onto API errors.
func (s *Server) storeErr(logger *logrus.Entry, err error, action string) *Err {
	logger = logger.WithError(err)
	switch {
	case errors.Is(err, store.ErrNotFound):
		logger.Warn("Buffer not found")
		return NewErrf(http.StatusNotFound, "Buffer not found")
	case errors.Is(err, store.ErrAlreadyExists):
		logger.Warn("Buffer already exists")
		return NewErrf(http.StatusConflict, "Buffer already exists")
	case errors.Is(err, store.ErrInvalidCapacity):
		logger.Warn("Invalid buffer capacity")
		return NewErrf(http.StatusBadRequest, "Invalid value for 'capacity': %s", err.Error())
	case errors.Is(err, store.ErrInvalidEnd):
		logger.Warn("Invalid buffer end")
		return NewErrf(http.StatusBadRequest, InvalidEndMessage)
	case errors.Is(err, ringbuffer.ErrFull):
		logger.Warn("Buffer has no room for the pushed items")
		return NewErrf(http.StatusConflict, "Buffer is full: %s", err.Error())
	case errors.Is(err, ringbuffer.ErrEmpty), errors.Is(err, ringbuffer.ErrInsufficientItems):
		logger.Warn("Buffer holds fewer items than requested")
		return NewErrf(http.StatusConflict, "Not enough items: %s", err.Error())
	default:
		logger.Errorf("Failed to %s", action)
		return NewErrf(http.StatusInternalServerError, "Could not %s", action)
	}
}

func validateName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if !validName.MatchString(name) {
		return "", false
	}
	return name, true
}

func validateNameAndEnd(rawName, rawEnd string) (string, store.End, *Err) {
	name, valid := validateName(rawName)
	if !valid {
		return "", "", NewErrf(http.StatusBadRequest, InvalidNameMessage)
	}

	end := store.End(strings.ToLower(strings.TrimSpace(rawEnd)))
	if !end.Valid() {
		return "", "", NewErrf(http.StatusBadRequest, InvalidEndMessage)
	}

	return name, end, nil
}
