package reservation

import (
	"context"
	"sync"
)

var _ eventPublisher = &eventPublisherMock{}

type eventPublisherMock struct {
	PublishJSONFunc func(ctx context.Context, key string, v any) error

	calls struct {
		PublishJSON []struct {
			Ctx context.Context
			Key string
			V   any
		}
	}
	lockPublishJSON sync.RWMutex
}

func (mock *eventPublisherMock) PublishJSON(ctx context.Context, key string, v any) error {
	if mock.PublishJSONFunc == nil {
		panic("eventPublisherMock.PublishJSONFunc: method is nil but eventPublisher.PublishJSON was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
		V   any
	}{Ctx: ctx, Key: key, V: v}
	mock.lockPublishJSON.Lock()
	mock.calls.PublishJSON = append(mock.calls.PublishJSON, callInfo)
	mock.lockPublishJSON.Unlock()
	return mock.PublishJSONFunc(ctx, key, v)
}

func (mock *eventPublisherMock) PublishJSONCalls() []struct {
	Ctx context.Context
	Key string
	V   any
} {
	mock.lockPublishJSON.RLock()
	calls := mock.calls.PublishJSON
	mock.lockPublishJSON.RUnlock()
	return calls
}
