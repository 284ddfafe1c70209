package enrichment

import (
	"context"
	"errors"
	"sync"
	"time"

	"activity-viewer-api/core/domain"
)

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc    func(ctx context.Context, key string) ([]byte, error)
	setFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	deleteFunc func(ctx context.Context, key string) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, errors.New("key not found")
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return nil
}

// fakeCache is a functional in-memory cache for read-through tests
type fakeCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.items[key]
	if !ok {
		return nil, errors.New("key not found")
	}
	return data, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, key)
	return nil
}

// mockUpstream is a mock implementation of the UpstreamClient interface
// with call counters safe for concurrent use
type mockUpstream struct {
	mu             sync.Mutex
	videoCalls     int
	userCalls      int
	videoFunc      func(ctx context.Context, videoID string) (*domain.VideoMetadata, error)
	userFunc       func(ctx context.Context, username string) (*domain.UserMetadata, error)
	feedFunc       func(ctx context.Context, username string) ([]domain.ActivityEntry, error)
	friendFeedFunc func(ctx context.Context) ([]domain.ActivityEntry, error)
}

func (m *mockUpstream) FetchActivityFeed(ctx context.Context, username string) ([]domain.ActivityEntry, error) {
	if m.feedFunc != nil {
		return m.feedFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUpstream) FetchFriendActivityFeed(ctx context.Context) ([]domain.ActivityEntry, error) {
	if m.friendFeedFunc != nil {
		return m.friendFeedFunc(ctx)
	}
	return nil, nil
}

func (m *mockUpstream) FetchVideoMetadata(ctx context.Context, videoID string) (*domain.VideoMetadata, error) {
	m.mu.Lock()
	m.videoCalls++
	m.mu.Unlock()
	if m.videoFunc != nil {
		return m.videoFunc(ctx, videoID)
	}
	return &domain.VideoMetadata{ID: videoID}, nil
}

func (m *mockUpstream) FetchUserMetadata(ctx context.Context, username string) (*domain.UserMetadata, error) {
	m.mu.Lock()
	m.userCalls++
	m.mu.Unlock()
	if m.userFunc != nil {
		return m.userFunc(ctx, username)
	}
	return &domain.UserMetadata{Username: username}, nil
}

func (m *mockUpstream) videoCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.videoCalls
}

func (m *mockUpstream) userCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.userCalls
}

// mockLogger is a no-op logger that records messages
type mockLogger struct {
	mu       sync.Mutex
	messages []string
}

func (m *mockLogger) log(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.log(msg) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.log(msg) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.log(msg) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.log(msg) }
