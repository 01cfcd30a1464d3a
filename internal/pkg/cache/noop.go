package cache

import (
	"context"
	"time"
)

// Noop 关闭缓存时的占位实现，读永远未命中，写直接丢弃
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (Noop) Get(_ context.Context, _ string) ([]byte, bool) {
	return nil, false
}

func (Noop) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}

func (Noop) Delete(_ context.Context, _ string) error {
	return nil
}

func (Noop) Clear(_ context.Context) error {
	return nil
}
