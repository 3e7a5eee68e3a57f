// Package mocks provides no-op tracing for tests.
package mocks

import (
	"context"

	"venuebook/infras/otel"
)

type otelImpl struct{}

func (o *otelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, scopeImpl{}
}

func (o *otelImpl) Shutdown(_ context.Context) error {
	return nil
}

func NewOtel() otel.Otel {
	return &otelImpl{}
}

type scopeImpl struct{}

func (scopeImpl) AddEvent(_ string) {}
func (scopeImpl) End() {}
func (scopeImpl) SetAttribute(_ string, _ any) {}
func (scopeImpl) SetAttributes(_ map[string]any) {}
func (scopeImpl) TraceError(_ error) {}
func (scopeImpl) TraceIfError(_ error) {}
