package rmi

import (
	"github.com/BigDataAnalyticsGroup/rmi-go/bound"
	"github.com/BigDataAnalyticsGroup/rmi-go/shared"
	"github.com/BigDataAnalyticsGroup/rmi-go/submodel"
)

// Config is the Rmi's configuration surface (spec.md §6): which submodel
// kind trains layer 1, which trains layer 2, how many layer-2 buckets, and
// which error-bound mode stores residuals. Mirrors the reference's
// compile-time template parameters as runtime values, per spec.md §9.
type Config struct {
	Layer1Kind submodel.Kind
	Layer2Kind submodel.Kind
	Layer2Size int
	BoundMode  bound.Mode
}

// Option mutates a Config being built by NewConfig.
type Option func(*Config)

// DefaultConfig matches the reference's most common configuration: linear
// spline at both layers, LABS bounds, shared.DefaultLayer2Size buckets.
func DefaultConfig() Config {
	return Config{
		Layer1Kind: submodel.LinearSplineKind,
		Layer2Kind: submodel.LinearSplineKind,
		Layer2Size: shared.DefaultLayer2Size,
		BoundMode:  bound.LABS,
	}
}

// NewConfig applies opts over DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func WithLayer1Kind(kind submodel.Kind) Option {
	return func(c *Config) { c.Layer1Kind = kind }
}

func WithLayer2Kind(kind submodel.Kind) Option {
	return func(c *Config) { c.Layer2Kind = kind }
}

func WithLayer2Size(size int) Option {
	return func(c *Config) { c.Layer2Size = size }
}

func WithBoundMode(mode bound.Mode) Option {
	return func(c *Config) { c.BoundMode = mode }
}
