package env

import (
	"errors"
	"fmt"
)

var ErrNotDefined = errors.New("variable not defined")

type Env[T any] interface {
	Define(string, T)
	Resolve(string) (T, error)
	Walk(func(string, T))
}

type environ[T any] struct {
	parent Env[T]
	values map[string]T
}

func EmptyEnv[T any]() Env[T] {
	return EnclosedEnv[T](nil)
}

func EnclosedEnv[T any](parent Env[T]) Env[T] {
	return &environ[T]{
		parent: parent,
		values: make(map[string]T),
	}
}

// Define binds value under key, overwriting any previous binding. Keys are
// unique: an environment never holds two entries for the same name.
func (e *environ[T]) Define(key string, value T) {
	e.values[key] = value
}

func (e *environ[T]) Resolve(key string) (T, error) {
	v, ok := e.values[key]
	if ok {
		return v, nil
	}
	if e.parent != nil {
		return e.parent.Resolve(key)
	}
	return v, fmt.Errorf("%s: %w", key, ErrNotDefined)
}

// Walk visits every binding visible from this environment, skipping outer
// bindings shadowed by an inner one.
func (e *environ[T]) Walk(fn func(string, T)) {
	for k, v := range e.values {
		fn(k, v)
	}
	if e.parent == nil {
		return
	}
	e.parent.Walk(func(k string, v T) {
		if _, ok := e.values[k]; !ok {
			fn(k, v)
		}
	})
}
