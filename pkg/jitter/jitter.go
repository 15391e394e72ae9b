// Package jitter предоставляет утилиты для добавления случайности в интервалы отступления (backoff)
// и простой цикл повторов поверх них.
package jitter

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter задаёт стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMutex  sync.Mutex
)

// Duration возвращает продолжительность с применённым джиттером.
// Результат находится в диапазоне [d, d*(1+jitterFactor)].
func Duration(d time.Duration, jitterFactor float64) time.Duration {
	randMutex.Lock()
	jitter := globalRand.Float64() * jitterFactor * float64(d)
	randMutex.Unlock()
	return d + time.Duration(jitter)
}

// ExponentialBackoff вычисляет экспоненциальное отступление с джиттером.
// attempt нумеруется с нуля, результат без джиттера не превышает max.
func ExponentialBackoff(base, max time.Duration, attempt int, jitterFactor float64) time.Duration {
	backoff := base
	for i := 0; i < attempt; i++ {
		backoff *= 2
		if backoff > max {
			backoff = max
			break
		}
	}
	return Duration(backoff, jitterFactor)
}

// Policy описывает параметры повторов.
type Policy struct {
	Attempts int
	Base     time.Duration
	Max      time.Duration
}

// Retry вызывает fn до Attempts раз, выдерживая экспоненциальную паузу между попытками.
// Возвращает последнюю ошибку fn либо ошибку контекста, если он отменён во время паузы.
// onRetry (может быть nil) вызывается перед каждой паузой.
func Retry(ctx context.Context, p Policy, fn func(ctx context.Context) error, onRetry func(attempt int, wait time.Duration, err error)) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}

		if attempt == attempts-1 {
			break
		}

		wait := ExponentialBackoff(p.Base, p.Max, attempt, DefaultJitter)
		if onRetry != nil {
			onRetry(attempt+1, wait, err)
		}

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return err
}
