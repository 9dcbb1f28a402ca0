package storage

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrSourceUnavailable - источник данных не удалось открыть или прочитать.
	ErrSourceUnavailable = errors.New("tournament data source is unavailable")
	// ErrSourceNotFound - объект или файл с данными отсутствует.
	ErrSourceNotFound = errors.New("tournament data not found")
)

// Source отдает сериализованный (JSON) список турниров.
// Вызывающий обязан закрыть полученный ReadCloser.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	// Name используется в логах.
	Name() string
}
