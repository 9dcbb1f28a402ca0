package services

import "errors"

// Ошибки сервисного слоя, которые маппятся в HTTP-ответы.
var (
	// Источник данных недоступен (снимок не удалось получить)
	ErrSourceUnavailable = errors.New("tournament data source is unavailable")
	// Данные источника не удалось разобрать
	ErrMalformedData = errors.New("tournament data is malformed")
)
