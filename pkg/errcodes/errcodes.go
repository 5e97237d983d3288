package errcodes

// Code is a stable machine-readable error code returned to API clients.
type Code string

func (c Code) String() string {
	return string(c)
}

const (
	InternalServerError Code = "InternalServerError"
	TimeoutExceeded     Code = "TimeoutExceeded"
	Forbidden           Code = "Forbidden"
	ValidationError     Code = "ValidationError"
	NotFound            Code = "NotFound"

	// Цикл сбора ставок
	CycleBusy         Code = "CycleBusy"         // Уже идёт другой цикл
	SourceUnavailable Code = "SourceUnavailable" // Источник коэффициентов недоступен
	InvalidCategory   Code = "InvalidCategory"   // Категория не best/quick/long
	InvalidStrategy   Code = "InvalidStrategy"

	// Хранилище
	StorageUnavailable Code = "StorageUnavailable"
	BetNotFound        Code = "BetNotFound" // Рекомендация выпала из кэша недавних
)
