// Модели HTTP API. Поля совпадают с ответами /v1/cycles и /v1/roi.
package rest

type CycleResult struct {
	TraceID        string `json:"traceId"`
	StartedAt      string `json:"startedAt"`
	DurationMs     int64  `json:"durationMs"`
	Events         int    `json:"events"`
	Candidates     int    `json:"candidates"`
	Best           int    `json:"best"`
	Quick          int    `json:"quick"`
	Long           int    `json:"long"`
	Value          int    `json:"value"`
	NotifyFailures int    `json:"notifyFailures"`
	Persisted      int    `json:"persisted"`
	SourceFailed   bool   `json:"sourceFailed"`
}

type ROIReport struct {
	// Category best, quick, long или all
	Category string `json:"category"`

	// ROI ожидаемая доходность в процентах
	ROI float64 `json:"roi"`

	// Bets число строк журнала, попавших в расчёт
	Bets int `json:"bets"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке
	Message string `json:"message"`

	// SupportID trace id запроса
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
