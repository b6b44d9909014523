package constants

type APIStatus string

const (
	APIStatusOk    APIStatus = "success"
	APIStatusError APIStatus = "error"
)

// Search tuning. Deadlines are advisory and checked between detail lookups
// only, so a slow individual lookup can overrun them.
const (
	DefaultSearchLimit = 100

	// Budget for the detail-enrichment phase when only duration filtering is
	// active (no route filters that need details anyway).
	DurationOnlyDeadlineSeconds = 35

	// Budget for every other filter combination.
	DefaultDeadlineSeconds = 25

	// Days a cached flight survives without being seen in a search result.
	CacheRetentionDays = 5
)

// User-facing error messages. The web client is Russian-language, so these
// stay in Russian; log lines stay in English.
const (
	MsgNoFilters       = "Добавьте хотя бы один фильтр для поиска."
	MsgDurationBounds  = "Минимальная длительность больше максимальной."
	MsgFeedUnavailable = "Не удалось получить live рейсы из FlightRadar24"
	MsgInternalError   = "Внутренняя ошибка обработки рейсов"
	MsgInvalidBody     = "Некорректное тело запроса."
)
