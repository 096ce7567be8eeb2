package appointment

import (
	"github.com/m04kA/Salon-AnalyticsService/pkg/dbmetrics"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics,
// чтобы репозиторий одинаково работал с *sql.DB и обёрткой с метриками
type DBExecutor = dbmetrics.DBExecutor
