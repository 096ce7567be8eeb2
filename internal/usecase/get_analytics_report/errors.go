package get_analytics_report

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRetrieval возвращается, когда не удалось получить записи из хранилища.
	// Единственная фатальная ошибка пайплайна: любая другая проблема
	// деградирует до нулевого дефолта своей секции.
	ErrRetrieval = errors.New("analytics report: retrieval failure")
)
