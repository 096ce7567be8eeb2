package appointment

import (
	"errors"
	"fmt"
)

var (
	// ErrRetrieval единственная фатальная ошибка пайплайна:
	// не удалось получить записи из хранилища.
	// Все ошибки репозитория оборачивают её, чтобы вызывающий код
	// различал только "retrieval failure" и всё остальное.
	ErrRetrieval = errors.New("appointment.repository: retrieval failure")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = fmt.Errorf("%w: failed to build query", ErrRetrieval)

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = fmt.Errorf("%w: failed to execute query", ErrRetrieval)

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = fmt.Errorf("%w: failed to scan row", ErrRetrieval)
)
