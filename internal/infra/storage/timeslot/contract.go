package timeslot

import "github.com/m0rzhov/PTS-TimetableService/pkg/dbmetrics"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
