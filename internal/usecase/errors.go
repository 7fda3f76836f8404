package usecase

import "errors"

//go:generate mockgen -destination=../adapter/http/handlers/mocks/visit_usecase_mock.go -package=mocks repair_visits/internal/usecase IVisitQueryUseCase,IVisitUpdateUseCase

var (
	ErrVisitNotFound  = errors.New("visit not found")
	ErrStorageFailure = errors.New("storage failure")
	ErrInvalidVisitID = errors.New("invalid visit id")
	ErrInvalidUpdate  = errors.New("invalid visit update")
)
