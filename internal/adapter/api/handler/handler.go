package handler

import (
	"patronpoint/internal/usecase"
)

var (
	authHandler     *AuthHandler
	businessHandler *BusinessHandler
	reportHandler   *ReportHandler
	lookupHandler   *LookupHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	businessUseCase *usecase.BusinessUseCase,
	reportUseCase *usecase.ReportUseCase,
	lookupUseCase *usecase.LookupUseCase,
	leaderboardSize int,
) {
	authHandler = NewAuthHandler(authUseCase)
	businessHandler = NewBusinessHandler(businessUseCase, leaderboardSize)
	reportHandler = NewReportHandler(reportUseCase)
	lookupHandler = NewLookupHandler(lookupUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetBusinessHandler() *BusinessHandler {
	return businessHandler
}

func GetReportHandler() *ReportHandler {
	return reportHandler
}

func GetLookupHandler() *LookupHandler {
	return lookupHandler
}
