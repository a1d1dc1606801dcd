package app

import (
	"testing"

	"storeradar/internal/usecase"

	"go.uber.org/fx"
)

func TestGraphIsComplete(t *testing.T) {
	err := fx.ValidateApp(
		Infra(),
		Repositories(),
		Services(),
		Usecases(),
		fx.Invoke(func(usecase.SyncUsecase, usecase.PriceChangeUsecase, usecase.PreferenceUsecase) {}),
	)
	if err != nil {
		t.Fatalf("fx graph: %v", err)
	}
}
