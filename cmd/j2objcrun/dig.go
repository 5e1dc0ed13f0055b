package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/j2objcrun/internal"
	"github.com/rios0rios0/j2objcrun/internal/infrastructure/controllers"
)

func newContainer() *dig.Container {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}
	return container
}

func injectAppContext(container *dig.Container) *internal.AppInternal {
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}

func injectTranslateController(container *dig.Container) *controllers.TranslateController {
	var translateController *controllers.TranslateController
	if err := container.Invoke(func(tc *controllers.TranslateController) {
		translateController = tc
	}); err != nil {
		panic(err)
	}

	return translateController
}
