package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/j2objcrun/internal/domain/repositories"
	fsRepo "github.com/rios0rios0/j2objcrun/internal/infrastructure/repositories/filesystem"
	mavenRepo "github.com/rios0rios0/j2objcrun/internal/infrastructure/repositories/maven"
	processRepo "github.com/rios0rios0/j2objcrun/internal/infrastructure/repositories/process"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register repository constructors
	constructors := []any{
		mavenRepo.NewArtifactRepository,
		fsRepo.NewSourceCollectorRepository,
		fsRepo.NewPrefixWriterRepository,
		fsRepo.NewPermissionRepository,
		processRepo.NewRunnerRepository,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind domain interfaces to implementations
	bindings := []any{
		func(impl *mavenRepo.ArtifactRepository) domainRepos.ArtifactRepository { return impl },
		func(impl *fsRepo.SourceCollectorRepository) domainRepos.SourceCollector { return impl },
		func(impl *fsRepo.PrefixWriterRepository) domainRepos.PrefixWriter { return impl },
		func(impl *fsRepo.PermissionRepository) domainRepos.ExecutableMarker { return impl },
		func(impl *fsRepo.PermissionRepository) domainRepos.DirectoryMaker { return impl },
		func(impl *processRepo.RunnerRepository) domainRepos.ProcessRunner { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
