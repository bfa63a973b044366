package composeDriver

import (
	"github.com/rotisserie/eris"
	"github.com/t-kuni/wgslbindgen/domain/external/composer"
	"github.com/t-kuni/wgslbindgen/domain/service/dependencyTree"
)

// ComposeDriverService turns one entry point's ordered dependency list into a
// single composed module. A dependency must be registered strictly before any
// module importing it, which is why the dependency tree hands over a
// topologically sorted list rather than an arbitrary set.
type ComposeDriverService struct {
	composerFactory composer.Factory
}

func NewComposeDriverService(composerFactory composer.Factory) *ComposeDriverService {
	return &ComposeDriverService{
		composerFactory: composerFactory,
	}
}

// Compose registers every dependency in order, then submits the entry file
// itself. Each entry gets a fresh composer so a failed entry cannot leak
// registrations into the next one.
func (s *ComposeDriverService) Compose(entry dependencyTree.EntryResult) (*composer.ComposedModule, error) {
	c := s.composerFactory.NewComposer()

	for _, dep := range entry.Dependencies {
		err := c.AddComposableModule(composer.ModuleDescriptor{
			Content:  dep.Content,
			Identity: dep.FilePath,
			AsName:   dep.ModuleName,
		})
		if err != nil {
			return nil, eris.Wrapf(err, "failed to compose entry %s", entry.Entry.FilePath)
		}
	}

	composed, err := c.MakeModule(composer.ModuleDescriptor{
		Content:  entry.Entry.Content,
		Identity: entry.Entry.FilePath,
	})
	if err != nil {
		return nil, eris.Wrapf(err, "failed to compose entry %s", entry.Entry.FilePath)
	}

	return composed, nil
}
