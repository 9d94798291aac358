package features

import (
	"fmt"
	"regexp"

	"github.com/jakoblorz/flutterforge/internal/models"
)

// Config keys recognized by the Project Setup feature. The values are
// consumed by the flutter toolchain invocation, which is the CLI's
// responsibility, not the engine's.
const (
	AppNameKey   = "app_name"
	OrgKey       = "org"
	PlatformsKey = "platforms"
)

// Defaults for Project Setup config keys
const (
	DefaultOrg       = "com.app.template"
	DefaultPlatforms = "ios,android,web,macos"
)

// appNameRe enforces pub package naming: lowercase, starts with a
// letter, letters/digits/underscores only.
var appNameRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidateAppName checks an app name against pub package naming rules
func ValidateAppName(name string) error {
	if !appNameRe.MatchString(name) {
		return fmt.Errorf("invalid app name %q: must be lowercase, start with a letter, and contain only letters, numbers, and underscores", name)
	}
	return nil
}

// ProjectSetup is the bootstrap feature. It has no prerequisites and
// generates no files itself; it exists to carry the app name,
// organization and platform configuration the toolchain step consumes,
// and to anchor install ordering for everything else.
type ProjectSetup struct{}

func (ProjectSetup) Name() string { return "Project Setup" }

func (ProjectSetup) Dependencies() []string { return nil }

func (ProjectSetup) PackageRequirements() []models.PackageRequirement { return nil }

func (ProjectSetup) Render(projectName string, config models.Config) (map[string]string, error) {
	if name, ok := config[AppNameKey]; ok {
		if err := ValidateAppName(name); err != nil {
			return nil, err
		}
	}
	return map[string]string{}, nil
}
