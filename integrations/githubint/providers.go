package githubint

import (
	"github.com/l3montree-dev/qualitygate/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(fx.Annotate(NewCheckRunPoster, fx.As(new(shared.CheckRunPoster)))),
	fx.Provide(fx.Annotate(NewDiffProvider, fx.As(new(shared.PRDiffProvider)))),
)
