// Copyright (C) 2024 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package repositories

import (
	"github.com/l3montree-dev/qualitygate/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewOrgRepository, fx.As(new(shared.OrganizationRepository)))),
	fx.Provide(fx.Annotate(NewProjectRepository, fx.As(new(shared.ProjectRepository)))),
	fx.Provide(fx.Annotate(NewScanRepository, fx.As(new(shared.ScanRepository)))),
	fx.Provide(fx.Annotate(NewFindingRepository, fx.As(new(shared.FindingRepository)))),
	fx.Provide(fx.Annotate(NewSuppressionRepository, fx.As(new(shared.SuppressionRepository)))),
	fx.Provide(fx.Annotate(NewGateOverrideRepository, fx.As(new(shared.GateOverrideRepository)))),
	fx.Provide(fx.Annotate(NewIssueGroupRepository, fx.As(new(shared.IssueGroupRepository)))),
)
