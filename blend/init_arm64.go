//go:build arm64 && !purego

package blend

import (
	_ "github.com/cwbudde/algo-pose/blend/internal/arch/generic"
	_ "github.com/cwbudde/algo-pose/blend/internal/arch/registry"
	_ "github.com/cwbudde/algo-pose/blend/internal/arch/vec4"
)
