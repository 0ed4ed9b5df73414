//go:build amd64 && !purego

package blend

import (
	_ "github.com/cwbudde/algo-pose/blend/internal/arch/generic"  // register generic backend
	_ "github.com/cwbudde/algo-pose/blend/internal/arch/registry" // initialize backend registry
	_ "github.com/cwbudde/algo-pose/blend/internal/arch/vec4"     // register SSE2 backend
)
