//go:build (!amd64 && !arm64) || purego

package blend

import (
	_ "github.com/cwbudde/algo-pose/blend/internal/arch/generic"
	_ "github.com/cwbudde/algo-pose/blend/internal/arch/registry"
)
