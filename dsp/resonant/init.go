package resonant

import (
	_ "github.com/cwbudde/algo-resonant/dsp/resonant/internal/arch/generic" // register generic backend
)
