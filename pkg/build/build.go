// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

// package build contains build information for the timeassert module.
package build

import (
	_ "embed"
)

//go:embed version.txt
var Version string
